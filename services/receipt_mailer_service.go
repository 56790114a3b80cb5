package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"

	"github.com/longpt2111/food-app/models"
)

const resendEmailsURL = "https://api.resend.com/emails"

var ErrMissingRecipient = errors.New("recipient email is required")

// ReceiptMailer emails a rendered cart receipt to the signed-in user.
type ReceiptMailer interface {
	SendCartReceipt(ctx context.Context, receipt CartReceiptEmail) error
}

// CartReceiptEmail is one receipt to deliver.
type CartReceiptEmail struct {
	User     *models.UserProfile
	Items    []models.CartItem
	Total    float64
	IssuedAt time.Time
	PDF      []byte
}

// ResendMailer sends mail through the Resend HTTP API.
type ResendMailer struct {
	apiKey   string
	from     string
	endpoint string
	client   *http.Client
}

func NewResendMailer(apiKey, from string) (*ResendMailer, error) {
	if apiKey == "" {
		return nil, errors.New("resend api key is required")
	}
	return &ResendMailer{
		apiKey:   apiKey,
		from:     from,
		endpoint: resendEmailsURL,
		client:   &http.Client{Timeout: 15 * time.Second},
	}, nil
}

type resendAttachment struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

type resendEmail struct {
	From        string             `json:"from"`
	To          string             `json:"to"`
	Subject     string             `json:"subject"`
	HTML        string             `json:"html"`
	Attachments []resendAttachment `json:"attachments,omitempty"`
}

func (r *ResendMailer) SendCartReceipt(ctx context.Context, receipt CartReceiptEmail) error {
	if receipt.User == nil || receipt.User.Email == "" {
		return ErrMissingRecipient
	}

	var html bytes.Buffer
	if err := receiptEmailTemplate.Execute(&html, receipt); err != nil {
		return fmt.Errorf("failed to render receipt email: %w", err)
	}

	payload, err := json.Marshal(resendEmail{
		From:    r.from,
		To:      receipt.User.Email,
		Subject: "Your CITY receipt",
		HTML:    html.String(),
		Attachments: []resendAttachment{{
			Filename: fmt.Sprintf("receipt-%s.pdf", receipt.IssuedAt.Format("20060102-150405")),
			Content:  base64.StdEncoding.EncodeToString(receipt.PDF),
		}},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("resend api error: status %d: %s", resp.StatusCode, body)
	}
	return nil
}

var receiptEmailTemplate = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
	"line":  func(item models.CartItem) float64 { return item.Price * float64(item.Qty) },
}).Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #262622;">
  <h2>Thanks for ordering, {{.User.DisplayName}}</h2>
  <p>Your receipt from {{.IssuedAt.Format "Jan 02, 2006 15:04"}} is attached.</p>
  <table cellpadding="6" style="border-collapse: collapse;">
    <tr><th align="left">Item</th><th>Qty</th><th align="right">Amount</th></tr>
    {{range .Items}}<tr><td>{{.Title}}</td><td align="center">{{.Qty}}</td><td align="right">{{money (line .)}}</td></tr>
    {{end}}<tr><td colspan="2"><strong>Total</strong></td><td align="right"><strong>{{money .Total}}</strong></td></tr>
  </table>
</body>
</html>
`))
