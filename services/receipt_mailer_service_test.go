package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/longpt2111/food-app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMailer(t *testing.T, status int, got *resendEmail, auth *string) *ResendMailer {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(got)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"id":"email-1"}`))
	}))
	t.Cleanup(srv.Close)

	m, err := NewResendMailer("re_test", "CITY <noreply@city.example>")
	require.NoError(t, err)
	m.endpoint = srv.URL
	return m
}

func TestResendMailer_SendCartReceipt(t *testing.T) {
	var got resendEmail
	var auth string
	m := newTestMailer(t, http.StatusOK, &got, &auth)

	err := m.SendCartReceipt(context.Background(), CartReceiptEmail{
		User:     &models.UserProfile{DisplayName: "Ada <3", Email: "ada@example.com"},
		Items:    []models.CartItem{{FoodItem: models.FoodItem{Title: "Kebab", Price: 8.5}, Qty: 2}},
		Total:    17,
		IssuedAt: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
		PDF:      []byte("%PDF-1.3"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer re_test", auth)
	assert.Equal(t, "ada@example.com", got.To)
	assert.Contains(t, got.HTML, "Ada &lt;3")
	assert.Contains(t, got.HTML, "$17.00")
	require.Len(t, got.Attachments, 1)
	assert.Equal(t, "receipt-20261019-120000.pdf", got.Attachments[0].Filename)
	pdf, err := base64.StdEncoding.DecodeString(got.Attachments[0].Content)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(pdf))
}

func TestResendMailer_Errors(t *testing.T) {
	var got resendEmail
	var auth string
	m := newTestMailer(t, http.StatusUnprocessableEntity, &got, &auth)

	err := m.SendCartReceipt(context.Background(), CartReceiptEmail{User: &models.UserProfile{}})
	assert.ErrorIs(t, err, ErrMissingRecipient)

	err = m.SendCartReceipt(context.Background(), CartReceiptEmail{User: &models.UserProfile{Email: "a@b.c"}})
	assert.ErrorContains(t, err, "status 422")

	_, err = NewResendMailer("", "x")
	assert.Error(t, err)
}
