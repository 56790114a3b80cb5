package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
	"github.com/longpt2111/food-app/models"
)

// RenderCartReceipt lays out the basket as a one-page PDF. user may be nil for guests.
func RenderCartReceipt(user *models.UserProfile, items []models.CartItem, issuedAt time.Time) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("CITY", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	customer := "Guest"
	email := ""
	if user != nil {
		customer = user.DisplayName
		email = user.Email
	}

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(customer, props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Date: %s", issuedAt.Format("Jan 02, 2006 15:04")), props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})

	if email != "" {
		m.Row(5, func() {
			m.Col(12, func() {
				m.Text(email, props.Text{Size: 9, Color: mediumGray})
			})
		})
	}

	m.Row(8, func() {})

	m.Row(6, func() {
		header := []struct {
			label string
			width uint
			align consts.Align
		}{
			{"Item", 6, consts.Left},
			{"Qty", 2, consts.Right},
			{"Price", 2, consts.Right},
			{"Total", 2, consts.Right},
		}
		for _, h := range header {
			h := h
			m.Col(h.width, func() {
				m.Text(h.label, props.Text{
					Size:  8,
					Style: consts.Bold,
					Color: darkGray,
					Align: h.align,
				})
			})
		}
	})

	for _, item := range items {
		item := item
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(item.Title, props.Text{Size: 9, Color: darkGray})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%d", item.Qty), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("$%.2f", item.Price), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("$%.2f", item.Price*float64(item.Qty)), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
		})
	}

	m.Row(8, func() {})

	var count int
	var total float64
	for _, item := range items {
		count += item.Qty
		total += item.Price * float64(item.Qty)
	}

	m.Row(8, func() {
		m.Col(8, func() {
			m.Text(fmt.Sprintf("%d items", count), props.Text{Size: 10, Color: mediumGray})
		})
		m.Col(2, func() {
			m.Text("Total", props.Text{
				Size:  12,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text(fmt.Sprintf("$%.2f", total), props.Text{
				Size:  12,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to generate receipt PDF: %w", err)
	}
	return &buf, nil
}
