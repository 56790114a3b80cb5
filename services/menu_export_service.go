package services

import (
	"fmt"
	"io"

	"github.com/longpt2111/food-app/models"
	"github.com/tealeg/xlsx"
)

var menuExportHeaders = []string{"ID", "Title", "Category", "Price", "Calories", "ImageURL", "CreatedAt"}

// WriteMenuWorkbook writes the menu as an xlsx workbook with a single "Menu" sheet.
func WriteMenuWorkbook(w io.Writer, items []models.FoodItem) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Menu")
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, h := range menuExportHeaders {
		headerRow.AddCell().SetValue(h)
	}

	for _, item := range items {
		row := sheet.AddRow()
		row.AddCell().SetValue(item.ID)
		row.AddCell().SetValue(item.Title)
		row.AddCell().SetValue(item.Category)
		row.AddCell().SetFloat(item.Price)
		row.AddCell().SetInt(item.Calories)
		row.AddCell().SetValue(item.ImageURL)
		row.AddCell().SetValue(item.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
