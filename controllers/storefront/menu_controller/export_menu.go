package menu_controller

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/longpt2111/food-app/models"
	"github.com/longpt2111/food-app/services"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportMenu downloads the full catalog as an Excel workbook.
// GET /store/menu/export
func (ctl *Controller) ExportMenu(c *gin.Context) {
	items, err := ctl.catalog.FetchAll(c.Request.Context())
	if err != nil {
		ctl.logger.Error("Failed to fetch menu for export", zap.Error(err))
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to load menu"))
		return
	}

	var buf bytes.Buffer
	if err := services.WriteMenuWorkbook(&buf, items); err != nil {
		ctl.logger.Error("Failed to build menu workbook", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to export menu"))
		return
	}

	filename := fmt.Sprintf("menu-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
