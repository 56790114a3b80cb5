package menu_controller

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/longpt2111/food-app/models"
	"github.com/longpt2111/food-app/services"
	"go.uber.org/zap"
)

const maxImageBytes = 5 << 20

// UploadMenuImage stores the multipart "image" file and returns its URL for use
// as a new item's imageURL.
// POST /store/menu/images
func (ctl *Controller) UploadMenuImage(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image file is required"))
		return
	}
	if header.Size > maxImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse(c, "Image must be 5MB or smaller"))
		return
	}
	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		c.JSON(http.StatusUnsupportedMediaType, models.ErrorResponse(c, "File must be an image"))
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read image"))
		return
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(header.Filename), filepath.Ext(header.Filename))
	publicID := uuid.NewString()
	if name != "" && name != "." {
		publicID = name + "-" + publicID
	}

	url, err := ctl.images.UploadImage(c.Request.Context(), file, publicID, services.FoodImageFolder)
	if err != nil {
		ctl.logger.Error("Image upload failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to upload image"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Image uploaded successfully", gin.H{"imageURL": url}))
}
