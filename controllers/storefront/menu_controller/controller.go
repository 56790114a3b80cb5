package menu_controller

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/longpt2111/food-app/middleware"
	"github.com/longpt2111/food-app/models"
	"github.com/longpt2111/food-app/services"
	"github.com/longpt2111/food-app/session"
	"go.uber.org/zap"
)

// ImageUploader stores an item picture and returns its public URL.
type ImageUploader interface {
	UploadImage(ctx context.Context, file io.Reader, filename string, folder string) (string, error)
}

type Controller struct {
	catalog services.CatalogGateway
	images  ImageUploader
	logger  *zap.Logger
}

func New(catalog services.CatalogGateway, images ImageUploader, logger *zap.Logger) *Controller {
	return &Controller{catalog: catalog, images: images, logger: logger}
}

func currentSession(c *gin.Context) (*session.Session, bool) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not initialised"))
	}
	return s, ok
}
