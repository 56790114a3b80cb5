package state_controller

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/longpt2111/food-app/middleware"
	"github.com/longpt2111/food-app/models"
	"github.com/longpt2111/food-app/session"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

type Controller struct {
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

// New builds the state controller. Websocket upgrades are accepted from
// allowedOrigins only; an empty list accepts same-origin requests.
func New(logger *zap.Logger, allowedOrigins []string) *Controller {
	ctl := &Controller{logger: logger}
	ctl.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
	if len(allowedOrigins) > 0 {
		ctl.upgrader.CheckOrigin = func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || slices.Contains(allowedOrigins, origin)
		}
	}
	return ctl
}

func currentSession(c *gin.Context) (*session.Session, bool) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session not initialised"))
	}
	return s, ok
}
