package state_controller

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/longpt2111/food-app/store"
	"go.uber.org/zap"
)

// StreamState upgrades to a websocket and pushes a StateView after every
// dispatch on the session store, starting with the current state. A slow
// client only ever sees the latest snapshot; dispatch never waits on it.
// GET /store/state/ws
func (ctl *Controller) StreamState(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}

	conn, err := ctl.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		ctl.logger.Debug("Websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	updates := make(chan store.AppState, 1)
	unsubscribe := s.Store.Subscribe(func(state store.AppState) {
		select {
		case updates <- state:
		default:
			// drop the stale snapshot in favour of this one
			select {
			case <-updates:
			default:
			}
			updates <- state
		}
	})
	defer unsubscribe()

	closed := make(chan struct{})
	go readPump(conn, closed)

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	if err := writeState(conn, s.Store.State()); err != nil {
		return
	}
	for {
		select {
		case state := <-updates:
			if err := writeState(conn, state); err != nil {
				ctl.logger.Debug("Websocket write failed", zap.String("session", s.ID), zap.Error(err))
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-closed:
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}

func writeState(conn *websocket.Conn, state store.AppState) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(store.NewStateView(state))
}

// readPump discards client messages and closes done once the peer goes away.
func readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
