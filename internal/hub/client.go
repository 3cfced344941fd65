package hub

import (
	"context"
	"log/slog"
	"time"

	"github.com/coder/websocket"
	"github.com/labstack/echo/v4"
)

const writeTimeout = 10 * time.Second

// ServeWS upgrades the request to a WebSocket and streams hub broadcasts to
// it until the page disconnects. The connection is push-only: nothing the
// client sends is interpreted, reads exist solely to notice the close.
func ServeWS(h *Hub, c echo.Context) error {
	conn, err := websocket.Accept(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	subscriber := &Subscriber{Send: make(chan []byte, 16)}
	h.Register <- subscriber

	ctx := c.Request().Context()

	go func() {
		defer func() {
			h.Unregister <- subscriber
			conn.Close(websocket.StatusNormalClosure, "")
		}()
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				if status := websocket.CloseStatus(err); status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway && status != -1 {
					slog.Debug("Dashboard socket read ended", "error", err)
				}
				return
			}
		}
	}()

	for fragment := range subscriber.Send {
		writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
		err := conn.Write(writeCtx, websocket.MessageText, fragment)
		cancel()
		if err != nil {
			slog.Debug("Dashboard socket write failed", "error", err)
			// Closing the connection unblocks the read goroutine, which
			// performs the unregister.
			conn.Close(websocket.StatusAbnormalClosure, "write failed")
			return nil
		}
	}
	conn.Close(websocket.StatusNormalClosure, "")
	return nil
}
