package ws

import (
	"net/http"
	"strconv"
	"time"

	"github.com/VinitO1/Food-Order-Catering/services"
	"github.com/VinitO1/Food-Order-Catering/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // dev only
}

// StatusStream pushes order-status snapshots to the client as the
// worker (or another tab) advances the order. The poll is bounded, so a
// connection on a stuck pending order eventually closes on its own.
type StatusStream struct {
	Orders *services.OrderService

	Interval    time.Duration
	MaxAttempts int
}

func NewStatusStream(orders *services.OrderService) *StatusStream {
	return &StatusStream{Orders: orders, Interval: 5 * time.Second, MaxAttempts: 24}
}

// GET /ws/orders/:id/status
func (s *StatusStream) Serve(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid order id"})
		return
	}
	userID := utils.CurrentUserID(c)

	snapshots, err := s.Orders.WatchStatus(c.Request.Context(), userID, uint(orderID), s.Interval, s.MaxAttempts)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "order not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	// Discard client frames; their close error ends the read loop and
	// the request context tears down the watcher.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for snap := range snapshots {
		if err := conn.WriteJSON(snap); err != nil {
			return
		}
	}
	conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "watch finished"))
}
