package services

import (
	"context"
	"time"

	"github.com/VinitO1/Food-Order-Catering/pkg/apperr"
	"github.com/VinitO1/Food-Order-Catering/repository"
)

// StatusSnapshot is one observation of an order's status.
type StatusSnapshot struct {
	OrderID     uint      `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	Status      string    `json:"status"`
	ObservedAt  time.Time `json:"observedAt"`
}

// WatchStatus re-fetches the order's persisted status at the given
// interval, pushing a snapshot whenever it changes, for at most
// maxAttempts polls. It reflects transitions made by the worker or by
// another client without holding any cached authority of its own.
func (s *OrderService) WatchStatus(ctx context.Context, userID, orderID uint, interval time.Duration, maxAttempts int) (<-chan StatusSnapshot, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Persistence(err)
	}

	out := make(chan StatusSnapshot, 1)
	out <- StatusSnapshot{OrderID: o.ID, OrderNumber: o.OrderNumber, Status: o.Status, ObservedAt: time.Now()}

	go func() {
		defer close(out)
		last := o.Status
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for attempt := 0; attempt < maxAttempts; attempt++ {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			cur, err := s.Repo.GetOrderForUser(userID, orderID)
			if err != nil {
				continue
			}
			if cur.Status != last {
				last = cur.Status
				select {
				case out <- StatusSnapshot{OrderID: cur.ID, OrderNumber: cur.OrderNumber, Status: cur.Status, ObservedAt: time.Now()}:
				case <-ctx.Done():
					return
				}
			}
			if isTerminalStatus(last) {
				return
			}
		}
	}()
	return out, nil
}

func isTerminalStatus(status string) bool {
	return len(allowedTransitions[status]) == 0
}
