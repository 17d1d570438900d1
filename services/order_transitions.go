package services

import (
	"github.com/VinitO1/Food-Order-Catering/entity"
	"github.com/VinitO1/Food-Order-Catering/pkg/apperr"
	"github.com/VinitO1/Food-Order-Catering/repository"
	"gorm.io/gorm"
)

// allowedTransitions is the whole order state machine. delivered and
// cancelled are terminal.
var allowedTransitions = map[string][]string{
	entity.OrderStatusPending:  {entity.OrderStatusApproved, entity.OrderStatusCancelled},
	entity.OrderStatusApproved: {entity.OrderStatusDelivered},
}

func transitionAllowed(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Cancel sets a pending order to cancelled. The guard re-checks the
// persisted status at write time, so an order approved in the meantime
// cannot be cancelled out from under the simulator.
func (s *OrderService) Cancel(userID, orderID uint) error {
	if userID == 0 {
		return apperr.ErrAuthenticationRequired
	}

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if repository.IsNotFound(err) {
			return apperr.ErrNotFound
		}
		return apperr.Persistence(err)
	}
	if err := authorizeOwner(userID, o.UserID); err != nil {
		return err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID,
			entity.OrderStatusPending, entity.OrderStatusCancelled)
		if err != nil {
			return apperr.Persistence(err)
		}
		if affected == 0 {
			return apperr.ErrInvalidStateTransition
		}
		// Drop the scheduled approve hop; the worker's own guard would
		// skip it anyway, but there is no point leaving it due.
		return s.Repo.ClearTransition(tx, o.ID)
	})
	return err
}
