package services

import (
	"github.com/VinitO1/Food-Order-Catering/pkg/apperr"
)

// authorizeOwner is the single ownership policy for user-owned rows
// (cart lines, orders). Every call site goes through here instead of
// comparing owner ids inline.
func authorizeOwner(subjectID, ownerID uint) error {
	if subjectID == 0 {
		return apperr.ErrAuthenticationRequired
	}
	if subjectID != ownerID {
		return apperr.ErrNotAuthorized
	}
	return nil
}
