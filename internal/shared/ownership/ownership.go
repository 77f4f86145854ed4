// Package ownership enforces tenant isolation on provider-owned resources.
package ownership

import (
	"salonhub_backend/platform/apperr"

	"github.com/google/uuid"
)

// Authorize checks that the acting provider owns the resource.
// Callers are expected to have already established that the resource exists,
// so a mismatch is an authorization failure, not a missing resource.
func Authorize(op string, actorID, ownerID uuid.UUID) error {
	if actorID != ownerID {
		return apperr.Forbidden("Not authorized").WithOp(op)
	}
	return nil
}
