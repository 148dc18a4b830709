package repository

import (
	"context"

	"github.com/QuantumCastro/L-Artisan/internal/domain"
)

// SessionRepository defines the interface for session persistence operations.
type SessionRepository interface {
	// Get retrieves a session by its ID. Unknown sessions return an error
	// wrapping apperrors.ErrNotFound; stores that still see an expired entry
	// return apperrors.ErrSessionExpired instead.
	Get(ctx context.Context, id string) (*domain.Session, error)

	// Save persists a session, overwriting any existing one and refreshing its TTL.
	Save(ctx context.Context, session *domain.Session) error

	// Delete removes a session by its ID. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error
}
