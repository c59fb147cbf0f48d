package repo

import (
	"context"

	"github.com/hamed0406/healthpoint/internal/domain"
)

// RoundStore keeps completed check rounds for read-side consumers.
// Implementations must be safe for concurrent use.
type RoundStore interface {
	SaveRound(ctx context.Context, r *domain.Round) error
	// LastRound returns nil, nil before the first round completes.
	LastRound(ctx context.Context) (*domain.Round, error)
	// Rounds returns up to limit of the most recent rounds, newest first.
	Rounds(ctx context.Context, limit int) ([]*domain.Round, error)
}
