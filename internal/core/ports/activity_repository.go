package ports

import (
	"context"

	"github.com/agrilink/farm-market/internal/core/domain"
)

// ActivityRepository persists marketplace activity feed entries.
type ActivityRepository interface {
	Insert(ctx context.Context, a *domain.Activity) error
	// CountByKind returns the number of recorded entries per activity kind.
	CountByKind(ctx context.Context) (map[string]int64, error)
}
