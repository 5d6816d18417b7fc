package overview

import (
	"context"

	"github.com/sewamobil/sewamobil/internal/pkg/models"
)

// OverviewUC defines the interface for dashboard aggregation logic
type OverviewUC interface {
	GetOverview(ctx context.Context) (*models.Overview, error)
}
