package overview

import (
	"context"

	"github.com/sewamobil/sewamobil/internal/pkg/models"
)

// OverviewRepo defines the interface for dashboard aggregation queries.
// Online revenue is recognized from settled payments; pay-at-location
// revenue is recognized from completed bookings.
type OverviewRepo interface {
	BookingMetrics(ctx context.Context) (*models.BookingMetrics, error)
	RevenueByDay(ctx context.Context, days int) ([]models.RevenuePoint, error)
	RevenueByMonth(ctx context.Context, months int) ([]models.RevenuePoint, error)
}
