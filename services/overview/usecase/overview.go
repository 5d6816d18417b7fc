package usecase

import (
	"context"

	"github.com/sewamobil/sewamobil/internal/pkg/models"
	"github.com/sewamobil/sewamobil/services/overview"
)

const (
	revenueDayWindow   = 30
	revenueMonthWindow = 12
)

// overviewUC implements the overview.OverviewUC interface
type overviewUC struct {
	repo overview.OverviewRepo
}

// NewOverviewUC creates a new overview use case
func NewOverviewUC(repo overview.OverviewRepo) overview.OverviewUC {
	return &overviewUC{repo: repo}
}

// GetOverview assembles the admin dashboard aggregate. The revenue series
// are always non-nil so an empty system renders as empty arrays.
func (uc *overviewUC) GetOverview(ctx context.Context) (*models.Overview, error) {
	metrics, err := uc.repo.BookingMetrics(ctx)
	if err != nil {
		return nil, err
	}

	byDay, err := uc.repo.RevenueByDay(ctx, revenueDayWindow)
	if err != nil {
		return nil, err
	}
	byMonth, err := uc.repo.RevenueByMonth(ctx, revenueMonthWindow)
	if err != nil {
		return nil, err
	}

	if byDay == nil {
		byDay = []models.RevenuePoint{}
	}
	if byMonth == nil {
		byMonth = []models.RevenuePoint{}
	}

	total := 0
	for _, p := range byMonth {
		total += p.Total
	}

	return &models.Overview{
		Metrics:        *metrics,
		TotalRevenue:   total,
		RevenueByDay:   byDay,
		RevenueByMonth: byMonth,
	}, nil
}
