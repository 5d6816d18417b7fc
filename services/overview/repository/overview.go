package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sewamobil/sewamobil/internal/pkg/models"
)

// OverviewRepo implements the overview.OverviewRepo interface on Postgres
type OverviewRepo struct {
	db *sqlx.DB
}

// NewOverviewRepository creates a new overview repository
func NewOverviewRepository(db *sqlx.DB) *OverviewRepo {
	return &OverviewRepo{db: db}
}

// BookingMetrics counts bookings per lifecycle state
func (r *OverviewRepo) BookingMetrics(ctx context.Context) (*models.BookingMetrics, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'pending') AS pending,
			COUNT(*) FILTER (WHERE status = 'confirmed') AS confirmed,
			COUNT(*) FILTER (WHERE status = 'cancelled') AS cancelled,
			COUNT(*) FILTER (WHERE status = 'completed') AS completed,
			COUNT(*) AS total
		FROM bookings
	`

	var m models.BookingMetrics
	if err := r.db.GetContext(ctx, &m, query); err != nil {
		return nil, fmt.Errorf("failed to aggregate booking metrics: %w", err)
	}
	return &m, nil
}

// revenueQuery buckets revenue by the given date_trunc granularity. Online
// revenue comes from settled or captured payments; pay-at-location revenue
// comes from completed bookings, recognized at completion time.
const revenueQuery = `
	SELECT period,
		COALESCE(SUM(online_full), 0) AS online_full,
		COALESCE(SUM(pay_at_location), 0) AS pay_at_location,
		COALESCE(SUM(online_full), 0) + COALESCE(SUM(pay_at_location), 0) AS total
	FROM (
		SELECT to_char(date_trunc('%s', p.paid_at), '%s') AS period,
			p.gross_amount AS online_full, 0 AS pay_at_location
		FROM payments p
		WHERE p.transaction_status IN ('settlement', 'capture')
			AND p.paid_at >= NOW() - $1::interval
		UNION ALL
		SELECT to_char(date_trunc('%s', b.updated_at), '%s') AS period,
			0 AS online_full, b.total_price AS pay_at_location
		FROM bookings b
		WHERE b.status = 'completed'
			AND b.payment_method = 'pay_at_location'
			AND b.updated_at >= NOW() - $1::interval
	) buckets
	GROUP BY period
	ORDER BY period
`

// RevenueByDay returns the daily revenue series for the trailing window
func (r *OverviewRepo) RevenueByDay(ctx context.Context, days int) ([]models.RevenuePoint, error) {
	query := fmt.Sprintf(revenueQuery, "day", "YYYY-MM-DD", "day", "YYYY-MM-DD")
	interval := fmt.Sprintf("%d days", days)

	points := []models.RevenuePoint{}
	if err := r.db.SelectContext(ctx, &points, query, interval); err != nil {
		return nil, fmt.Errorf("failed to aggregate daily revenue: %w", err)
	}
	return points, nil
}

// RevenueByMonth returns the monthly revenue series for the trailing window
func (r *OverviewRepo) RevenueByMonth(ctx context.Context, months int) ([]models.RevenuePoint, error) {
	query := fmt.Sprintf(revenueQuery, "month", "YYYY-MM", "month", "YYYY-MM")
	interval := fmt.Sprintf("%d months", months)

	points := []models.RevenuePoint{}
	if err := r.db.SelectContext(ctx, &points, query, interval); err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly revenue: %w", err)
	}
	return points, nil
}
