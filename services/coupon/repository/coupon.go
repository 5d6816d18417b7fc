package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sewamobil/sewamobil/internal/pkg/models"
	"github.com/sewamobil/sewamobil/services/coupon"
)

// CouponRepo implements the coupon.CouponRepo interface on Postgres
type CouponRepo struct {
	db *sqlx.DB
}

// NewCouponRepository creates a new coupon repository
func NewCouponRepository(db *sqlx.DB) *CouponRepo {
	return &CouponRepo{db: db}
}

const couponColumns = `
	id, code, discount_type, discount_value, min_order_total,
	max_uses, used_count, starts_at, expires_at, is_active,
	created_at, updated_at
`

// Create inserts a new coupon
func (r *CouponRepo) Create(ctx context.Context, c *models.Coupon) error {
	query := `
		INSERT INTO coupons (
			id, code, discount_type, discount_value, min_order_total,
			max_uses, used_count, starts_at, expires_at, is_active,
			created_at, updated_at
		) VALUES (
			:id, :code, :discount_type, :discount_value, :min_order_total,
			:max_uses, :used_count, :starts_at, :expires_at, :is_active,
			:created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, c); err != nil {
		return fmt.Errorf("failed to insert coupon: %w", err)
	}
	return nil
}

// GetByID retrieves a coupon by id
func (r *CouponRepo) GetByID(ctx context.Context, id string) (*models.Coupon, error) {
	query := fmt.Sprintf(`SELECT %s FROM coupons WHERE id = $1`, couponColumns)

	var c models.Coupon
	if err := r.db.GetContext(ctx, &c, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, coupon.ErrCouponNotFound
		}
		return nil, fmt.Errorf("failed to get coupon: %w", err)
	}
	return &c, nil
}

// GetByCode retrieves a coupon by its unique code
func (r *CouponRepo) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	query := fmt.Sprintf(`SELECT %s FROM coupons WHERE code = $1`, couponColumns)

	var c models.Coupon
	if err := r.db.GetContext(ctx, &c, query, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, coupon.ErrCouponNotFound
		}
		return nil, fmt.Errorf("failed to get coupon: %w", err)
	}
	return &c, nil
}

// List retrieves all coupons, newest first
func (r *CouponRepo) List(ctx context.Context) ([]*models.Coupon, error) {
	query := fmt.Sprintf(`SELECT %s FROM coupons ORDER BY created_at DESC`, couponColumns)

	coupons := []*models.Coupon{}
	if err := r.db.SelectContext(ctx, &coupons, query); err != nil {
		return nil, fmt.Errorf("failed to list coupons: %w", err)
	}
	return coupons, nil
}

// Update updates a coupon's definition. used_count is intentionally not
// written here; it only moves through booking/payment transactions.
func (r *CouponRepo) Update(ctx context.Context, c *models.Coupon) error {
	query := `
		UPDATE coupons
		SET code = :code, discount_type = :discount_type,
			discount_value = :discount_value, min_order_total = :min_order_total,
			max_uses = :max_uses, starts_at = :starts_at, expires_at = :expires_at,
			is_active = :is_active, updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, c)
	if err != nil {
		return fmt.Errorf("failed to update coupon: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return coupon.ErrCouponNotFound
	}
	return nil
}

// Delete removes a coupon
func (r *CouponRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete coupon: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return coupon.ErrCouponNotFound
	}
	return nil
}
