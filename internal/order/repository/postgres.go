package repository

import (
	"context"
	"time"

	"github.com/Heybro1122/ShopHub/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT count(*) FROM orders`)
	return count, errors.Wrap(err, "order: count")
}

func (r *PGRepository) SumDelivered(ctx context.Context) (float64, error) {
	var sum float64
	err := r.DB.GetContext(ctx, &sum,
		`SELECT COALESCE(sum(total), 0) FROM orders WHERE status = 'delivered'`)
	return sum, errors.Wrap(err, "order: sum delivered")
}

func (r *PGRepository) DeliveredBetween(ctx context.Context, from, to time.Time) ([]model.Order, error) {
	var orders []model.Order
	err := r.DB.SelectContext(ctx, &orders,
		`SELECT * FROM orders WHERE status = 'delivered' AND created_at >= $1 AND created_at <= $2`,
		from, to)
	return orders, errors.Wrap(err, "order: delivered between")
}

func (r *PGRepository) Recent(ctx context.Context, limit int) ([]model.RecentOrder, error) {
	rows, err := r.DB.QueryxContext(ctx, `
        SELECT o.id, u.name AS customer, o.total, o.status, o.created_at
        FROM orders o
        JOIN users u ON u.id = o.user_id
        ORDER BY o.created_at DESC
        LIMIT $1
    `, limit)
	if err != nil {
		return nil, errors.Wrap(err, "order: recent")
	}
	defer rows.Close()

	var out []model.RecentOrder
	for rows.Next() {
		var (
			o         model.RecentOrder
			createdAt time.Time
		)
		if err := rows.Scan(&o.ID, &o.Customer, &o.Total, &o.Status, &createdAt); err != nil {
			return nil, errors.Wrap(err, "order: scan recent")
		}
		o.Date = createdAt.Format("1/2/2006")
		out = append(out, o)
	}
	return out, rows.Err()
}
