package repository

import (
	"context"
	"database/sql"

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

func (r *PGRepository) List(ctx context.Context, userID string) ([]model.WishlistItem, error) {
	rows, err := r.DB.QueryxContext(ctx, `
        SELECT w.id, w.user_id, w.product_id, w.created_at,
               p.id AS p_id, p.name, p.description, p.price, p.original_price,
               p.rating, p.reviews_count, p.badge, p.category, p.image_url,
               p.stock, p.sales_count, p.features, p.tags, p.status,
               p.created_at AS p_created_at, p.updated_at AS p_updated_at
        FROM wishlist w
        JOIN products p ON p.id = w.product_id
        WHERE w.user_id = $1
        ORDER BY w.created_at DESC
    `, userID)
	if err != nil {
		return nil, errors.Wrap(err, "wishlist: list")
	}
	defer rows.Close()

	var items []model.WishlistItem
	for rows.Next() {
		var (
			item model.WishlistItem
			p    model.Product
		)
		err := rows.Scan(
			&item.ID, &item.UserID, &item.ProductID, &item.CreatedAt,
			&p.ID, &p.Name, &p.Description, &p.Price, &p.OriginalPrice,
			&p.Rating, &p.ReviewsCount, &p.Badge, &p.Category, &p.ImageURL,
			&p.Stock, &p.SalesCount, &p.Features, &p.Tags, &p.Status,
			&p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, errors.Wrap(err, "wishlist: scan item")
		}
		item.Product = &p
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PGRepository) Find(ctx context.Context, userID, productID string) (*model.WishlistEntry, error) {
	var entry model.WishlistEntry
	err := r.DB.GetContext(ctx, &entry,
		`SELECT * FROM wishlist WHERE user_id = $1 AND product_id = $2 LIMIT 1`,
		userID, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "wishlist: find entry")
	}
	return &entry, nil
}

func (r *PGRepository) Insert(ctx context.Context, entry *model.WishlistEntry) error {
	_, err := r.DB.NamedExecContext(ctx, `
        INSERT INTO wishlist (id, user_id, product_id, created_at)
        VALUES (:id, :user_id, :product_id, :created_at)
    `, entry)
	return errors.Wrap(err, "wishlist: insert")
}

func (r *PGRepository) Delete(ctx context.Context, userID, productID string) error {
	_, err := r.DB.ExecContext(ctx,
		`DELETE FROM wishlist WHERE user_id = $1 AND product_id = $2`, userID, productID)
	return errors.Wrap(err, "wishlist: delete")
}

func (r *PGRepository) Clear(ctx context.Context, userID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM wishlist WHERE user_id = $1`, userID)
	return errors.Wrap(err, "wishlist: clear")
}
