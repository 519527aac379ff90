package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Heybro1122/ShopHub/internal/catalog/dto"
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

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (
            id, name, description, price, original_price, rating, reviews_count,
            badge, category, image_url, stock, sales_count, features, tags,
            status, created_at, updated_at
        )
        VALUES (
            :id, :name, :description, :price, :original_price, :rating, :reviews_count,
            :badge, :category, :image_url, :stock, :sales_count, :features, :tags,
            :status, :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return errors.Wrap(err, "catalog: insert product")
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	query := `SELECT * FROM products WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "catalog: find product")
	}
	return &product, nil
}

func (r *PGRepository) FindRelated(ctx context.Context, category, excludeID string, limit int) ([]model.Product, error) {
	var products []model.Product
	query := `SELECT * FROM products WHERE category = $1 AND id != $2 LIMIT $3`
	err := r.DB.SelectContext(ctx, &products, query, category, excludeID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "catalog: find related")
	}
	return products, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ListFilters) ([]model.Product, int, error) {
	conditions := []string{}
	args := map[string]interface{}{}

	if f.Category != "" && !strings.EqualFold(f.Category, "all") {
		conditions = append(conditions, "lower(category) = lower(:category)")
		args["category"] = f.Category
	}
	if f.Search != "" {
		conditions = append(conditions, "(name ILIKE :search OR description ILIKE :search)")
		args["search"] = "%" + f.Search + "%"
	}

	return r.query(ctx, conditions, args, listOrderBy(f.Sort), f.Page, f.Limit)
}

func (r *PGRepository) Search(ctx context.Context, f *dto.SearchFilters) ([]model.Product, int, error) {
	conditions := []string{
		"status = 'active'",
		"price >= :min_price",
		"price <= :max_price",
		"rating >= :min_rating",
	}
	args := map[string]interface{}{
		"min_price":  f.MinPrice,
		"max_price":  f.MaxPrice,
		"min_rating": f.MinRating,
	}

	if f.InStock {
		conditions = append(conditions, "stock > 0")
	}
	if len(f.Categories) > 0 {
		placeholders := make([]string, len(f.Categories))
		for i, c := range f.Categories {
			key := fmt.Sprintf("category_%d", i)
			placeholders[i] = ":" + key
			args[key] = strings.ToLower(c)
		}
		conditions = append(conditions, "lower(category) IN ("+strings.Join(placeholders, ", ")+")")
	}
	if f.Query != "" {
		// Substring match on name/description, exact element match on tags.
		conditions = append(conditions, "(name ILIKE :search OR description ILIKE :search OR tags @> :tag)")
		args["search"] = "%" + f.Query + "%"
		args["tag"] = fmt.Sprintf(`["%s"]`, strings.ToLower(f.Query))
	}

	return r.query(ctx, conditions, args, searchOrderBy(f.SortBy), f.Page, f.Limit)
}

// query runs the count query + page query pair over the same conditions.
func (r *PGRepository) query(ctx context.Context, conditions []string, args map[string]interface{}, orderBy string, page, limit int) ([]model.Product, int, error) {
	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int
	countQuery := "SELECT count(*) FROM products" + whereClause
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return nil, 0, errors.Wrap(err, "catalog: count products")
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return nil, 0, errors.Wrap(err, "catalog: scan count")
		}
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	offset := (page - 1) * limit
	query := fmt.Sprintf("SELECT * FROM products%s ORDER BY %s LIMIT %d OFFSET %d", whereClause, orderBy, limit, offset)

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, errors.Wrap(err, "catalog: prepare list")
	}
	defer nstmt.Close()

	var products []model.Product
	if err := nstmt.SelectContext(ctx, &products, args); err != nil {
		return nil, 0, errors.Wrap(err, "catalog: list products")
	}
	return products, count, nil
}

// listOrderBy whitelists sort keys to concrete columns. An id tiebreak keeps
// pagination stable, standing in for the input-order stability of the
// in-memory path.
func listOrderBy(key string) string {
	switch key {
	case dto.SortPriceLow:
		return "price ASC, id ASC"
	case dto.SortPriceHigh:
		return "price DESC, id ASC"
	case dto.SortRating:
		return "rating DESC, id ASC"
	case dto.SortName:
		return "name COLLATE \"en-x-icu\" ASC, id ASC"
	case dto.SortNewest:
		return "created_at DESC, id ASC"
	case dto.SortBestselling:
		return "sales_count DESC, id ASC"
	case "":
		return "created_at ASC, id ASC"
	default:
		return "rating DESC, id ASC"
	}
}

func searchOrderBy(key string) string {
	if key == "" || key == dto.SortRelevance {
		return "rating DESC, id ASC"
	}
	return listOrderBy(key)
}

func (r *PGRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT count(*) FROM products`)
	return count, errors.Wrap(err, "catalog: count")
}

func (r *PGRepository) CountByCategory(ctx context.Context) (map[string]int, error) {
	rows, err := r.DB.QueryxContext(ctx, `SELECT category, count(*) FROM products WHERE status = 'active' GROUP BY category`)
	if err != nil {
		return nil, errors.Wrap(err, "catalog: count by category")
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, errors.Wrap(err, "catalog: scan category count")
		}
		counts[category] = count
	}
	return counts, rows.Err()
}

func (r *PGRepository) TopBySales(ctx context.Context, limit int) ([]model.Product, error) {
	var products []model.Product
	query := `SELECT * FROM products ORDER BY sales_count DESC, id ASC LIMIT $1`
	err := r.DB.SelectContext(ctx, &products, query, limit)
	return products, errors.Wrap(err, "catalog: top by sales")
}

func (r *PGRepository) AdjustStock(ctx context.Context, productID string, delta int) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE products SET stock = stock + $1, updated_at = NOW() WHERE id = $2 AND stock + $1 >= 0`,
		delta, productID,
	)
	if err != nil {
		return errors.Wrap(err, "catalog: adjust stock")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.Errorf("insufficient stock for product %s", productID)
	}
	return nil
}

func (r *PGRepository) IncrementSales(ctx context.Context, productID string, n int) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE products SET sales_count = sales_count + $1, updated_at = NOW() WHERE id = $2`,
		n, productID,
	)
	return errors.Wrap(err, "catalog: increment sales")
}
