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

func (r *PGRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT count(*) FROM users`)
	return count, errors.Wrap(err, "user: count")
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.DB.GetContext(ctx, &user, `SELECT * FROM users WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "user: find by id")
	}
	return &user, nil
}
