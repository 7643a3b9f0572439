package category

import (
	"collegereminders/internal/core/domain/category"
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/db"
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
)

const NAME_CONSTRAINT_NAME = "category_name_idx"

type PgxCategoryRepository struct {
	db db.DBTX
}

func NewPgxRepository(dbtx db.DBTX) *PgxCategoryRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxCategoryRepository{db: dbtx}
}

func (r *PgxCategoryRepository) Create(ctx context.Context, input category.CreateInput) (cat category.Category, err error) {
	var id int64
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO category (name) VALUES ($1) RETURNING id, name`,
		input.Name,
	).Scan(&id, &cat.Name)
	if db.IsConstraintViolation(err, db.PG_UNIQUE_CONSTRAINT_ERR_CODE, NAME_CONSTRAINT_NAME) {
		return cat, category.ErrCategoryAlreadyExists
	}
	if err != nil {
		return cat, err
	}
	cat.ID = category.ID(id)
	return cat, nil
}

func (r *PgxCategoryRepository) GetByID(ctx context.Context, id category.ID) (cat category.Category, err error) {
	err = r.db.QueryRow(ctx, `SELECT name FROM category WHERE id = $1`, int64(id)).Scan(&cat.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return cat, category.ErrCategoryDoesNotExist
	}
	if err != nil {
		return cat, err
	}
	cat.ID = id
	return cat, nil
}

func (r *PgxCategoryRepository) Read(ctx context.Context) ([]category.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM category ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]category.Category, 0)
	for rows.Next() {
		var (
			id  int64
			cat category.Category
		)
		if err := rows.Scan(&id, &cat.Name); err != nil {
			return nil, err
		}
		cat.ID = category.ID(id)
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}
