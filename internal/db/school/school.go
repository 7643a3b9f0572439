package school

import (
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/school"
	"collegereminders/internal/core/domain/user"
	"collegereminders/internal/db"
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v4"
)

const schoolColumns = `id, user_id, name, due_date, is_active, created_at`

type PgxSchoolRepository struct {
	db db.DBTX
}

func NewPgxRepository(dbtx db.DBTX) *PgxSchoolRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxSchoolRepository{db: dbtx}
}

func (r *PgxSchoolRepository) Create(ctx context.Context, input school.CreateInput) (s school.School, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO school (user_id, name, due_date, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+schoolColumns,
		int64(input.UserID),
		input.Name,
		input.DueDate,
		input.IsActive,
		input.CreatedAt,
	)
	return scanSchool(row)
}

func (r *PgxSchoolRepository) Read(ctx context.Context, options school.ReadOptions) ([]school.School, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT `+schoolColumns+` FROM school
		WHERE ($1::bigint IS NULL OR user_id = $1)
			AND ($2::bigint IS NULL OR id = $2)
			AND ($3::boolean IS NULL OR is_active = $3)
		ORDER BY id`,
		db.EncodeInt8(int64(options.UserIDEquals.Value), options.UserIDEquals.IsPresent),
		db.EncodeInt8(int64(options.IDEquals.Value), options.IDEquals.IsPresent),
		db.EncodeBool(options.IsActiveEquals.Value, options.IsActiveEquals.IsPresent),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schools := make([]school.School, 0)
	for rows.Next() {
		s, err := scanSchool(rows)
		if err != nil {
			return nil, err
		}
		schools = append(schools, s)
	}
	return schools, rows.Err()
}

func (r *PgxSchoolRepository) Update(ctx context.Context, input school.UpdateInput) (s school.School, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE school SET
			name = CASE WHEN $3::boolean THEN $4 ELSE name END,
			due_date = CASE WHEN $5::boolean THEN $6::date ELSE due_date END,
			is_active = CASE WHEN $7::boolean THEN $8 ELSE is_active END
		WHERE id = $1 AND user_id = $2
		RETURNING `+schoolColumns,
		int64(input.ID),
		int64(input.UserID),
		input.DoNameUpdate,
		input.Name,
		input.DoDueDateUpdate,
		input.DueDate,
		input.DoIsActiveUpdate,
		input.IsActive,
	)
	s, err = scanSchool(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return s, school.ErrSchoolDoesNotExist
	}
	return s, err
}

func (r *PgxSchoolRepository) Delete(ctx context.Context, id school.ID, userID user.ID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM school WHERE id = $1 AND user_id = $2`, int64(id), int64(userID))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return school.ErrSchoolDoesNotExist
	}
	return nil
}

func scanSchool(row pgx.Row) (s school.School, err error) {
	var (
		id        int64
		userID    int64
		dueDate   time.Time
		createdAt time.Time
	)
	err = row.Scan(&id, &userID, &s.Name, &dueDate, &s.IsActive, &createdAt)
	if err != nil {
		return s, err
	}
	s.ID = school.ID(id)
	s.UserID = user.ID(userID)
	s.DueDate = dueDate.UTC()
	s.CreatedAt = createdAt.UTC()
	return s, nil
}
