package timeframe

import (
	c "collegereminders/internal/core/domain/common"
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/timeframe"
	"collegereminders/internal/db"
	"context"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

type PgxTimeframeRepository struct {
	db db.DBTX
}

func NewPgxRepository(dbtx db.DBTX) *PgxTimeframeRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxTimeframeRepository{db: dbtx}
}

func (r *PgxTimeframeRepository) Create(ctx context.Context, input timeframe.CreateInput) (timeframe.Timeframe, error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO timeframe (name, kind, formula) VALUES ($1, $2, $3) RETURNING id, name, kind, formula`,
		input.Name,
		input.Kind.String(),
		db.EncodeText(input.Formula.Value, input.Formula.IsPresent),
	)
	return Scan(row)
}

func (r *PgxTimeframeRepository) Read(ctx context.Context) ([]timeframe.Timeframe, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, kind, formula FROM timeframe ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func (r *PgxTimeframeRepository) GetByIDs(ctx context.Context, ids []timeframe.ID) ([]timeframe.Timeframe, error) {
	rawIDs := make([]int64, 0, len(ids))
	for _, id := range ids {
		rawIDs = append(rawIDs, int64(id))
	}
	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, kind, formula FROM timeframe WHERE id = ANY($1) ORDER BY id`,
		rawIDs,
	)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func collect(rows pgx.Rows) ([]timeframe.Timeframe, error) {
	defer rows.Close()
	timeframes := make([]timeframe.Timeframe, 0)
	for rows.Next() {
		t, err := Scan(rows)
		if err != nil {
			return nil, err
		}
		timeframes = append(timeframes, t)
	}
	return timeframes, rows.Err()
}

// Scan reads id, name, kind and formula columns. A kind that is not recognized
// is kept as the unknown kind so due date calculation reports it.
func Scan(row pgx.Row) (t timeframe.Timeframe, err error) {
	var (
		id      int64
		kind    string
		formula pgtype.Text
	)
	if err := row.Scan(&id, &t.Name, &kind, &formula); err != nil {
		return t, err
	}
	t.ID = timeframe.ID(id)
	t.Kind, _ = timeframe.ParseKind(kind)
	value, ok := db.DecodeText(formula)
	t.Formula = c.NewOptional(value, ok)
	return t, nil
}
