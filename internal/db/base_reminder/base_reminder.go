package basereminder

import (
	"collegereminders/internal/core/domain/category"
	c "collegereminders/internal/core/domain/common"
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/reminder"
	"collegereminders/internal/core/domain/timeframe"
	"collegereminders/internal/db"
	"context"

	"github.com/jackc/pgtype"
)

type PgxBaseReminderRepository struct {
	db db.DBTX
}

func NewPgxRepository(dbtx db.DBTX) *PgxBaseReminderRepository {
	if dbtx == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxBaseReminderRepository{db: dbtx}
}

func (r *PgxBaseReminderRepository) Create(ctx context.Context, input reminder.CreateInput) (b reminder.BaseReminder, err error) {
	var (
		id         int64
		categoryID int64
		lateDetail pgtype.Text
	)
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO base_reminder (name, message, detail, late_message, late_detail, category_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, message, detail, late_message, late_detail, category_id`,
		input.Name,
		input.Message,
		input.Detail,
		input.LateMessage,
		db.EncodeText(input.LateDetail.Value, input.LateDetail.IsPresent),
		int64(input.CategoryID),
	).Scan(&id, &b.Name, &b.Message, &b.Detail, &b.LateMessage, &lateDetail, &categoryID)
	if db.IsConstraintViolation(err, db.PG_FOREIGN_KEY_CONSTRAINT_ERR_CODE, "") {
		return b, category.ErrCategoryDoesNotExist
	}
	if err != nil {
		return b, err
	}
	b.ID = reminder.ID(id)
	b.CategoryID = category.ID(categoryID)
	value, ok := db.DecodeText(lateDetail)
	b.LateDetail = c.NewOptional(value, ok)
	return b, nil
}

func (r *PgxBaseReminderRepository) LinkTimeframes(ctx context.Context, id reminder.ID, timeframeIDs []timeframe.ID) error {
	rawIDs := make([]int64, 0, len(timeframeIDs))
	for _, timeframeID := range timeframeIDs {
		rawIDs = append(rawIDs, int64(timeframeID))
	}
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO base_reminder_timeframe (base_reminder_id, timeframe_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT DO NOTHING`,
		int64(id),
		rawIDs,
	)
	if db.IsConstraintViolation(err, db.PG_FOREIGN_KEY_CONSTRAINT_ERR_CODE, "") {
		return reminder.ErrTimeframesNotValid
	}
	return err
}

// ReadWithTimeframes reads base reminders ordered by id with their timeframes ordered by id.
func (r *PgxBaseReminderRepository) ReadWithTimeframes(ctx context.Context) ([]reminder.BaseReminder, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT b.id, b.name, b.message, b.detail, b.late_message, b.late_detail, b.category_id,
			t.id, t.name, t.kind, t.formula
		FROM base_reminder b
		LEFT JOIN base_reminder_timeframe bt ON bt.base_reminder_id = b.id
		LEFT JOIN timeframe t ON t.id = bt.timeframe_id
		ORDER BY b.id, t.id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	baseReminders := make([]reminder.BaseReminder, 0)
	for rows.Next() {
		var (
			b                reminder.BaseReminder
			id, categoryID   int64
			lateDetail       pgtype.Text
			timeframeID      pgtype.Int8
			timeframeName    pgtype.Text
			timeframeKind    pgtype.Text
			timeframeFormula pgtype.Text
		)
		err := rows.Scan(
			&id, &b.Name, &b.Message, &b.Detail, &b.LateMessage, &lateDetail, &categoryID,
			&timeframeID, &timeframeName, &timeframeKind, &timeframeFormula,
		)
		if err != nil {
			return nil, err
		}

		if n := len(baseReminders); n == 0 || baseReminders[n-1].ID != reminder.ID(id) {
			b.ID = reminder.ID(id)
			b.CategoryID = category.ID(categoryID)
			value, ok := db.DecodeText(lateDetail)
			b.LateDetail = c.NewOptional(value, ok)
			b.Timeframes = make([]timeframe.Timeframe, 0)
			baseReminders = append(baseReminders, b)
		}
		if timeframeID.Status != pgtype.Present {
			continue
		}
		kind, _ := timeframe.ParseKind(timeframeKind.String)
		formula, ok := db.DecodeText(timeframeFormula)
		last := &baseReminders[len(baseReminders)-1]
		last.Timeframes = append(last.Timeframes, timeframe.Timeframe{
			ID:      timeframe.ID(timeframeID.Int),
			Name:    timeframeName.String,
			Kind:    kind,
			Formula: c.NewOptional(formula, ok),
		})
	}
	return baseReminders, rows.Err()
}
