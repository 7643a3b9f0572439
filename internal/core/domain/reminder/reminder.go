package reminder

import (
	"collegereminders/internal/core/domain/category"
	c "collegereminders/internal/core/domain/common"
	"collegereminders/internal/core/domain/timeframe"
	"context"
	"errors"
)

var (
	ErrBaseReminderDoesNotExist = errors.New("base reminder does not exist")
	ErrTimeframesNotSet         = errors.New("base reminder timeframes are not set")
	ErrTimeframesNotValid       = errors.New("base reminder timeframes are not valid")
)

type ID int64

// BaseReminder is admin-authored reminder content, expanded per school by its timeframes.
type BaseReminder struct {
	ID          ID
	Name        string
	Message     string
	Detail      string
	LateMessage string
	LateDetail  c.Optional[string]
	CategoryID  category.ID
	Timeframes  []timeframe.Timeframe
}

func (b BaseReminder) TimeframeIDs() []timeframe.ID {
	ids := make([]timeframe.ID, 0, len(b.Timeframes))
	for _, t := range b.Timeframes {
		ids = append(ids, t.ID)
	}
	return ids
}

type CreateInput struct {
	Name        string
	Message     string
	Detail      string
	LateMessage string
	LateDetail  c.Optional[string]
	CategoryID  category.ID
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (BaseReminder, error)
	LinkTimeframes(ctx context.Context, id ID, timeframeIDs []timeframe.ID) error
	// ReadWithTimeframes returns every base reminder with its timeframes attached.
	ReadWithTimeframes(ctx context.Context) ([]BaseReminder, error)
}
