package timeframe

import (
	c "collegereminders/internal/core/domain/common"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"
)

var (
	ErrInvalidTimeframeFormula = errors.New("invalid timeframe formula")
	ErrTimeframeDoesNotExist   = errors.New("timeframe does not exist")
)

type ID int64

// Timeframe turns an anchor date (usually a school's application deadline) into a due date.
// Formula is absent for "now", a whole-day count for "relative" and a date for "absolute".
type Timeframe struct {
	ID      ID
	Name    string
	Kind    Kind
	Formula c.Optional[string]
}

func (t Timeframe) Validate() error {
	switch t.Kind {
	case KindNow:
		if t.Formula.IsPresent && t.Formula.Value != "" {
			return fmt.Errorf("%w: formula must be empty for now", ErrInvalidTimeframeFormula)
		}
		return nil
	case KindRelative:
		_, err := t.days()
		return err
	case KindAbsolute:
		_, err := t.date()
		return err
	default:
		return fmt.Errorf("%w: %q", ErrInvalidTimeframeKind, t.Kind)
	}
}

// DueDate computes the YYYY-MM-DD due date of the timeframe for the given anchor.
func (t Timeframe) DueDate(anchor time.Time, now time.Time) (string, error) {
	switch t.Kind {
	case KindNow:
		return c.FormatDate(now.UTC()), nil
	case KindRelative:
		days, err := t.days()
		if err != nil {
			return "", err
		}
		return c.FormatDate(c.SubDays(anchor, days)), nil
	case KindAbsolute:
		date, err := t.date()
		if err != nil {
			return "", err
		}
		return c.FormatDate(date), nil
	default:
		return "", fmt.Errorf("%w: %q (timeframe %d)", ErrInvalidTimeframeKind, t.Kind, t.ID)
	}
}

func (t Timeframe) days() (int, error) {
	if !t.Formula.IsPresent {
		return 0, fmt.Errorf("%w: relative timeframe %d has no formula", ErrInvalidTimeframeFormula, t.ID)
	}
	days, err := strconv.Atoi(t.Formula.Value)
	if err != nil || days < 0 || strconv.Itoa(days) != t.Formula.Value {
		return 0, fmt.Errorf("%w: %q is not a day count", ErrInvalidTimeframeFormula, t.Formula.Value)
	}
	return days, nil
}

func (t Timeframe) date() (time.Time, error) {
	if !t.Formula.IsPresent {
		return time.Time{}, fmt.Errorf("%w: absolute timeframe %d has no formula", ErrInvalidTimeframeFormula, t.ID)
	}
	date, err := c.ParseDate(t.Formula.Value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a date", ErrInvalidTimeframeFormula, t.Formula.Value)
	}
	return date, nil
}

type CreateInput struct {
	Name    string
	Kind    Kind
	Formula c.Optional[string]
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Timeframe, error)
	Read(ctx context.Context) ([]Timeframe, error)
	GetByIDs(ctx context.Context, ids []ID) ([]Timeframe, error)
}
