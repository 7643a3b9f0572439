package uow

import (
	"collegereminders/internal/core/domain/reminder"
	"collegereminders/internal/core/domain/timeframe"
	"collegereminders/internal/core/domain/user"
	"context"
)

// Context exposes repositories bound to one transaction.
type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Users() user.UserRepository
	Sessions() user.SessionRepository
	BaseReminders() reminder.Repository
	Timeframes() timeframe.Repository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
