package uow

import (
	"collegereminders/internal/core/domain/reminder"
	"collegereminders/internal/core/domain/timeframe"
	"collegereminders/internal/core/domain/user"
	"context"
)

type FakeUnitOfWorkContext struct {
	UserRepository         *user.FakeUserRepository
	SessionRepository      *user.FakeSessionRepository
	BaseReminderRepository *reminder.FakeRepository
	TimeframeRepository    *timeframe.FakeRepository
	WasRollbackCalled      bool
	WasCommitCalled        bool
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	c.WasRollbackCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	c.WasCommitCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Users() user.UserRepository {
	return c.UserRepository
}

func (c *FakeUnitOfWorkContext) Sessions() user.SessionRepository {
	return c.SessionRepository
}

func (c *FakeUnitOfWorkContext) BaseReminders() reminder.Repository {
	return c.BaseReminderRepository
}

func (c *FakeUnitOfWorkContext) Timeframes() timeframe.Repository {
	return c.TimeframeRepository
}

type FakeUnitOfWork struct {
	Context *FakeUnitOfWorkContext
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	users := user.NewFakeUserRepository()
	timeframes := timeframe.NewFakeRepository()
	return &FakeUnitOfWork{
		Context: &FakeUnitOfWorkContext{
			UserRepository:         users,
			SessionRepository:      user.NewFakeSessionRepository(users),
			BaseReminderRepository: reminder.NewFakeRepository(timeframes),
			TimeframeRepository:    timeframes,
		},
	}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	return u.Context, nil
}
