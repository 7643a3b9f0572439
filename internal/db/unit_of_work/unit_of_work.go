package uow

import (
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/reminder"
	"collegereminders/internal/core/domain/timeframe"
	uow "collegereminders/internal/core/domain/unit_of_work"
	"collegereminders/internal/core/domain/user"
	basereminder "collegereminders/internal/db/base_reminder"
	dbtimeframe "collegereminders/internal/db/timeframe"
	dbuser "collegereminders/internal/db/user"
	"context"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

type pgxUnitOfWorkContext struct {
	tx pgx.Tx
}

func (c *pgxUnitOfWorkContext) Commit(ctx context.Context) error {
	return c.tx.Commit(ctx)
}

func (c *pgxUnitOfWorkContext) Rollback(ctx context.Context) error {
	return c.tx.Rollback(ctx)
}

func (c *pgxUnitOfWorkContext) Users() user.UserRepository {
	return dbuser.NewPgxRepository(c.tx)
}

func (c *pgxUnitOfWorkContext) Sessions() user.SessionRepository {
	return dbuser.NewPgxSessionRepository(c.tx)
}

func (c *pgxUnitOfWorkContext) BaseReminders() reminder.Repository {
	return basereminder.NewPgxRepository(c.tx)
}

func (c *pgxUnitOfWorkContext) Timeframes() timeframe.Repository {
	return dbtimeframe.NewPgxRepository(c.tx)
}

type PgxUnitOfWork struct {
	db *pgxpool.Pool
}

func NewPgxUnitOfWork(db *pgxpool.Pool) *PgxUnitOfWork {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUnitOfWork{db: db}
}

func (u *PgxUnitOfWork) Begin(ctx context.Context) (uow.Context, error) {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return &pgxUnitOfWorkContext{tx: tx}, nil
}
