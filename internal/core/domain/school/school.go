package school

import (
	c "collegereminders/internal/core/domain/common"
	"collegereminders/internal/core/domain/user"
	"context"
	"errors"
	"time"
)

var (
	ErrSchoolDoesNotExist = errors.New("school does not exist")
	ErrSchoolNameNotSet   = errors.New("school name is not set")
)

type ID int64

// School is an application a user is tracking. DueDate is the application deadline
// that relative timeframes count back from.
type School struct {
	ID        ID
	UserID    user.ID
	Name      string
	DueDate   time.Time
	IsActive  bool
	CreatedAt time.Time
}

type CreateInput struct {
	UserID    user.ID
	Name      string
	DueDate   time.Time
	IsActive  bool
	CreatedAt time.Time
}

type UpdateInput struct {
	ID               ID
	UserID           user.ID
	DoNameUpdate     bool
	Name             string
	DoDueDateUpdate  bool
	DueDate          time.Time
	DoIsActiveUpdate bool
	IsActive         bool
}

type ReadOptions struct {
	UserIDEquals   c.Optional[user.ID]
	IDEquals       c.Optional[ID]
	IsActiveEquals c.Optional[bool]
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (School, error)
	Read(ctx context.Context, options ReadOptions) ([]School, error)
	Update(ctx context.Context, input UpdateInput) (School, error)
	Delete(ctx context.Context, id ID, userID user.ID) error
}
