package user

import (
	c "collegereminders/internal/core/domain/common"
	"context"
	"time"
)

type CreateUserInput struct {
	Email                c.Email
	PasswordHash         PasswordHash
	Name                 string
	PhoneNumber          c.Optional[c.PhoneNumber]
	NotificationsEnabled bool
	CreatedAt            time.Time
}

type UpdateUserInput struct {
	ID                           ID
	DoNameUpdate                 bool
	Name                         string
	DoPhoneNumberUpdate          bool
	PhoneNumber                  c.Optional[c.PhoneNumber]
	DoNotificationsEnabledUpdate bool
	NotificationsEnabled         bool
}

type ReadOptions struct {
	NotificationsEnabled c.Optional[bool]
	Limit                c.Optional[uint]
	AfterID              ID
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	Update(ctx context.Context, input UpdateUserInput) (User, error)
	SetPassword(ctx context.Context, id ID, hash PasswordHash) error
	Read(ctx context.Context, options ReadOptions) ([]User, error)
}

type CreateSessionInput struct {
	UserID    ID
	Token     SessionToken
	CreatedAt time.Time
}

type SessionRepository interface {
	Create(ctx context.Context, input CreateSessionInput) error
	GetUserByToken(ctx context.Context, token SessionToken) (User, error)
	Delete(ctx context.Context, token SessionToken) (userID ID, err error)
}
