package user

import (
	c "collegereminders/internal/core/domain/common"
	e "collegereminders/internal/core/domain/errors"
	"time"
)

type ID int64

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type SessionToken string

func (t SessionToken) String() string {
	return "***"
}

type User struct {
	ID                   ID
	Email                c.Email
	PasswordHash         PasswordHash
	Name                 string
	PhoneNumber          c.Optional[c.PhoneNumber]
	NotificationsEnabled bool
	IsAdmin              bool
	CreatedAt            time.Time
}

func (u *User) Validate() error {
	if u.Email == "" {
		return e.NewInvalidStateError("email is not set for user %d", u.ID)
	}
	if u.PasswordHash == "" {
		return e.NewInvalidStateError("password hash is not set for user %d", u.ID)
	}
	return nil
}

// CanReceiveSMS reports whether daily digests go out by text message.
func (u *User) CanReceiveSMS() bool {
	return u.NotificationsEnabled && u.PhoneNumber.IsPresent && u.PhoneNumber.Value != ""
}

type PasswordHasher interface {
	HashPassword(password RawPassword) (PasswordHash, error)
	ValidatePassword(password RawPassword, hash PasswordHash) bool
}

type SessionTokenGenerator interface {
	GenerateToken() SessionToken
}
