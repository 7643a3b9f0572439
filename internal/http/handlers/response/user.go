package response

import (
	"collegereminders/internal/core/domain/user"
	"time"
)

type User struct {
	ID                   int64     `json:"id"`
	Email                string    `json:"email"`
	Name                 string    `json:"name"`
	PhoneNumber          *string   `json:"phone_number"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	IsAdmin              bool      `json:"is_admin"`
	CreatedAt            time.Time `json:"created_at"`
}

func (u *User) FromDomainUser(du user.User) {
	u.ID = int64(du.ID)
	u.Email = string(du.Email)
	u.Name = du.Name
	if du.PhoneNumber.IsPresent {
		phoneNumber := string(du.PhoneNumber.Value)
		u.PhoneNumber = &phoneNumber
	}
	u.NotificationsEnabled = du.NotificationsEnabled
	u.IsAdmin = du.IsAdmin
	u.CreatedAt = du.CreatedAt
}
