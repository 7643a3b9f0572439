package reminder

import (
	c "collegereminders/internal/core/domain/common"
	"collegereminders/internal/core/domain/user"
	"context"
	"fmt"
	"strings"
)

type DigestItem struct {
	Name    string
	Message string
}

// Digest is the list of reminders due for a user on one date.
type Digest struct {
	UserID user.ID
	Date   string
	Items  []DigestItem
}

func NewDigest(userID user.ID, g Group) Digest {
	items := make([]DigestItem, 0, len(g.Reminders))
	for _, r := range g.Reminders {
		items = append(items, DigestItem{Name: r.Name, Message: r.Message})
	}
	return Digest{UserID: userID, Date: g.DueDate, Items: items}
}

func (d Digest) Subject() string {
	date, err := c.ParseDate(d.Date)
	if err != nil {
		return "Your college application reminders"
	}
	return fmt.Sprintf("Your college application reminders for %s", c.FormatShortDate(date))
}

func (d Digest) Text() string {
	var b strings.Builder
	b.WriteString(d.Subject())
	b.WriteString(":")
	for _, item := range d.Items {
		b.WriteString("\n- ")
		b.WriteString(item.Name)
		if item.Message != "" {
			b.WriteString(": ")
			b.WriteString(item.Message)
		}
	}
	return b.String()
}

type DigestPublisher interface {
	PublishDigest(ctx context.Context, digest Digest) error
}

type SMSSender interface {
	SendSMS(ctx context.Context, to c.PhoneNumber, body string) error
}

type EmailSender interface {
	SendEmail(ctx context.Context, to c.Email, subject string, body string) error
}
