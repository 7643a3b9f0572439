package schema

import (
	"collegereminders/internal/core/domain/reminder"
	"collegereminders/internal/core/domain/user"
	"encoding/json"
	"fmt"
)

type DigestItem struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Digest is the AMQP message body published for every user with reminders due today.
type Digest struct {
	UserID int64        `json:"user_id"`
	Date   string       `json:"date"`
	Items  []DigestItem `json:"items"`
}

func FromDigest(d reminder.Digest) Digest {
	items := make([]DigestItem, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, DigestItem{Name: item.Name, Message: item.Message})
	}
	return Digest{UserID: int64(d.UserID), Date: d.Date, Items: items}
}

func (d Digest) ToDigest() reminder.Digest {
	items := make([]reminder.DigestItem, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, reminder.DigestItem{Name: item.Name, Message: item.Message})
	}
	return reminder.Digest{UserID: user.ID(d.UserID), Date: d.Date, Items: items}
}

func (d *Digest) Marshal() ([]byte, error) {
	return json.Marshal(d)
}

func (d *Digest) Unmarshal(data []byte) error {
	if err := json.Unmarshal(data, d); err != nil {
		return err
	}
	if d.UserID == 0 {
		return fmt.Errorf("digest message has no user_id")
	}
	return nil
}
