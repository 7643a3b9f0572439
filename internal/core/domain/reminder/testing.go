package reminder

import (
	c "collegereminders/internal/core/domain/common"
	"collegereminders/internal/core/domain/timeframe"
	"context"
	"fmt"
	"sync"
)

type FakeRepository struct {
	BaseReminders []BaseReminder
	Timeframes    *timeframe.FakeRepository
	ReadError     error
	ReturnError   bool
	ReadCount     int
	lock          sync.Mutex
}

func NewFakeRepository(timeframes *timeframe.FakeRepository) *FakeRepository {
	return &FakeRepository{Timeframes: timeframes}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (b BaseReminder, err error) {
	if r.ReturnError {
		return b, fmt.Errorf("could not create base reminder %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	b = BaseReminder{
		ID:          ID(len(r.BaseReminders) + 1),
		Name:        input.Name,
		Message:     input.Message,
		Detail:      input.Detail,
		LateMessage: input.LateMessage,
		LateDetail:  input.LateDetail,
		CategoryID:  input.CategoryID,
	}
	r.BaseReminders = append(r.BaseReminders, b)
	return b, nil
}

func (r *FakeRepository) LinkTimeframes(ctx context.Context, id ID, timeframeIDs []timeframe.ID) error {
	if r.ReturnError {
		return fmt.Errorf("could not link timeframes to base reminder %d", id)
	}
	timeframes, err := r.Timeframes.GetByIDs(ctx, timeframeIDs)
	if err != nil {
		return err
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, b := range r.BaseReminders {
		if b.ID == id {
			r.BaseReminders[ix].Timeframes = append(r.BaseReminders[ix].Timeframes, timeframes...)
			return nil
		}
	}
	return ErrBaseReminderDoesNotExist
}

func (r *FakeRepository) ReadWithTimeframes(ctx context.Context) ([]BaseReminder, error) {
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.ReadCount++
	return append([]BaseReminder(nil), r.BaseReminders...), nil
}

type FakeDigestPublisher struct {
	Published []Digest
	Error     error
	lock      sync.Mutex
}

func NewFakeDigestPublisher() *FakeDigestPublisher {
	return &FakeDigestPublisher{}
}

func (p *FakeDigestPublisher) PublishDigest(ctx context.Context, digest Digest) error {
	if p.Error != nil {
		return p.Error
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Published = append(p.Published, digest)
	return nil
}

type SentSMS struct {
	To   c.PhoneNumber
	Body string
}

type FakeSMSSender struct {
	Sent  []SentSMS
	Error error
	lock  sync.Mutex
}

func NewFakeSMSSender() *FakeSMSSender {
	return &FakeSMSSender{}
}

func (s *FakeSMSSender) SendSMS(ctx context.Context, to c.PhoneNumber, body string) error {
	if s.Error != nil {
		return s.Error
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, SentSMS{To: to, Body: body})
	return nil
}

type SentEmail struct {
	To      c.Email
	Subject string
	Body    string
}

type FakeEmailSender struct {
	Sent  []SentEmail
	Error error
	lock  sync.Mutex
}

func NewFakeEmailSender() *FakeEmailSender {
	return &FakeEmailSender{}
}

func (s *FakeEmailSender) SendEmail(ctx context.Context, to c.Email, subject string, body string) error {
	if s.Error != nil {
		return s.Error
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, SentEmail{To: to, Subject: subject, Body: body})
	return nil
}
