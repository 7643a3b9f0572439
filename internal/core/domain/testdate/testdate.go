package testdate

import (
	"context"
	"errors"
	"time"
)

var (
	ErrTestDoesNotExist        = errors.New("test does not exist")
	ErrTestDateDoesNotExist    = errors.New("test date does not exist")
	ErrAdminBeforeRegistration = errors.New("admin date must not be before registration date")
)

type TestID int64

// Test describes a standardized test (SAT, ACT, ...) and the texts of its two reminders.
type Test struct {
	ID                  TestID
	Type                string
	RegistrationMessage string
	RegistrationDetail  string
	AdminMessage        string
	AdminDetail         string
}

type ID int64

// TestDate is one administration of a test: the registration deadline and the test day.
type TestDate struct {
	ID               ID
	TestID           TestID
	RegistrationDate time.Time
	AdminDate        time.Time
	Test             Test
}

type CreateTestInput struct {
	Type                string
	RegistrationMessage string
	RegistrationDetail  string
	AdminMessage        string
	AdminDetail         string
}

type CreateTestDateInput struct {
	TestID           TestID
	RegistrationDate time.Time
	AdminDate        time.Time
}

func (i CreateTestDateInput) Validate() error {
	if i.AdminDate.Before(i.RegistrationDate) {
		return ErrAdminBeforeRegistration
	}
	return nil
}

type Repository interface {
	CreateTest(ctx context.Context, input CreateTestInput) (Test, error)
	CreateTestDate(ctx context.Context, input CreateTestDateInput) (TestDate, error)
	// ReadWithTests returns every test date joined with its test.
	ReadWithTests(ctx context.Context) ([]TestDate, error)
}
