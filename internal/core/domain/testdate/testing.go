package testdate

import (
	"context"
	"fmt"
	"sync"
)

type FakeRepository struct {
	Tests       []Test
	TestDates   []TestDate
	ReadError   error
	ReturnError bool
	ReadCount   int
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{}
}

func (r *FakeRepository) CreateTest(ctx context.Context, input CreateTestInput) (t Test, err error) {
	if r.ReturnError {
		return t, fmt.Errorf("could not create test %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	t = Test{
		ID:                  TestID(len(r.Tests) + 1),
		Type:                input.Type,
		RegistrationMessage: input.RegistrationMessage,
		RegistrationDetail:  input.RegistrationDetail,
		AdminMessage:        input.AdminMessage,
		AdminDetail:         input.AdminDetail,
	}
	r.Tests = append(r.Tests, t)
	return t, nil
}

func (r *FakeRepository) CreateTestDate(ctx context.Context, input CreateTestDateInput) (td TestDate, err error) {
	if r.ReturnError {
		return td, fmt.Errorf("could not create test date %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, t := range r.Tests {
		if t.ID == input.TestID {
			td = TestDate{
				ID:               ID(len(r.TestDates) + 1),
				TestID:           input.TestID,
				RegistrationDate: input.RegistrationDate,
				AdminDate:        input.AdminDate,
				Test:             t,
			}
			r.TestDates = append(r.TestDates, td)
			return td, nil
		}
	}
	return td, ErrTestDoesNotExist
}

func (r *FakeRepository) ReadWithTests(ctx context.Context) ([]TestDate, error) {
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.ReadCount++
	return append([]TestDate(nil), r.TestDates...), nil
}
