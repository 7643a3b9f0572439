package school

import (
	"collegereminders/internal/core/domain/user"
	"context"
	"fmt"
	"sync"
)

type FakeRepository struct {
	Schools     []School
	ReadError   error
	ReturnError bool
	ReadWith    []ReadOptions
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (s School, err error) {
	if r.ReturnError {
		return s, fmt.Errorf("could not create school %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, existing := range r.Schools {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	s = School{
		ID:        maxID + 1,
		UserID:    input.UserID,
		Name:      input.Name,
		DueDate:   input.DueDate,
		IsActive:  input.IsActive,
		CreatedAt: input.CreatedAt,
	}
	r.Schools = append(r.Schools, s)
	return s, nil
}

func (r *FakeRepository) Read(ctx context.Context, options ReadOptions) ([]School, error) {
	if r.ReadError != nil {
		return nil, r.ReadError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.ReadWith = append(r.ReadWith, options)
	schools := make([]School, 0, len(r.Schools))
	for _, s := range r.Schools {
		if options.UserIDEquals.IsPresent && s.UserID != options.UserIDEquals.Value {
			continue
		}
		if options.IDEquals.IsPresent && s.ID != options.IDEquals.Value {
			continue
		}
		if options.IsActiveEquals.IsPresent && s.IsActive != options.IsActiveEquals.Value {
			continue
		}
		schools = append(schools, s)
	}
	return schools, nil
}

func (r *FakeRepository) Update(ctx context.Context, input UpdateInput) (s School, err error) {
	if r.ReturnError {
		return s, fmt.Errorf("could not update school %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, existing := range r.Schools {
		if existing.ID != input.ID || existing.UserID != input.UserID {
			continue
		}
		if input.DoNameUpdate {
			r.Schools[ix].Name = input.Name
		}
		if input.DoDueDateUpdate {
			r.Schools[ix].DueDate = input.DueDate
		}
		if input.DoIsActiveUpdate {
			r.Schools[ix].IsActive = input.IsActive
		}
		return r.Schools[ix], nil
	}
	return s, ErrSchoolDoesNotExist
}

func (r *FakeRepository) Delete(ctx context.Context, id ID, userID user.ID) error {
	if r.ReturnError {
		return fmt.Errorf("could not delete school %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix, existing := range r.Schools {
		if existing.ID == id && existing.UserID == userID {
			r.Schools = append(r.Schools[:ix], r.Schools[ix+1:]...)
			return nil
		}
	}
	return ErrSchoolDoesNotExist
}
