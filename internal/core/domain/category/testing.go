package category

import (
	"context"
	"fmt"
	"sync"
)

type FakeRepository struct {
	Categories  []Category
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (cat Category, err error) {
	if r.ReturnError {
		return cat, fmt.Errorf("could not create category %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Categories {
		if existing.Name == input.Name {
			return cat, ErrCategoryAlreadyExists
		}
	}
	cat = Category{ID: ID(len(r.Categories) + 1), Name: input.Name}
	r.Categories = append(r.Categories, cat)
	return cat, nil
}

func (r *FakeRepository) GetByID(ctx context.Context, id ID) (cat Category, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Categories {
		if existing.ID == id {
			return existing, nil
		}
	}
	return cat, ErrCategoryDoesNotExist
}

func (r *FakeRepository) Read(ctx context.Context) ([]Category, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not read categories")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]Category(nil), r.Categories...), nil
}
