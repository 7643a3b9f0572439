package timeframe

import (
	"context"
	"fmt"
	"sync"
)

type FakeRepository struct {
	Timeframes  []Timeframe
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (t Timeframe, err error) {
	if r.ReturnError {
		return t, fmt.Errorf("could not create timeframe %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	t = Timeframe{
		ID:      ID(len(r.Timeframes) + 1),
		Name:    input.Name,
		Kind:    input.Kind,
		Formula: input.Formula,
	}
	r.Timeframes = append(r.Timeframes, t)
	return t, nil
}

func (r *FakeRepository) Read(ctx context.Context) ([]Timeframe, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not read timeframes")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]Timeframe(nil), r.Timeframes...), nil
}

func (r *FakeRepository) GetByIDs(ctx context.Context, ids []ID) ([]Timeframe, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not read timeframes")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	found := make([]Timeframe, 0, len(ids))
	for _, id := range ids {
		for _, t := range r.Timeframes {
			if t.ID == id {
				found = append(found, t)
			}
		}
	}
	return found, nil
}
