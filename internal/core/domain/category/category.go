package category

import (
	"context"
	"errors"
)

var (
	ErrCategoryDoesNotExist  = errors.New("category does not exist")
	ErrCategoryAlreadyExists = errors.New("category already exists")
)

type ID int64

type Category struct {
	ID   ID
	Name string
}

type CreateInput struct {
	Name string
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Category, error)
	GetByID(ctx context.Context, id ID) (Category, error)
	Read(ctx context.Context) ([]Category, error)
}
