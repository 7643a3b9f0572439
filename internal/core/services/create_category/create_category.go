package createcategory

import (
	"collegereminders/internal/core/domain/category"
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/logging"
	"collegereminders/internal/core/domain/user"
	"collegereminders/internal/core/services"
	"collegereminders/internal/core/services/auth"
	"context"
	"errors"
	"strings"
)

var ErrCategoryNameNotSet = errors.New("category name is not set")

type Input struct {
	User user.User
	Name string
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	Category category.Category
}

type service struct {
	log                logging.Logger
	categoryRepository category.Repository
}

func New(
	log logging.Logger,
	categoryRepository category.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if categoryRepository == nil {
		panic(e.NewNilArgumentError("categoryRepository"))
	}
	return &service{
		log:                log,
		categoryRepository: categoryRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := auth.RequireAdmin(input.User); err != nil {
		return result, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return result, ErrCategoryNameNotSet
	}

	created, err := s.categoryRepository.Create(ctx, category.CreateInput{Name: name})
	if errors.Is(err, category.ErrCategoryAlreadyExists) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("name", name))
		return result, err
	}

	s.log.Info(ctx, "Category created.", logging.Entry("categoryID", created.ID))
	return Result{Category: created}, nil
}
