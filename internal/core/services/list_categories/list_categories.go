package listcategories

import (
	"collegereminders/internal/core/domain/category"
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/logging"
	"collegereminders/internal/core/services"
	"context"
)

type Input struct{}

type Result struct {
	Categories []category.Category
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
	categories, err := s.categoryRepository.Read(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	return Result{Categories: categories}, nil
}
