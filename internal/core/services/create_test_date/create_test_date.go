package createtestdate

import (
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/logging"
	"collegereminders/internal/core/domain/testdate"
	"collegereminders/internal/core/domain/user"
	"collegereminders/internal/core/services"
	"collegereminders/internal/core/services/auth"
	"context"
	"errors"
	"time"
)

type Input struct {
	User             user.User
	TestID           testdate.TestID
	RegistrationDate time.Time
	AdminDate        time.Time
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	TestDate testdate.TestDate
}

type service struct {
	log                logging.Logger
	testDateRepository testdate.Repository
}

func New(
	log logging.Logger,
	testDateRepository testdate.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if testDateRepository == nil {
		panic(e.NewNilArgumentError("testDateRepository"))
	}
	return &service{
		log:                log,
		testDateRepository: testDateRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := auth.RequireAdmin(input.User); err != nil {
		return result, err
	}
	createInput := testdate.CreateTestDateInput{
		TestID:           input.TestID,
		RegistrationDate: input.RegistrationDate.UTC(),
		AdminDate:        input.AdminDate.UTC(),
	}
	if err := createInput.Validate(); err != nil {
		return result, err
	}

	created, err := s.testDateRepository.CreateTestDate(ctx, createInput)
	if errors.Is(err, testdate.ErrTestDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("testID", input.TestID))
		return result, err
	}

	s.log.Info(ctx, "Test date created.", logging.Entry("testDateID", created.ID))
	return Result{TestDate: created}, nil
}
