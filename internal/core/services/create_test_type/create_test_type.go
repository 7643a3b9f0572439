package createtesttype

import (
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/logging"
	"collegereminders/internal/core/domain/testdate"
	"collegereminders/internal/core/domain/user"
	"collegereminders/internal/core/services"
	"collegereminders/internal/core/services/auth"
	"context"
	"errors"
	"strings"
)

var ErrTestTypeNotSet = errors.New("test type is not set")

type Input struct {
	User                user.User
	Type                string
	RegistrationMessage string
	RegistrationDetail  string
	AdminMessage        string
	AdminDetail         string
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	Test testdate.Test
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
	testType := strings.TrimSpace(input.Type)
	if testType == "" {
		return result, ErrTestTypeNotSet
	}

	created, err := s.testDateRepository.CreateTest(ctx, testdate.CreateTestInput{
		Type:                testType,
		RegistrationMessage: input.RegistrationMessage,
		RegistrationDetail:  input.RegistrationDetail,
		AdminMessage:        input.AdminMessage,
		AdminDetail:         input.AdminDetail,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("type", testType))
		return result, err
	}

	s.log.Info(ctx, "Test created.", logging.Entry("testID", created.ID), logging.Entry("type", created.Type))
	return Result{Test: created}, nil
}
