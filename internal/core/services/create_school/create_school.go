package createschool

import (
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/logging"
	"collegereminders/internal/core/domain/school"
	"collegereminders/internal/core/domain/user"
	"collegereminders/internal/core/services"
	"collegereminders/internal/core/services/auth"
	"context"
	"strings"
	"time"
)

type Input struct {
	UserID  user.ID
	Name    string
	DueDate time.Time
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	School school.School
}

type service struct {
	log              logging.Logger
	schoolRepository school.Repository
	now              func() time.Time
}

func New(
	log logging.Logger,
	schoolRepository school.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if schoolRepository == nil {
		panic(e.NewNilArgumentError("schoolRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:              log,
		schoolRepository: schoolRepository,
		now:              now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return result, school.ErrSchoolNameNotSet
	}

	createdSchool, err := s.schoolRepository.Create(ctx, school.CreateInput{
		UserID:    input.UserID,
		Name:      name,
		DueDate:   input.DueDate.UTC(),
		IsActive:  true,
		CreatedAt: s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(
		ctx,
		"School successfully created.",
		logging.Entry("userID", input.UserID),
		logging.Entry("schoolID", createdSchool.ID),
	)
	return Result{School: createdSchool}, nil
}
