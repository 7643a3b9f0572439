package updateschool

import (
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/logging"
	"collegereminders/internal/core/domain/school"
	"collegereminders/internal/core/domain/user"
	"collegereminders/internal/core/services"
	"collegereminders/internal/core/services/auth"
	"context"
	"errors"
	"strings"
	"time"
)

type Input struct {
	UserID           user.ID
	SchoolID         school.ID
	DoNameUpdate     bool
	Name             string
	DoDueDateUpdate  bool
	DueDate          time.Time
	DoIsActiveUpdate bool
	IsActive         bool
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
}

func New(
	log logging.Logger,
	schoolRepository school.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if schoolRepository == nil {
		panic(e.NewNilArgumentError("schoolRepository"))
	}
	return &service{
		log:              log,
		schoolRepository: schoolRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	name := strings.TrimSpace(input.Name)
	if input.DoNameUpdate && name == "" {
		return result, school.ErrSchoolNameNotSet
	}

	updatedSchool, err := s.schoolRepository.Update(ctx, school.UpdateInput{
		ID:               input.SchoolID,
		UserID:           input.UserID,
		DoNameUpdate:     input.DoNameUpdate,
		Name:             name,
		DoDueDateUpdate:  input.DoDueDateUpdate,
		DueDate:          input.DueDate.UTC(),
		DoIsActiveUpdate: input.DoIsActiveUpdate,
		IsActive:         input.IsActive,
	})
	if errors.Is(err, school.ErrSchoolDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "School successfully updated.", logging.Entry("schoolID", updatedSchool.ID))
	return Result{School: updatedSchool}, nil
}
