package deleteschool

import (
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/logging"
	"collegereminders/internal/core/domain/school"
	"collegereminders/internal/core/domain/user"
	"collegereminders/internal/core/services"
	"collegereminders/internal/core/services/auth"
	"context"
	"errors"
)

type Input struct {
	UserID   user.ID
	SchoolID school.ID
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct{}

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
	err = s.schoolRepository.Delete(ctx, input.SchoolID, input.UserID)
	if errors.Is(err, school.ErrSchoolDoesNotExist) {
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(
		ctx,
		"School successfully deleted.",
		logging.Entry("userID", input.UserID),
		logging.Entry("schoolID", input.SchoolID),
	)
	return result, nil
}
