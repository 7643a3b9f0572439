package listuserschools

import (
	c "collegereminders/internal/core/domain/common"
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/logging"
	"collegereminders/internal/core/domain/school"
	"collegereminders/internal/core/domain/user"
	"collegereminders/internal/core/services"
	"collegereminders/internal/core/services/auth"
	"context"
)

type Input struct {
	UserID         user.ID
	IsActiveEquals c.Optional[bool]
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	Schools []school.School
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
	schools, err := s.schoolRepository.Read(ctx, school.ReadOptions{
		UserIDEquals:   c.NewOptional(input.UserID, true),
		IsActiveEquals: input.IsActiveEquals,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	return Result{Schools: schools}, nil
}
