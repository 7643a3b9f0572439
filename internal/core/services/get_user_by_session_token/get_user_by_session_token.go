package getuserbysessiontoken

import (
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/logging"
	"collegereminders/internal/core/domain/user"
	"collegereminders/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	Token user.SessionToken
}

type Result struct {
	User user.User
}

type service struct {
	log               logging.Logger
	sessionRepository user.SessionRepository
}

func New(
	log logging.Logger,
	sessionRepository user.SessionRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sessionRepository == nil {
		panic(e.NewNilArgumentError("sessionRepository"))
	}
	return &service{
		log:               log,
		sessionRepository: sessionRepository,
	}
}

// Run resolves the profile behind a session token. An unknown or expired token
// is returned as user.ErrUserDoesNotExist without being logged.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.sessionRepository.GetUserByToken(ctx, input.Token)
	switch {
	case errors.Is(err, user.ErrUserDoesNotExist):
		return result, err
	case err != nil:
		logging.Error(ctx, s.log, err)
		return result, err
	}

	u.PasswordHash = ""
	s.log.Debug(ctx, "Profile loaded.", logging.Entry("userID", u.ID), logging.Entry("isAdmin", u.IsAdmin))
	return Result{User: u}, nil
}
