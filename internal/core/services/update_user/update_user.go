package updateuser

import (
	c "collegereminders/internal/core/domain/common"
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/logging"
	"collegereminders/internal/core/domain/user"
	"collegereminders/internal/core/services"
	"collegereminders/internal/core/services/auth"
	"context"
)

type Input struct {
	UserID                       user.ID
	DoNameUpdate                 bool
	Name                         string
	DoPhoneNumberUpdate          bool
	PhoneNumber                  c.Optional[c.PhoneNumber]
	DoNotificationsEnabledUpdate bool
	NotificationsEnabled         bool
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	User user.User
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	phoneNumber := input.PhoneNumber
	if phoneNumber.IsPresent && phoneNumber.Value == "" {
		phoneNumber = c.Optional[c.PhoneNumber]{}
	}
	updatedUser, err := s.userRepository.Update(ctx, user.UpdateUserInput{
		ID:                           input.UserID,
		DoNameUpdate:                 input.DoNameUpdate,
		Name:                         input.Name,
		DoPhoneNumberUpdate:          input.DoPhoneNumberUpdate,
		PhoneNumber:                  phoneNumber,
		DoNotificationsEnabledUpdate: input.DoNotificationsEnabledUpdate,
		NotificationsEnabled:         input.NotificationsEnabled,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "User successfully updated.", logging.Entry("userID", updatedUser.ID))
	result.User = updatedUser
	return result, nil
}
