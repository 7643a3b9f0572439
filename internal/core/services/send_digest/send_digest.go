package senddigest

import (
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/logging"
	"collegereminders/internal/core/domain/reminder"
	"collegereminders/internal/core/domain/user"
	"collegereminders/internal/core/services"
	"context"
	"errors"
)

type Channel struct {
	v string
}

func (c Channel) String() string {
	return c.v
}

var (
	ChannelNone  = Channel{}
	ChannelSMS   = Channel{v: "sms"}
	ChannelEmail = Channel{v: "email"}
)

type Input struct {
	Digest reminder.Digest
}

type Result struct {
	Channel Channel
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	smsSender      reminder.SMSSender
	emailSender    reminder.EmailSender
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	smsSender reminder.SMSSender,
	emailSender reminder.EmailSender,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if smsSender == nil {
		panic(e.NewNilArgumentError("smsSender"))
	}
	if emailSender == nil {
		panic(e.NewNilArgumentError("emailSender"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
		smsSender:      smsSender,
		emailSender:    emailSender,
	}
}

// Run delivers the digest by SMS when the user has a phone number, by email otherwise.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	digest := input.Digest
	u, err := s.userRepository.GetByID(ctx, digest.UserID)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Warning(ctx, "Digest recipient does not exist, skipping.", logging.Entry("userID", digest.UserID))
		return Result{Channel: ChannelNone}, nil
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", digest.UserID))
		return result, err
	}
	if !u.NotificationsEnabled || len(digest.Items) == 0 {
		s.log.Info(ctx, "Digest skipped.", logging.Entry("userID", u.ID), logging.Entry("items", len(digest.Items)))
		return Result{Channel: ChannelNone}, nil
	}

	channel := ChannelEmail
	if u.CanReceiveSMS() {
		channel = ChannelSMS
		err = s.smsSender.SendSMS(ctx, u.PhoneNumber.Value, digest.Text())
	} else {
		err = s.emailSender.SendEmail(ctx, u.Email, digest.Subject(), digest.Text())
	}
	if err != nil {
		logging.Error(
			ctx,
			s.log,
			err,
			logging.Entry("userID", u.ID),
			logging.Entry("channel", channel.String()),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Digest sent.",
		logging.Entry("userID", u.ID),
		logging.Entry("date", digest.Date),
		logging.Entry("channel", channel.String()),
	)
	return Result{Channel: channel}, nil
}
