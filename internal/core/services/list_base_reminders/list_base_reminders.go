package listbasereminders

import (
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/logging"
	"collegereminders/internal/core/domain/reminder"
	"collegereminders/internal/core/services"
	"context"
)

type Input struct{}

type Result struct {
	BaseReminders []reminder.BaseReminder
}

type service struct {
	log                    logging.Logger
	baseReminderRepository reminder.Repository
}

func New(
	log logging.Logger,
	baseReminderRepository reminder.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if baseReminderRepository == nil {
		panic(e.NewNilArgumentError("baseReminderRepository"))
	}
	return &service{
		log:                    log,
		baseReminderRepository: baseReminderRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	baseReminders, err := s.baseReminderRepository.ReadWithTimeframes(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	return Result{BaseReminders: baseReminders}, nil
}
