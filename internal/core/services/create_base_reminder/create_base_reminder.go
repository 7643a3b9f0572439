package createbasereminder

import (
	"collegereminders/internal/core/domain/category"
	c "collegereminders/internal/core/domain/common"
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/logging"
	"collegereminders/internal/core/domain/reminder"
	"collegereminders/internal/core/domain/timeframe"
	uow "collegereminders/internal/core/domain/unit_of_work"
	"collegereminders/internal/core/domain/user"
	"collegereminders/internal/core/services"
	"collegereminders/internal/core/services/auth"
	"context"
	"errors"
	"strings"
)

var ErrBaseReminderNameNotSet = errors.New("base reminder name is not set")

type Input struct {
	User         user.User
	Name         string
	Message      string
	Detail       string
	LateMessage  string
	LateDetail   c.Optional[string]
	CategoryID   category.ID
	TimeframeIDs []timeframe.ID
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	BaseReminder reminder.BaseReminder
}

type service struct {
	log                logging.Logger
	unitOfWork         uow.UnitOfWork
	categoryRepository category.Repository
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	categoryRepository category.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if categoryRepository == nil {
		panic(e.NewNilArgumentError("categoryRepository"))
	}
	return &service{
		log:                log,
		unitOfWork:         unitOfWork,
		categoryRepository: categoryRepository,
	}
}

// Run stores the base reminder and links its timeframes in one transaction.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := auth.RequireAdmin(input.User); err != nil {
		return result, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return result, ErrBaseReminderNameNotSet
	}
	timeframeIDs := uniqueTimeframeIDs(input.TimeframeIDs)
	if len(timeframeIDs) == 0 {
		return result, reminder.ErrTimeframesNotSet
	}
	if _, err := s.categoryRepository.GetByID(ctx, input.CategoryID); err != nil {
		if !errors.Is(err, category.ErrCategoryDoesNotExist) {
			logging.Error(ctx, s.log, err, logging.Entry("categoryID", input.CategoryID))
		}
		return result, err
	}

	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	defer uow.Rollback(ctx)

	timeframes, err := uow.Timeframes().GetByIDs(ctx, timeframeIDs)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("timeframeIDs", timeframeIDs))
		return result, err
	}
	if len(timeframes) != len(timeframeIDs) {
		return result, reminder.ErrTimeframesNotValid
	}

	created, err := uow.BaseReminders().Create(ctx, reminder.CreateInput{
		Name:        name,
		Message:     input.Message,
		Detail:      input.Detail,
		LateMessage: input.LateMessage,
		LateDetail:  input.LateDetail,
		CategoryID:  input.CategoryID,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("name", name))
		return result, err
	}
	if err := uow.BaseReminders().LinkTimeframes(ctx, created.ID, timeframeIDs); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("baseReminderID", created.ID))
		return result, err
	}
	if err := uow.Commit(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("baseReminderID", created.ID))
		return result, err
	}

	created.Timeframes = timeframes
	s.log.Info(
		ctx,
		"Base reminder created.",
		logging.Entry("baseReminderID", created.ID),
		logging.Entry("timeframeIDs", timeframeIDs),
	)
	return Result{BaseReminder: created}, nil
}

func uniqueTimeframeIDs(ids []timeframe.ID) []timeframe.ID {
	seen := make(map[timeframe.ID]struct{}, len(ids))
	unique := make([]timeframe.ID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
