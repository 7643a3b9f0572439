package createtimeframe

import (
	c "collegereminders/internal/core/domain/common"
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/logging"
	"collegereminders/internal/core/domain/timeframe"
	"collegereminders/internal/core/domain/user"
	"collegereminders/internal/core/services"
	"collegereminders/internal/core/services/auth"
	"context"
	"strings"
)

type Input struct {
	User    user.User
	Name    string
	Kind    timeframe.Kind
	Formula c.Optional[string]
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	Timeframe timeframe.Timeframe
}

type service struct {
	log                 logging.Logger
	timeframeRepository timeframe.Repository
}

func New(
	log logging.Logger,
	timeframeRepository timeframe.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if timeframeRepository == nil {
		panic(e.NewNilArgumentError("timeframeRepository"))
	}
	return &service{
		log:                 log,
		timeframeRepository: timeframeRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := auth.RequireAdmin(input.User); err != nil {
		return result, err
	}
	formula := input.Formula
	if formula.IsPresent {
		formula.Value = strings.TrimSpace(formula.Value)
	}
	candidate := timeframe.Timeframe{Name: strings.TrimSpace(input.Name), Kind: input.Kind, Formula: formula}
	if err := candidate.Validate(); err != nil {
		return result, err
	}

	created, err := s.timeframeRepository.Create(ctx, timeframe.CreateInput{
		Name:    candidate.Name,
		Kind:    candidate.Kind,
		Formula: candidate.Formula,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("name", candidate.Name))
		return result, err
	}

	s.log.Info(
		ctx,
		"Timeframe created.",
		logging.Entry("timeframeID", created.ID),
		logging.Entry("kind", created.Kind.String()),
	)
	return Result{Timeframe: created}, nil
}
