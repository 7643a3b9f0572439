package listtimeframes

import (
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/logging"
	"collegereminders/internal/core/domain/timeframe"
	"collegereminders/internal/core/services"
	"context"
)

type Input struct{}

type Result struct {
	Timeframes []timeframe.Timeframe
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
	timeframes, err := s.timeframeRepository.Read(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	return Result{Timeframes: timeframes}, nil
}
