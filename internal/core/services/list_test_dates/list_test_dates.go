package listtestdates

import (
	c "collegereminders/internal/core/domain/common"
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/logging"
	"collegereminders/internal/core/domain/testdate"
	"collegereminders/internal/core/services"
	"context"
	"time"
)

type Input struct {
	// UpcomingOnly drops test dates whose test day has passed.
	UpcomingOnly bool
}

type Result struct {
	TestDates []testdate.TestDate
}

type service struct {
	log                logging.Logger
	testDateRepository testdate.Repository
	now                func() time.Time
}

func New(
	log logging.Logger,
	testDateRepository testdate.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if testDateRepository == nil {
		panic(e.NewNilArgumentError("testDateRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                log,
		testDateRepository: testDateRepository,
		now:                now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	testDates, err := s.testDateRepository.ReadWithTests(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	if !input.UpcomingOnly {
		return Result{TestDates: testDates}, nil
	}

	today := c.FormatDate(s.now())
	upcoming := make([]testdate.TestDate, 0, len(testDates))
	for _, td := range testDates {
		if c.FormatDate(td.AdminDate) >= today {
			upcoming = append(upcoming, td)
		}
	}
	return Result{TestDates: upcoming}, nil
}
