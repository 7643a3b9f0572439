package generatereminders

import (
	c "collegereminders/internal/core/domain/common"
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/logging"
	"collegereminders/internal/core/domain/reminder"
	"collegereminders/internal/core/domain/school"
	"collegereminders/internal/core/domain/testdate"
	"collegereminders/internal/core/domain/user"
	"collegereminders/internal/core/services"
	"collegereminders/internal/core/services/auth"
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"
)

type Input struct {
	UserID   user.ID
	SchoolID c.Optional[school.ID]
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.UserID = u.ID
	return i
}

type Result struct {
	Groups []reminder.Group
}

type service struct {
	log                    logging.Logger
	schoolRepository       school.Repository
	baseReminderRepository reminder.Repository
	testDateRepository     testdate.Repository
	now                    func() time.Time
}

func New(
	log logging.Logger,
	schoolRepository school.Repository,
	baseReminderRepository reminder.Repository,
	testDateRepository testdate.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if schoolRepository == nil {
		panic(e.NewNilArgumentError("schoolRepository"))
	}
	if baseReminderRepository == nil {
		panic(e.NewNilArgumentError("baseReminderRepository"))
	}
	if testDateRepository == nil {
		panic(e.NewNilArgumentError("testDateRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                    log,
		schoolRepository:       schoolRepository,
		baseReminderRepository: baseReminderRepository,
		testDateRepository:     testDateRepository,
		now:                    now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	schools, err := s.readSchools(ctx, input)
	if err != nil {
		return result, err
	}

	var (
		baseReminders []reminder.BaseReminder
		testDates     []testdate.TestDate
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		baseReminders, err = s.baseReminderRepository.ReadWithTimeframes(groupCtx)
		return err
	})
	group.Go(func() (err error) {
		testDates, err = s.testDateRepository.ReadWithTests(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		if !errors.Is(err, context.Canceled) {
			logging.Error(ctx, s.log, err, logging.Entry("input", input))
		}
		return result, err
	}

	groups, err := reminder.Generate(reminder.GenerateInput{
		UserID:        input.UserID,
		Schools:       schools,
		BaseReminders: baseReminders,
		TestDates:     testDates,
		Now:           s.now(),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Debug(
		ctx,
		"Reminders generated.",
		logging.Entry("userID", input.UserID),
		logging.Entry("schools", len(schools)),
		logging.Entry("groups", len(groups)),
	)
	return Result{Groups: groups}, nil
}

// readSchools returns the requested school when it belongs to the user,
// or every active school of the user.
func (s *service) readSchools(ctx context.Context, input Input) ([]school.School, error) {
	options := school.ReadOptions{UserIDEquals: c.NewOptional(input.UserID, true)}
	if input.SchoolID.IsPresent {
		options.IDEquals = input.SchoolID
	} else {
		options.IsActiveEquals = c.NewOptional(true, true)
	}

	schools, err := s.schoolRepository.Read(ctx, options)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logging.Error(ctx, s.log, err, logging.Entry("input", input))
		}
		return nil, err
	}
	if input.SchoolID.IsPresent && len(schools) == 0 {
		return nil, school.ErrSchoolDoesNotExist
	}
	return schools, nil
}
