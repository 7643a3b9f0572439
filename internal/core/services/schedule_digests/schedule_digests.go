package scheduledigests

import (
	c "collegereminders/internal/core/domain/common"
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/logging"
	"collegereminders/internal/core/domain/reminder"
	"collegereminders/internal/core/domain/user"
	"collegereminders/internal/core/services"
	generatereminders "collegereminders/internal/core/services/generate_reminders"
	"context"
	"errors"
	"time"
)

const USERS_PAGE_SIZE = 100

type Input struct{}

type Result struct {
	PublishedCount int
	FailedCount    int
}

type service struct {
	log               logging.Logger
	userRepository    user.UserRepository
	generateReminders services.Service[generatereminders.Input, generatereminders.Result]
	publisher         reminder.DigestPublisher
	now               func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	generateReminders services.Service[generatereminders.Input, generatereminders.Result],
	publisher reminder.DigestPublisher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if generateReminders == nil {
		panic(e.NewNilArgumentError("generateReminders"))
	}
	if publisher == nil {
		panic(e.NewNilArgumentError("publisher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:               log,
		userRepository:    userRepository,
		generateReminders: generateReminders,
		publisher:         publisher,
		now:               now,
	}
}

// Run publishes today's reminders of every user with notifications enabled.
// A user whose digest cannot be generated or published is counted as failed and skipped.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	today := c.FormatDate(s.now())
	afterID := user.ID(0)
	for {
		users, err := s.userRepository.Read(ctx, user.ReadOptions{
			NotificationsEnabled: c.NewOptional(true, true),
			Limit:                c.NewOptional[uint](USERS_PAGE_SIZE, true),
			AfterID:              afterID,
		})
		if err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("afterID", afterID))
			return result, err
		}
		if len(users) == 0 {
			break
		}

		for _, u := range users {
			published, err := s.scheduleForUser(ctx, u, today)
			if errors.Is(err, context.Canceled) {
				return result, err
			}
			if err != nil {
				result.FailedCount++
				continue
			}
			if published {
				result.PublishedCount++
			}
		}
		afterID = users[len(users)-1].ID
	}

	s.log.Info(
		ctx,
		"Digests scheduled.",
		logging.Entry("date", today),
		logging.Entry("publishedCount", result.PublishedCount),
		logging.Entry("failedCount", result.FailedCount),
	)
	return result, nil
}

func (s *service) scheduleForUser(ctx context.Context, u user.User, today string) (bool, error) {
	generated, err := s.generateReminders.Run(ctx, generatereminders.Input{UserID: u.ID})
	if err != nil {
		s.log.Warning(
			ctx,
			"Could not generate reminders for user, skipping.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return false, err
	}

	group, ok := reminder.GroupFor(generated.Groups, today)
	if !ok || len(group.Reminders) == 0 {
		return false, nil
	}

	if err := s.publisher.PublishDigest(ctx, reminder.NewDigest(u.ID, group)); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("userID", u.ID))
		return false, err
	}
	return true, nil
}
