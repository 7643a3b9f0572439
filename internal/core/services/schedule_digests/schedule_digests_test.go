package scheduledigests

import (
	c "collegereminders/internal/core/domain/common"
	"collegereminders/internal/core/domain/logging"
	"collegereminders/internal/core/domain/reminder"
	"collegereminders/internal/core/domain/school"
	"collegereminders/internal/core/domain/testdate"
	"collegereminders/internal/core/domain/timeframe"
	"collegereminders/internal/core/domain/user"
	"collegereminders/internal/core/services"
	generatereminders "collegereminders/internal/core/services/generate_reminders"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var NOW = time.Date(2017, 1, 2, 7, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	Logger                 *logging.FakeLogger
	UserRepository         *user.FakeUserRepository
	SchoolRepository       *school.FakeRepository
	BaseReminderRepository *reminder.FakeRepository
	Publisher              *reminder.FakeDigestPublisher
	Service                services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	ctx := context.Background()
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.SchoolRepository = school.NewFakeRepository()
	suite.BaseReminderRepository = reminder.NewFakeRepository(timeframe.NewFakeRepository())
	suite.BaseReminderRepository.BaseReminders = []reminder.BaseReminder{{
		ID:      1,
		Name:    "Write Essay",
		Message: "Write the essay for %SCHOOL%",
		Timeframes: []timeframe.Timeframe{{
			ID:      1,
			Name:    "30 Days Before",
			Kind:    timeframe.KindRelative,
			Formula: c.NewOptional("30", true),
		}},
	}}
	suite.Publisher = reminder.NewFakeDigestPublisher()

	for ix, enabled := range []bool{true, true, false} {
		_, err := suite.UserRepository.Create(ctx, user.CreateUserInput{
			Email:                c.Email([]string{"a@test.test", "b@test.test", "c@test.test"}[ix]),
			PasswordHash:         "hash",
			NotificationsEnabled: enabled,
		})
		suite.Require().Nil(err)
	}
	suite.SchoolRepository.Schools = []school.School{
		{ID: 1, UserID: 1, Name: "Temple", DueDate: time.Date(2017, 2, 1, 0, 0, 0, 0, time.UTC), IsActive: true},
		{ID: 2, UserID: 2, Name: "Drexel", DueDate: time.Date(2017, 3, 1, 0, 0, 0, 0, time.UTC), IsActive: true},
		{ID: 3, UserID: 3, Name: "Penn", DueDate: time.Date(2017, 2, 1, 0, 0, 0, 0, time.UTC), IsActive: true},
	}

	now := func() time.Time { return NOW }
	generate := generatereminders.New(
		suite.Logger,
		suite.SchoolRepository,
		suite.BaseReminderRepository,
		testdate.NewFakeRepository(),
		now,
	)
	suite.Service = New(suite.Logger, suite.UserRepository, generate, suite.Publisher, now)
}

func TestScheduleDigestsService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestOnlyUsersWithRemindersToday() {
	result, err := suite.Service.Run(context.Background(), Input{})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(1, result.PublishedCount)
	assert.Equal(0, result.FailedCount)
	assert.Len(suite.Publisher.Published, 1)
	digest := suite.Publisher.Published[0]
	assert.Equal(user.ID(1), digest.UserID)
	assert.Equal("2017-01-02", digest.Date)
	assert.Equal([]reminder.DigestItem{{Name: "Write Essay", Message: "Write the essay for Temple"}}, digest.Items)
}

func (suite *testSuite) TestGenerationFailureSkipsUser() {
	suite.SchoolRepository.ReadError = errors.New("timeout")

	result, err := suite.Service.Run(context.Background(), Input{})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(0, result.PublishedCount)
	assert.Equal(2, result.FailedCount)
	assert.Empty(suite.Publisher.Published)
}

func (suite *testSuite) TestPublishFailureSkipsUser() {
	suite.Publisher.Error = errors.New("channel closed")

	result, err := suite.Service.Run(context.Background(), Input{})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(0, result.PublishedCount)
	assert.Equal(1, result.FailedCount)
	assert.Empty(suite.Publisher.Published)
	assert.Equal(1, suite.Logger.Count(logging.ERROR))
}
