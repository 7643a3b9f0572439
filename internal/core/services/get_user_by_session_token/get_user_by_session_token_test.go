package getuserbysessiontoken

import (
	c "collegereminders/internal/core/domain/common"
	"collegereminders/internal/core/domain/logging"
	"collegereminders/internal/core/domain/user"
	"collegereminders/internal/core/services"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL         = "test@test.test"
	PASSWORD_HASH = "test-password-hash"
	SESSION_TOKEN = user.SessionToken("test-session-token")
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger            *logging.FakeLogger
	UserRepository    *user.FakeUserRepository
	SessionRepository *user.FakeSessionRepository
	Service           services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.SessionRepository = user.NewFakeSessionRepository(suite.UserRepository)
	suite.Service = New(suite.Logger, suite.SessionRepository)
}

func TestGetUserBySessionTokenService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	u, err := s.UserRepository.Create(
		context.Background(),
		user.CreateUserInput{
			Email:        c.NewEmail(EMAIL),
			PasswordHash: user.PasswordHash(PASSWORD_HASH),
			CreatedAt:    NOW,
		},
	)
	s.Require().Nil(err)
	err = s.SessionRepository.Create(
		context.Background(),
		user.CreateSessionInput{UserID: u.ID, Token: SESSION_TOKEN, CreatedAt: NOW},
	)
	s.Require().Nil(err)

	result, err := s.Service.Run(context.Background(), Input{Token: SESSION_TOKEN})

	s.Nil(err)
	s.Equal(u.ID, result.User.ID)
	s.Equal(c.NewEmail(EMAIL), result.User.Email)
	s.Empty(result.User.PasswordHash)
	s.Equal(0, s.Logger.Count(logging.ERROR))
}

func (s *testSuite) TestUnknownToken() {
	_, err := s.Service.Run(context.Background(), Input{Token: user.SessionToken("unknown")})

	s.ErrorIs(err, user.ErrUserDoesNotExist)
	s.Equal(0, s.Logger.Count(logging.ERROR))
}

func (s *testSuite) TestRepositoryError() {
	s.SessionRepository.ReturnError = true

	_, err := s.Service.Run(context.Background(), Input{Token: SESSION_TOKEN})

	s.NotNil(err)
	s.NotErrorIs(err, user.ErrUserDoesNotExist)
	s.Equal(1, s.Logger.Count(logging.ERROR))
}
