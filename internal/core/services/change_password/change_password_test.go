package changepassword

import (
	"collegereminders/internal/core/domain/logging"
	"collegereminders/internal/core/domain/user"
	"collegereminders/internal/core/services"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

const USER_ID = 123

type suite struct {
	log      *logging.FakeLogger
	userRepo *user.FakeUserRepository
	hasher   *user.FakePasswordHasher
}

func setupSuite(currentPassword string) *suite {
	hasher := user.NewFakePasswordHasher()
	userRepo := user.NewFakeUserRepository()
	userRepo.Users = []user.User{{ID: USER_ID, PasswordHash: hashPassword(currentPassword, hasher)}}
	return &suite{
		log:      logging.NewFakeLogger(),
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func (s *suite) createService() services.Service[Input, Result] {
	return New(s.log, s.userRepo, s.hasher)
}

func (s *suite) currentUser() user.User {
	return s.userRepo.Users[0]
}

func TestPasswordSuccessfullyChanged(t *testing.T) {
	cases := []struct {
		id              string
		currentPassword string
		newPassword     string
	}{
		{id: "different", currentPassword: "password-1", newPassword: "password-2"},
		{id: "same", currentPassword: "password-1", newPassword: "password-1"},
		{id: "min length", currentPassword: "aaaaaaaa", newPassword: "bbbbbbbb"},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			suite := setupSuite(testcase.currentPassword)
			service := suite.createService()

			_, err := service.Run(context.Background(), Input{
				CurrentPassword: user.RawPassword(testcase.currentPassword),
				NewPassword:     user.RawPassword(testcase.newPassword),
				User:            suite.currentUser(),
			})

			require.NoError(t, err)
			assertPasswordValid(t, suite, testcase.newPassword)
		})
	}
}

func TestCurrentPasswordInvalid(t *testing.T) {
	suite := setupSuite("valid-password")
	service := suite.createService()

	_, err := service.Run(context.Background(), Input{
		CurrentPassword: user.RawPassword("invalid-password"),
		NewPassword:     user.RawPassword("new-password"),
		User:            suite.currentUser(),
	})

	require.ErrorIs(t, err, user.ErrInvalidCredentials)
	assertPasswordValid(t, suite, "valid-password")
}

func TestNewPasswordTooShort(t *testing.T) {
	suite := setupSuite("valid-password")
	service := suite.createService()

	_, err := service.Run(context.Background(), Input{
		CurrentPassword: user.RawPassword("valid-password"),
		NewPassword:     user.RawPassword("short"),
		User:            suite.currentUser(),
	})

	require.ErrorIs(t, err, user.ErrPasswordTooShort)
	assertPasswordValid(t, suite, "valid-password")
}

func TestRepositoryErrorIsReturned(t *testing.T) {
	suite := setupSuite("valid-password")
	suite.userRepo.ReturnError = true
	service := suite.createService()

	_, err := service.Run(context.Background(), Input{
		CurrentPassword: user.RawPassword("valid-password"),
		NewPassword:     user.RawPassword("new-password"),
		User:            suite.currentUser(),
	})

	require.Error(t, err)
	require.Equal(t, 1, suite.log.Count(logging.ERROR))
}

func hashPassword(raw string, hasher user.PasswordHasher) user.PasswordHash {
	hash, err := hasher.HashPassword(user.RawPassword(raw))
	if err != nil {
		panic(err)
	}
	return hash
}

func assertPasswordValid(t *testing.T, suite *suite, password string) {
	t.Helper()

	u := suite.currentUser()
	require.True(t, suite.hasher.ValidatePassword(user.RawPassword(password), u.PasswordHash))
}
