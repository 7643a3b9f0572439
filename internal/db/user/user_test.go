package user

import (
	c "collegereminders/internal/core/domain/common"
	"collegereminders/internal/core/domain/user"
	"collegereminders/internal/db"
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const EMAIL = c.Email("test@test.test")

var NOW = time.Date(2016, 11, 15, 9, 0, 0, 0, time.UTC)

type testUserSuite struct {
	suite.Suite
	pool           *pgxpool.Pool
	userRepository *PgxUserRepository
}

func (suite *testUserSuite) SetupSuite() {
	suite.pool = db.CreateTestPool(suite.T())
	suite.userRepository = NewPgxRepository(suite.pool)
}

func (suite *testUserSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testUserSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUserRepository(t *testing.T) {
	suite.Run(t, new(testUserSuite))
}

func (s *testUserSuite) TestCreateAndGet() {
	ctx := context.Background()
	created, err := s.userRepository.Create(ctx, user.CreateUserInput{
		Email:                EMAIL,
		PasswordHash:         "hash",
		Name:                 "Jo",
		PhoneNumber:          c.NewOptional(c.PhoneNumber("+12155550100"), true),
		NotificationsEnabled: true,
		CreatedAt:            NOW,
	})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(EMAIL, created.Email)
	assert.Equal(NOW, created.CreatedAt)
	assert.True(created.CanReceiveSMS())

	byEmail, err := s.userRepository.GetByEmail(ctx, EMAIL)
	assert.Nil(err)
	assert.Equal(created, byEmail)

	byID, err := s.userRepository.GetByID(ctx, created.ID)
	assert.Nil(err)
	assert.Equal(created, byID)
}

func (s *testUserSuite) TestEmailAlreadyExists() {
	ctx := context.Background()
	input := user.CreateUserInput{Email: EMAIL, PasswordHash: "hash", CreatedAt: NOW}
	_, err := s.userRepository.Create(ctx, input)
	s.Require().Nil(err)

	_, err = s.userRepository.Create(ctx, input)

	s.ErrorIs(err, user.ErrEmailAlreadyExists)
}

func (s *testUserSuite) TestGetMissing() {
	_, err := s.userRepository.GetByID(context.Background(), 404)
	s.ErrorIs(err, user.ErrUserDoesNotExist)
}

func (s *testUserSuite) TestUpdate() {
	ctx := context.Background()
	created, err := s.userRepository.Create(ctx, user.CreateUserInput{
		Email:                EMAIL,
		PasswordHash:         "hash",
		Name:                 "Jo",
		NotificationsEnabled: true,
		CreatedAt:            NOW,
	})
	s.Require().Nil(err)

	updated, err := s.userRepository.Update(ctx, user.UpdateUserInput{
		ID:                  created.ID,
		DoPhoneNumberUpdate: true,
		PhoneNumber:         c.NewOptional(c.PhoneNumber("+12155550100"), true),
	})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal("Jo", updated.Name)
	assert.Equal(c.PhoneNumber("+12155550100"), updated.PhoneNumber.Value)
	assert.True(updated.NotificationsEnabled)
}

func (s *testUserSuite) TestRead() {
	ctx := context.Background()
	for ix, email := range []c.Email{"a@test.test", "b@test.test", "c@test.test"} {
		_, err := s.userRepository.Create(ctx, user.CreateUserInput{
			Email:                email,
			PasswordHash:         "hash",
			NotificationsEnabled: ix != 1,
			CreatedAt:            NOW,
		})
		s.Require().Nil(err)
	}

	users, err := s.userRepository.Read(ctx, user.ReadOptions{
		NotificationsEnabled: c.NewOptional(true, true),
		Limit:                c.NewOptional[uint](1, true),
	})
	assert := s.Require()
	assert.Nil(err)
	assert.Len(users, 1)
	assert.Equal(c.Email("a@test.test"), users[0].Email)

	users, err = s.userRepository.Read(ctx, user.ReadOptions{
		NotificationsEnabled: c.NewOptional(true, true),
		AfterID:              users[0].ID,
	})
	assert.Nil(err)
	assert.Len(users, 1)
	assert.Equal(c.Email("c@test.test"), users[0].Email)

	all, err := s.userRepository.Read(ctx, user.ReadOptions{})
	assert.Nil(err)
	assert.Len(all, 3)
}

func (s *testUserSuite) TestSetPassword() {
	ctx := context.Background()
	created, err := s.userRepository.Create(ctx, user.CreateUserInput{Email: EMAIL, PasswordHash: "old", CreatedAt: NOW})
	s.Require().Nil(err)

	s.Require().Nil(s.userRepository.SetPassword(ctx, created.ID, "new"))

	reloaded, err := s.userRepository.GetByID(ctx, created.ID)
	s.Require().Nil(err)
	s.Equal(user.PasswordHash("new"), reloaded.PasswordHash)

	s.ErrorIs(s.userRepository.SetPassword(ctx, created.ID+1, "new"), user.ErrUserDoesNotExist)
}
