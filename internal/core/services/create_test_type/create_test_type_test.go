package createtesttype

import (
	"collegereminders/internal/core/domain/logging"
	"collegereminders/internal/core/domain/testdate"
	"collegereminders/internal/core/domain/user"
	"collegereminders/internal/core/services"
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	TestDateRepository *testdate.FakeRepository
	Service            services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.TestDateRepository = testdate.NewFakeRepository()
	suite.Service = New(logging.NewFakeLogger(), suite.TestDateRepository)
}

func TestCreateTestTypeService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	result, err := suite.Service.Run(context.Background(), Input{
		User:                user.User{ID: 1, IsAdmin: true},
		Type:                "SAT",
		RegistrationMessage: "Register for the SAT by %REGISTRATION_DATE%",
		AdminMessage:        "The SAT is today",
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal("SAT", result.Test.Type)
	assert.Equal("The SAT is today", result.Test.AdminMessage)
	assert.Len(suite.TestDateRepository.Tests, 1)
}

func (suite *testSuite) TestNotAdmin() {
	_, err := suite.Service.Run(context.Background(), Input{User: user.User{ID: 2}, Type: "SAT"})

	suite.ErrorIs(err, user.ErrPermissionDenied)
	suite.Empty(suite.TestDateRepository.Tests)
}

func (suite *testSuite) TestTypeNotSet() {
	_, err := suite.Service.Run(context.Background(), Input{User: user.User{ID: 1, IsAdmin: true}})

	suite.ErrorIs(err, ErrTestTypeNotSet)
}
