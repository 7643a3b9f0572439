package createcategory

import (
	"collegereminders/internal/core/domain/category"
	"collegereminders/internal/core/domain/logging"
	"collegereminders/internal/core/domain/user"
	"collegereminders/internal/core/services"
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

var ADMIN = user.User{ID: 1, IsAdmin: true}

type testSuite struct {
	suite.Suite
	CategoryRepository *category.FakeRepository
	Service            services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.CategoryRepository = category.NewFakeRepository()
	suite.Service = New(logging.NewFakeLogger(), suite.CategoryRepository)
}

func TestCreateCategoryService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	result, err := suite.Service.Run(context.Background(), Input{User: ADMIN, Name: " Essays "})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal("Essays", result.Category.Name)
	assert.Len(suite.CategoryRepository.Categories, 1)
}

func (suite *testSuite) TestNotAdmin() {
	_, err := suite.Service.Run(context.Background(), Input{User: user.User{ID: 2}, Name: "Essays"})

	suite.ErrorIs(err, user.ErrPermissionDenied)
	suite.Empty(suite.CategoryRepository.Categories)
}

func (suite *testSuite) TestDuplicate() {
	_, err := suite.Service.Run(context.Background(), Input{User: ADMIN, Name: "Essays"})
	suite.Require().Nil(err)

	_, err = suite.Service.Run(context.Background(), Input{User: ADMIN, Name: "Essays"})

	suite.ErrorIs(err, category.ErrCategoryAlreadyExists)
}

func (suite *testSuite) TestEmptyName() {
	_, err := suite.Service.Run(context.Background(), Input{User: ADMIN})

	suite.ErrorIs(err, ErrCategoryNameNotSet)
}
