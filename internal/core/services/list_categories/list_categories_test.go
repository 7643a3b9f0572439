package listcategories

import (
	"collegereminders/internal/core/domain/category"
	"collegereminders/internal/core/domain/logging"
	"collegereminders/internal/core/services"
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	Logger             *logging.FakeLogger
	CategoryRepository *category.FakeRepository
	Service            services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.CategoryRepository = category.NewFakeRepository()
	suite.Service = New(suite.Logger, suite.CategoryRepository)
}

func TestListCategoriesService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestEmpty() {
	result, err := s.Service.Run(context.Background(), Input{})

	s.Nil(err)
	s.Empty(result.Categories)
}

func (s *testSuite) TestSuccess() {
	for _, name := range []string{"Essays", "Testing"} {
		_, err := s.CategoryRepository.Create(context.Background(), category.CreateInput{Name: name})
		s.Require().Nil(err)
	}

	result, err := s.Service.Run(context.Background(), Input{})

	s.Nil(err)
	s.Equal(
		[]category.Category{{ID: 1, Name: "Essays"}, {ID: 2, Name: "Testing"}},
		result.Categories,
	)
}

func (s *testSuite) TestRepositoryError() {
	s.CategoryRepository.ReturnError = true

	_, err := s.Service.Run(context.Background(), Input{})

	s.NotNil(err)
	s.Equal(1, s.Logger.Count(logging.ERROR))
}
