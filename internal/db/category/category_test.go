package category

import (
	"collegereminders/internal/core/domain/category"
	"collegereminders/internal/db"
	"context"
	"testing"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	pool               *pgxpool.Pool
	categoryRepository *PgxCategoryRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool(suite.T())
	suite.categoryRepository = NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxCategoryRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestCreateReadGet() {
	ctx := context.Background()
	essays, err := s.categoryRepository.Create(ctx, category.CreateInput{Name: "Essays"})
	assert := s.Require()
	assert.Nil(err)
	_, err = s.categoryRepository.Create(ctx, category.CreateInput{Name: "Applications"})
	assert.Nil(err)

	_, err = s.categoryRepository.Create(ctx, category.CreateInput{Name: "Essays"})
	assert.ErrorIs(err, category.ErrCategoryAlreadyExists)

	categories, err := s.categoryRepository.Read(ctx)
	assert.Nil(err)
	assert.Len(categories, 2)
	assert.Equal("Applications", categories[0].Name)

	found, err := s.categoryRepository.GetByID(ctx, essays.ID)
	assert.Nil(err)
	assert.Equal(essays, found)

	_, err = s.categoryRepository.GetByID(ctx, 404)
	assert.ErrorIs(err, category.ErrCategoryDoesNotExist)
}
