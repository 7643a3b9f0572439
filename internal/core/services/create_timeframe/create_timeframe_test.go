package createtimeframe

import (
	c "collegereminders/internal/core/domain/common"
	"collegereminders/internal/core/domain/logging"
	"collegereminders/internal/core/domain/timeframe"
	"collegereminders/internal/core/domain/user"
	"collegereminders/internal/core/services"
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

var ADMIN = user.User{ID: 1, IsAdmin: true}

type testSuite struct {
	suite.Suite
	TimeframeRepository *timeframe.FakeRepository
	Service             services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.TimeframeRepository = timeframe.NewFakeRepository()
	suite.Service = New(logging.NewFakeLogger(), suite.TimeframeRepository)
}

func TestCreateTimeframeService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	result, err := suite.Service.Run(context.Background(), Input{
		User:    ADMIN,
		Name:    "30 Days Before",
		Kind:    timeframe.KindRelative,
		Formula: c.NewOptional(" 30 ", true),
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal("30 Days Before", result.Timeframe.Name)
	assert.Equal("30", result.Timeframe.Formula.Value)
	assert.Len(suite.TimeframeRepository.Timeframes, 1)
}

func (suite *testSuite) TestInvalidFormula() {
	cases := []struct {
		id    string
		input Input
	}{
		{id: "relative not a number", input: Input{User: ADMIN, Kind: timeframe.KindRelative, Formula: c.NewOptional("soon", true)}},
		{id: "relative negative", input: Input{User: ADMIN, Kind: timeframe.KindRelative, Formula: c.NewOptional("-3", true)}},
		{id: "absolute not a date", input: Input{User: ADMIN, Kind: timeframe.KindAbsolute, Formula: c.NewOptional("never", true)}},
	}
	for _, testcase := range cases {
		suite.Run(testcase.id, func() {
			_, err := suite.Service.Run(context.Background(), testcase.input)
			suite.ErrorIs(err, timeframe.ErrInvalidTimeframeFormula)
		})
	}
	suite.Empty(suite.TimeframeRepository.Timeframes)
}

func (suite *testSuite) TestUnknownKind() {
	_, err := suite.Service.Run(context.Background(), Input{User: ADMIN, Kind: timeframe.KindUnknown})

	suite.ErrorIs(err, timeframe.ErrInvalidTimeframeKind)
}

func (suite *testSuite) TestNotAdmin() {
	_, err := suite.Service.Run(context.Background(), Input{User: user.User{ID: 2}, Kind: timeframe.KindNow})

	suite.ErrorIs(err, user.ErrPermissionDenied)
}
