package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	assert := require.New(t)

	optionalInt := NewOptional(42, true)
	assert.Equal(42, optionalInt.Value)
	assert.True(optionalInt.IsPresent)
	assert.Equal(42, optionalInt.ValueOr(1))

	optionalString := NewOptional("foo", false)
	assert.Equal("foo", optionalString.Value)
	assert.False(optionalString.IsPresent)
	assert.Equal("bar", optionalString.ValueOr("bar"))
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		raw      string
		expected time.Time
	}{
		{raw: "2017-02-01", expected: time.Date(2017, 2, 1, 0, 0, 0, 0, time.UTC)},
		{raw: " 2017-01-01 ", expected: time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC)},
		{raw: "2017-01-01T00:00:00Z", expected: time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC)},
		{raw: "2016-12-31 23:59:59", expected: time.Date(2016, 12, 31, 0, 0, 0, 0, time.UTC)},
	}
	for _, testcase := range cases {
		t.Run(testcase.raw, func(t *testing.T) {
			assert := require.New(t)
			parsed, err := ParseDate(testcase.raw)
			assert.Nil(err)
			assert.True(testcase.expected.Equal(parsed), "got %v", parsed)
		})
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, raw := range []string{
		"", "   ", "not a date", "2017-13-45",
		"now", "yesterday", "tomorrow", "today", "next monday", "1/2/2017",
	} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseDate(raw)
			require.ErrorIs(t, err, ErrInvalidDate)
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert := require.New(t)
	d := time.Date(2017, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal("2017-01-02", FormatDate(d))
	assert.Equal("1/2/2017", FormatShortDate(d))
	assert.Equal("12/25/2017", FormatShortDate(time.Date(2017, 12, 25, 0, 0, 0, 0, time.UTC)))
}

func TestSubDays(t *testing.T) {
	assert := require.New(t)
	anchor := time.Date(2017, 2, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal("2017-01-02", FormatDate(SubDays(anchor, 30)))
	assert.Equal("2017-02-01", FormatDate(SubDays(anchor, 0)))
	assert.Equal("2016-02-29", FormatDate(SubDays(time.Date(2016, 3, 1, 0, 0, 0, 0, time.UTC), 1)))
}

func TestNewPhoneNumber(t *testing.T) {
	require.Equal(t, PhoneNumber("+15551234567"), NewPhoneNumber(" +1 555 123 4567 "))
}
