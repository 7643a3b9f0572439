package timeframe

import (
	c "collegereminders/internal/core/domain/common"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	Anchor = time.Date(2017, 2, 1, 0, 0, 0, 0, time.UTC)
	Now    = time.Date(2016, 11, 15, 18, 30, 0, 0, time.UTC)
)

func TestParseKind(t *testing.T) {
	cases := []struct {
		raw      string
		expected Kind
		err      error
	}{
		{raw: "now", expected: KindNow},
		{raw: "relative", expected: KindRelative},
		{raw: "absolute", expected: KindAbsolute},
		{raw: "Relative", expected: KindUnknown, err: ErrInvalidTimeframeKind},
		{raw: "", expected: KindUnknown, err: ErrInvalidTimeframeKind},
	}
	for _, testcase := range cases {
		t.Run(testcase.raw, func(t *testing.T) {
			kind, err := ParseKind(testcase.raw)
			assert.Equal(t, testcase.expected, kind)
			assert.ErrorIs(t, err, testcase.err)
		})
	}
}

func TestRelativeDueDate(t *testing.T) {
	for _, days := range []int{0, 1, 30, 31, 365, 1000} {
		t.Run(fmt.Sprint(days), func(t *testing.T) {
			tf := Timeframe{ID: 1, Kind: KindRelative, Formula: c.NewOptional(fmt.Sprint(days), true)}
			dueDate, err := tf.DueDate(Anchor, Now)
			require.Nil(t, err)
			assert.Equal(t, Anchor.AddDate(0, 0, -days).Format(c.DateLayout), dueDate)
		})
	}
}

func TestRelativeDueDateIsComputedInUTC(t *testing.T) {
	// 2017-02-01 00:30 in UTC+2 is still January 31 in UTC.
	anchor := time.Date(2017, 2, 1, 0, 30, 0, 0, time.FixedZone("EET", 2*60*60))
	tf := Timeframe{Kind: KindRelative, Formula: c.NewOptional("1", true)}

	dueDate, err := tf.DueDate(anchor, Now)

	require.Nil(t, err)
	assert.Equal(t, "2017-01-30", dueDate)
}

func TestAbsoluteDueDateIgnoresAnchor(t *testing.T) {
	cases := []struct {
		formula  string
		expected string
	}{
		{formula: "2017-01-01", expected: "2017-01-01"},
		{formula: "2017-01-01T00:00:00Z", expected: "2017-01-01"},
		{formula: "2016-12-31T23:00:00Z", expected: "2016-12-31"},
	}
	for _, testcase := range cases {
		t.Run(testcase.formula, func(t *testing.T) {
			tf := Timeframe{Kind: KindAbsolute, Formula: c.NewOptional(testcase.formula, true)}
			for _, anchor := range []time.Time{Anchor, Anchor.AddDate(3, 0, 0), {}} {
				dueDate, err := tf.DueDate(anchor, Now)
				require.Nil(t, err)
				assert.Equal(t, testcase.expected, dueDate)
			}
		})
	}
}

func TestNowDueDateIgnoresAnchor(t *testing.T) {
	tf := Timeframe{Kind: KindNow}
	for _, anchor := range []time.Time{Anchor, Anchor.AddDate(-10, 0, 0), {}} {
		dueDate, err := tf.DueDate(anchor, Now)
		require.Nil(t, err)
		assert.Equal(t, "2016-11-15", dueDate)
	}
}

func TestNowDueDateUsesUTC(t *testing.T) {
	now := time.Date(2016, 11, 15, 20, 0, 0, 0, time.FixedZone("EST", -5*60*60))
	dueDate, err := Timeframe{Kind: KindNow}.DueDate(Anchor, now)
	require.Nil(t, err)
	assert.Equal(t, "2016-11-16", dueDate)
}

func TestDueDateInvalidKind(t *testing.T) {
	_, err := Timeframe{ID: 7, Kind: KindUnknown}.DueDate(Anchor, Now)
	assert.ErrorIs(t, err, ErrInvalidTimeframeKind)
}

func TestDueDateInvalidFormula(t *testing.T) {
	cases := []Timeframe{
		{Kind: KindRelative},
		{Kind: KindRelative, Formula: c.NewOptional("-3", true)},
		{Kind: KindRelative, Formula: c.NewOptional("thirty", true)},
		{Kind: KindRelative, Formula: c.NewOptional("+30", true)},
		{Kind: KindRelative, Formula: c.NewOptional("030", true)},
		{Kind: KindRelative, Formula: c.NewOptional(" 30", true)},
		{Kind: KindAbsolute},
		{Kind: KindAbsolute, Formula: c.NewOptional("someday", true)},
		{Kind: KindAbsolute, Formula: c.NewOptional("now", true)},
		{Kind: KindAbsolute, Formula: c.NewOptional("yesterday", true)},
		{Kind: KindAbsolute, Formula: c.NewOptional("tomorrow", true)},
	}
	for ix, tf := range cases {
		t.Run(fmt.Sprint(ix), func(t *testing.T) {
			dueDate, err := tf.DueDate(Anchor, Now)
			assert.ErrorIs(t, err, ErrInvalidTimeframeFormula)
			assert.Empty(t, dueDate)
			assert.ErrorIs(t, tf.Validate(), ErrInvalidTimeframeFormula)
		})
	}
}

func TestValidate(t *testing.T) {
	assert := require.New(t)
	assert.Nil(Timeframe{Kind: KindNow}.Validate())
	assert.Nil(Timeframe{Kind: KindRelative, Formula: c.NewOptional("30", true)}.Validate())
	assert.Nil(Timeframe{Kind: KindAbsolute, Formula: c.NewOptional("2017-01-01", true)}.Validate())
	assert.ErrorIs(Timeframe{Kind: KindNow, Formula: c.NewOptional("3", true)}.Validate(), ErrInvalidTimeframeFormula)
	assert.ErrorIs(Timeframe{}.Validate(), ErrInvalidTimeframeKind)
}

func TestAbsoluteFormulaRejectsRelativeKeywords(t *testing.T) {
	for _, formula := range []string{"now", "today", "yesterday", "tomorrow"} {
		t.Run(formula, func(t *testing.T) {
			tf := Timeframe{Kind: KindAbsolute, Formula: c.NewOptional(formula, true)}
			assert.ErrorIs(t, tf.Validate(), ErrInvalidTimeframeFormula)
		})
	}
}
