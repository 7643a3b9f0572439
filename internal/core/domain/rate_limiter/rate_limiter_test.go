package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIntervalWindow(t *testing.T) {
	moment := time.Date(2017, 1, 2, 13, 47, 12, 0, time.UTC)

	assert.Equal(t, time.Date(2017, 1, 2, 13, 47, 0, 0, time.UTC), Minute.Window(moment))
	assert.Equal(t, time.Date(2017, 1, 2, 13, 0, 0, 0, time.UTC), Hour.Window(moment))
	assert.Equal(t, time.Date(2017, 1, 2, 0, 0, 0, 0, time.UTC), Day.Window(moment))
	assert.Equal(t, time.Hour, Hour.Duration())
}
