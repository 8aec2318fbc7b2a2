package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSameDay(t *testing.T) {
	base := time.Date(2020, time.March, 21, 9, 30, 0, 0, time.UTC)

	assert.True(t, SameDay(base, time.Date(2020, time.March, 21, 23, 59, 59, 0, time.UTC)))
	assert.False(t, SameDay(base, time.Date(2020, time.March, 22, 0, 0, 0, 0, time.UTC)))
	assert.False(t, SameDay(base, time.Date(2019, time.March, 21, 9, 30, 0, 0, time.UTC)))
}

func TestMidnight(t *testing.T) {
	stamp := time.Date(2020, time.March, 21, 15, 42, 7, 0, time.UTC)
	assert.Equal(t, time.Date(2020, time.March, 21, 0, 0, 0, 0, time.UTC), Midnight(stamp))

	assert.True(t, IsMidnight(Midnight(stamp)))
	assert.False(t, IsMidnight(stamp))
}

func TestReportDay(t *testing.T) {
	nextMidnight := time.Date(2020, time.March, 23, 0, 0, 0, 0, time.UTC)

	// a finished day already carries its window-ending midnight
	assert.Equal(t, nextMidnight, ReportDay(nextMidnight))

	// mid-day stamps from different crawls of the same day agree
	morning := time.Date(2020, time.March, 22, 10, 0, 0, 0, time.UTC)
	afternoon := time.Date(2020, time.March, 22, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, nextMidnight, ReportDay(morning))
	assert.Equal(t, ReportDay(morning), ReportDay(afternoon))
}
