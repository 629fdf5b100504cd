package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonthYear(t *testing.T) {
	cases := map[string]time.Time{
		"January 2020":  time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		"Sep 2018":      time.Date(2018, time.September, 1, 0, 0, 0, 0, time.UTC),
		"2021-07":       time.Date(2021, time.July, 1, 0, 0, 0, 0, time.UTC),
		"03/2019":       time.Date(2019, time.March, 1, 0, 0, 0, 0, time.UTC),
		"2015":          time.Date(2015, time.January, 1, 0, 0, 0, 0, time.UTC),
		"  March  2022": time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
	for in, want := range cases {
		got, err := ParseMonthYear(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "%s: got %s", in, got)
	}
}

func TestParseMonthYear_Rejects(t *testing.T) {
	for _, in := range []string{"", "Present", "Smarch 2020", "2020/13"} {
		_, err := ParseMonthYear(in)
		assert.Error(t, err, in)
	}
}

func TestMonthsBetween(t *testing.T) {
	start := time.Date(2020, time.November, 28, 0, 0, 0, 0, time.UTC)
	end := time.Date(2022, time.January, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 14, MonthsBetween(start, end))
	assert.Equal(t, 0, MonthsBetween(start, start))
	assert.Equal(t, -14, MonthsBetween(end, start))
}
