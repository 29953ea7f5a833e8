package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// понедельник
var testMonday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func TestAvailableHours_InclusiveClose(t *testing.T) {
	hours := []BusinessHours{
		{Weekday: Monday, OpensAt: "09:00", ClosesAt: "12:00", IsOpen: true},
	}

	// закрывающий час включается: слот на 12:00 доступен
	got := AvailableHours(testMonday, hours)
	assert.Equal(t, []int{9, 10, 11, 12}, got)
}

func TestAvailableHours_ClosedDay(t *testing.T) {
	hours := []BusinessHours{
		{Weekday: Monday, OpensAt: "09:00", ClosesAt: "20:00", IsOpen: false},
	}

	got := AvailableHours(testMonday, hours)
	assert.Empty(t, got)
}

func TestAvailableHours_UnconfiguredDay(t *testing.T) {
	hours := []BusinessHours{
		{Weekday: Tuesday, OpensAt: "09:00", ClosesAt: "20:00", IsOpen: true},
	}

	// понедельника в графике нет
	got := AvailableHours(testMonday, hours)
	assert.Empty(t, got)
}

func TestAvailableHours_DefaultWindow(t *testing.T) {
	got := AvailableHours(testMonday, nil)
	require.Len(t, got, 12)
	assert.Equal(t, 9, got[0])
	assert.Equal(t, 20, got[len(got)-1])
}

func TestIsDayClosed(t *testing.T) {
	hours := []BusinessHours{
		{Weekday: Monday, OpensAt: "09:00", ClosesAt: "20:00", IsOpen: false},
		{Weekday: Tuesday, OpensAt: "09:00", ClosesAt: "20:00", IsOpen: true},
	}

	assert.True(t, IsDayClosed(testMonday, hours))
	assert.False(t, IsDayClosed(testMonday.AddDate(0, 0, 1), hours))
	// ненастроенный день считается закрытым
	assert.True(t, IsDayClosed(testMonday.AddDate(0, 0, 2), hours))
}

func TestUnionOfHours(t *testing.T) {
	hours := []BusinessHours{
		{Weekday: Monday, OpensAt: "09:00", ClosesAt: "11:00", IsOpen: true},
		{Weekday: Tuesday, OpensAt: "10:00", ClosesAt: "13:00", IsOpen: true},
		{Weekday: Wednesday, OpensAt: "09:00", ClosesAt: "20:00", IsOpen: false},
	}

	days := []time.Time{
		testMonday,
		testMonday.AddDate(0, 0, 1),
		testMonday.AddDate(0, 0, 2),
	}

	got := UnionOfHours(days, hours)
	assert.Equal(t, []int{9, 10, 11, 12, 13}, got)
}

func TestBusinessHoursValidate(t *testing.T) {
	valid := BusinessHours{Weekday: Monday, OpensAt: "09:00", ClosesAt: "20:00", IsOpen: true}
	assert.NoError(t, valid.Validate())

	inverted := BusinessHours{Weekday: Monday, OpensAt: "20:00", ClosesAt: "09:00", IsOpen: true}
	assert.ErrorIs(t, inverted.Validate(), ErrInvalidBusinessHours)

	// для закрытого дня границы не проверяются
	closed := BusinessHours{Weekday: Monday, OpensAt: "20:00", ClosesAt: "09:00", IsOpen: false}
	assert.NoError(t, closed.Validate())
}
