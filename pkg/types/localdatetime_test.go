package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocalDateTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain literal", "2026-09-07T10:30:00", "2026-09-07T10:30:00"},
		{"space separator", "2026-09-07 10:30:00", "2026-09-07T10:30:00"},
		{"with millis", "2026-09-07T10:30:00.000", "2026-09-07T10:30:00"},
		{"with utc zone", "2026-09-07T10:30:00Z", "2026-09-07T10:30:00"},
		{"with offset", "2026-09-07T10:30:00+05:00", "2026-09-07T10:30:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLocalDateTime(tt.input)
			require.NoError(t, err)
			// зона и миллисекунды отбрасываются, литерал сохраняется как есть
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseLocalDateTime_Invalid(t *testing.T) {
	for _, input := range []string{"", "not-a-date", "2026-13-40T10:00:00", "10:30"} {
		_, err := ParseLocalDateTime(input)
		assert.Error(t, err, "input=%q", input)
	}
}

func TestLocalDateTime_FromWallClock(t *testing.T) {
	loc, err := time.LoadLocation("America/Mexico_City")
	require.NoError(t, err)

	// берется настенное время, зона не участвует в значении
	moment := time.Date(2026, 9, 7, 10, 30, 0, 0, loc)
	got := NewLocalDateTimeFromWallClock(moment)
	assert.Equal(t, "2026-09-07T10:30:00", got.String())
}

func TestLocalDateTime_Arithmetic(t *testing.T) {
	d := NewLocalDateTime(2026, time.September, 7, 10, 0, 0)

	assert.Equal(t, "2026-09-07T11:30:00", d.AddMinutes(90).String())
	assert.Equal(t, "2026-09-14T10:00:00", d.AddDays(7).String())
	assert.True(t, d.Before(d.AddMinutes(1)))
	assert.True(t, d.AddMinutes(1).After(d))
	assert.True(t, d.Equal(NewLocalDateTime(2026, time.September, 7, 10, 0, 0)))
}

func TestLocalDateTime_Scan(t *testing.T) {
	var d LocalDateTime

	// драйвер возвращает time.Time: берутся компоненты настенного времени
	require.NoError(t, d.Scan(time.Date(2026, 9, 7, 10, 30, 0, 0, time.FixedZone("X", 5*3600))))
	assert.Equal(t, "2026-09-07T10:30:00", d.String())

	require.NoError(t, d.Scan([]byte("2026-09-07T12:00:00")))
	assert.Equal(t, "2026-09-07T12:00:00", d.String())
}

func TestTimeString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9, ts.Hour())
	assert.Equal(t, 30, ts.Minute())

	// секундная часть от драйвера обрезается
	full, err := NewTimeStringFromString("09:30:00")
	require.NoError(t, err)
	assert.Equal(t, "09:30", full.String())

	assert.True(t, ts.IsBefore("10:00"))
	assert.True(t, TimeString("10:00").IsAfter(ts))

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)
}
