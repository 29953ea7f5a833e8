package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-SchedulingService/pkg/types"
)

func booking(id, staffID int64, startAt types.LocalDateTime, duration int, status BookingStatus) *Booking {
	return &Booking{
		ID:              id,
		StaffID:         staffID,
		ClientID:        100,
		StartAt:         startAt,
		DurationMinutes: duration,
		Status:          status,
	}
}

func TestFindConflict_Overlap(t *testing.T) {
	monday10 := types.NewLocalDateTime(2026, 9, 7, 10, 0, 0)
	existing := []*Booking{
		booking(1, 5, monday10, 60, StatusConfirmed),
	}

	tests := []struct {
		name      string
		startAt   types.LocalDateTime
		duration  int
		wantMatch bool
	}{
		{"starts inside existing", types.NewLocalDateTime(2026, 9, 7, 10, 30, 0), 30, true},
		{"covers existing entirely", types.NewLocalDateTime(2026, 9, 7, 9, 30, 0), 120, true},
		{"ends inside existing", types.NewLocalDateTime(2026, 9, 7, 9, 30, 0), 60, true},
		{"same slot", monday10, 60, true},
		{"touches end boundary", types.NewLocalDateTime(2026, 9, 7, 11, 0, 0), 60, false},
		{"touches start boundary", types.NewLocalDateTime(2026, 9, 7, 9, 0, 0), 60, false},
		{"different day", types.NewLocalDateTime(2026, 9, 8, 10, 30, 0), 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindConflict(ConflictCandidate{
				StaffID:         5,
				StartAt:         tt.startAt,
				DurationMinutes: tt.duration,
			}, existing)
			if tt.wantMatch {
				require.NotNil(t, got)
				assert.Equal(t, int64(1), got.ID)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestFindConflict_IgnoresOtherStaff(t *testing.T) {
	start := types.NewLocalDateTime(2026, 9, 7, 10, 0, 0)
	existing := []*Booking{
		booking(1, 7, start, 60, StatusConfirmed),
	}

	got := FindConflict(ConflictCandidate{StaffID: 5, StartAt: start, DurationMinutes: 60}, existing)
	assert.Nil(t, got)
}

func TestFindConflict_IgnoresInactive(t *testing.T) {
	start := types.NewLocalDateTime(2026, 9, 7, 10, 0, 0)
	existing := []*Booking{
		booking(1, 5, start, 60, StatusCancelled),
		booking(2, 5, start, 60, StatusNoShow),
	}

	got := FindConflict(ConflictCandidate{StaffID: 5, StartAt: start, DurationMinutes: 60}, existing)
	assert.Nil(t, got)
}

func TestFindConflict_ExcludesSelf(t *testing.T) {
	start := types.NewLocalDateTime(2026, 9, 7, 10, 0, 0)
	self := int64(1)
	existing := []*Booking{
		booking(1, 5, start, 60, StatusConfirmed),
	}

	// перенос записи внутри собственного окна - не конфликт
	got := FindConflict(ConflictCandidate{
		StaffID:          5,
		StartAt:          types.NewLocalDateTime(2026, 9, 7, 10, 30, 0),
		DurationMinutes:  30,
		ExcludeBookingID: &self,
	}, existing)
	assert.Nil(t, got)
}

func TestFindConflict_FirstMatchWins(t *testing.T) {
	existing := []*Booking{
		booking(1, 5, types.NewLocalDateTime(2026, 9, 7, 10, 0, 0), 60, StatusConfirmed),
		booking(2, 5, types.NewLocalDateTime(2026, 9, 7, 11, 0, 0), 60, StatusConfirmed),
	}

	got := FindConflict(ConflictCandidate{
		StaffID:         5,
		StartAt:         types.NewLocalDateTime(2026, 9, 7, 10, 30, 0),
		DurationMinutes: 90,
	}, existing)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.ID)
}

func TestFindConflictInViews(t *testing.T) {
	view := &BookingView{
		Booking:    *booking(3, 5, types.NewLocalDateTime(2026, 9, 7, 14, 0, 0), 90, StatusPending),
		ClientName: "Carlos",
	}

	got := FindConflictInViews(ConflictCandidate{
		StaffID:         5,
		StartAt:         types.NewLocalDateTime(2026, 9, 7, 15, 0, 0),
		DurationMinutes: 60,
	}, []*BookingView{view})
	require.NotNil(t, got)
	assert.Equal(t, "Carlos", got.ClientName)
	assert.Equal(t, types.NewLocalDateTime(2026, 9, 7, 15, 30, 0), got.EndAt())
}
