package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots()

	require.Len(t, slots, GridSize)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("09:30"), slots[1])
	assert.Equal(t, types.TimeString("12:00"), slots[6])
	assert.Equal(t, types.TimeString("12:30"), slots[7])
	assert.Equal(t, types.TimeString("17:30"), slots[GridSize-2])
	assert.Equal(t, types.TimeString("18:00"), slots[GridSize-1])

	// Последнего получаса нет: день закрывается в 19:00
	assert.NotContains(t, slots, types.TimeString("18:30"))

	// Слоты строго возрастают с шагом 30 минут
	for i := 1; i < len(slots); i++ {
		prev, err := slots[i-1].Minutes()
		require.NoError(t, err)
		cur, err := slots[i].Minutes()
		require.NoError(t, err)
		assert.Equal(t, prev+SlotGranularityMinutes, cur)
	}
}

func TestTimeSlots_ReturnsCopy(t *testing.T) {
	slots := TimeSlots()
	slots[0] = "00:00"
	assert.Equal(t, types.TimeString("09:00"), TimeSlots()[0])
}

func TestGridContains(t *testing.T) {
	tests := []struct {
		token types.TimeString
		want  bool
	}{
		{token: "09:00", want: true},
		{token: "12:00", want: true},
		{token: "18:00", want: true},
		{token: "18:30", want: false},
		{token: "08:30", want: false},
		{token: "19:00", want: false},
		{token: "09:15", want: false},
		{token: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.token.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, GridContains(tt.token))
		})
	}
}

func TestNextSlot(t *testing.T) {
	t.Run("middle of the grid", func(t *testing.T) {
		next, ok := NextSlot("09:00")
		require.True(t, ok)
		assert.Equal(t, types.TimeString("09:30"), next)

		next, ok = NextSlot("17:30")
		require.True(t, ok)
		assert.Equal(t, types.TimeString("18:00"), next)
	})

	t.Run("last slot has no successor", func(t *testing.T) {
		_, ok := NextSlot("18:00")
		assert.False(t, ok)
	})

	t.Run("token outside the grid", func(t *testing.T) {
		_, ok := NextSlot("08:00")
		assert.False(t, ok)
	})
}

func TestSlotRun(t *testing.T) {
	tests := []struct {
		name     string
		start    types.TimeString
		duration int
		want     []types.TimeString
		wantOK   bool
	}{
		{
			name:     "single slot",
			start:    "09:00",
			duration: 30,
			want:     []types.TimeString{"09:00"},
			wantOK:   true,
		},
		{
			name:     "hour long service",
			start:    "10:00",
			duration: 60,
			want:     []types.TimeString{"10:00", "10:30"},
			wantOK:   true,
		},
		{
			name:     "ninety minutes ending at close",
			start:    "17:00",
			duration: 90,
			want:     []types.TimeString{"17:00", "17:30", "18:00"},
			wantOK:   true,
		},
		{
			name:     "runs off the end of the day",
			start:    "17:30",
			duration: 90,
			want:     []types.TimeString{"17:30", "18:00"},
			wantOK:   false,
		},
		{
			name:     "last slot fits exactly",
			start:    "18:00",
			duration: 30,
			want:     []types.TimeString{"18:00"},
			wantOK:   true,
		},
		{
			name:     "start outside the grid",
			start:    "08:30",
			duration: 30,
			want:     []types.TimeString{},
			wantOK:   false,
		},
		{
			name:     "duration not a multiple of the step",
			start:    "09:00",
			duration: 45,
			want:     nil,
			wantOK:   false,
		},
		{
			name:     "zero duration",
			start:    "09:00",
			duration: 0,
			want:     nil,
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run, ok := SlotRun(tt.start, tt.duration)
			assert.Equal(t, tt.wantOK, ok)
			if tt.want == nil {
				assert.Nil(t, run)
			} else {
				assert.Equal(t, tt.want, run)
			}
		})
	}
}
