package availability

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-IntakeService/internal/domain"
)

func available(day domain.DayName, hours ...int) []domain.AvailabilitySlot {
	slots := make([]domain.AvailabilitySlot, 0, len(hours))
	for _, h := range hours {
		slots = append(slots, domain.AvailabilitySlot{
			Day:    day,
			Hour:   FormatHour(h),
			Status: domain.StatusAvailable,
		})
	}
	return slots
}

func TestBlocks(t *testing.T) {
	tests := []struct {
		name  string
		hours []int
		want  []Block
	}{
		{name: "empty", hours: nil, want: nil},
		{name: "single", hours: []int{9}, want: []Block{{Start: 9, End: 10, Length: 1}}},
		{
			name:  "unsorted with gap",
			hours: []int{14, 9, 10, 15, 11},
			want: []Block{
				{Start: 9, End: 12, Length: 3},
				{Start: 14, End: 16, Length: 2},
			},
		},
		{name: "duplicates", hours: []int{8, 8, 9}, want: []Block{{Start: 8, End: 10, Length: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Blocks(tt.hours))
		})
	}
}

func TestMatch_EmptySlots(t *testing.T) {
	assert.Empty(t, Match(nil, 2))
	assert.Empty(t, Match([]domain.AvailabilitySlot{}, 0))
}

func TestMatch_BlockAcrossOchtendAndMiddag(t *testing.T) {
	got := Match(available(domain.Monday, 9, 10, 11, 12, 13), 3)

	want := map[string]bool{
		"ma-ochtend": true, // 9-12 внутри ochtend
		"ma-middag":  true, // правило B: блок длиной 5 касается middag
		"ma-avond":   false,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Match() mismatch (-want +got):\n%s", diff)
	}
}

func TestMatch_BlockTooShort(t *testing.T) {
	got := Match(available(domain.Monday, 11, 12, 13), 4)

	assert.Equal(t, map[string]bool{
		"ma-ochtend": false,
		"ma-middag":  false,
		"ma-avond":   false,
	}, got)
}

func TestMatch_BoundaryElevenToFourteen(t *testing.T) {
	got := Match(available(domain.Tuesday, 11, 12, 13), 2)

	assert.True(t, got["di-ochtend"])
	assert.True(t, got["di-middag"])
	assert.False(t, got["di-avond"])
}

func TestMatch_ZeroRequiredHours(t *testing.T) {
	got := Match(available(domain.Friday, 17), 0)

	assert.Equal(t, map[string]bool{
		"vr-ochtend": false,
		"vr-middag":  false,
		"vr-avond":   true,
	}, got)
}

func TestMatch_NegativeRequiredHoursTreatedAsZero(t *testing.T) {
	got := Match(available(domain.Friday, 8), -1)

	assert.True(t, got["vr-ochtend"])
	assert.False(t, got["vr-middag"])
}

func TestMatch_FractionalRequiredHours(t *testing.T) {
	slots := available(domain.Wednesday, 7, 8)

	assert.False(t, Match(slots, 2.5)["wo-ochtend"])
	assert.True(t, Match(available(domain.Wednesday, 7, 8, 9), 2.5)["wo-ochtend"])
}

func TestMatch_HourTwentyTwoDoesNotCountForAvond(t *testing.T) {
	got := Match(available(domain.Sunday, 22), 0)

	require.Contains(t, got, "zo-avond")
	assert.False(t, got["zo-avond"])
}

func TestMatch_LastDaypartHasNoForwardCombination(t *testing.T) {
	// 20-23: внутри avond только 2 часа, блок длиной 3
	got := Match(available(domain.Saturday, 20, 21, 22), 3)

	// правило B всё равно срабатывает: блок касается avond и длиной 3
	assert.True(t, got["za-avond"])
	assert.False(t, got["za-middag"])
}

func TestMatch_SeparateBlocksAreNotCombined(t *testing.T) {
	slots := append(available(domain.Thursday, 8, 9), available(domain.Thursday, 11)...)

	got := Match(slots, 3)

	assert.False(t, got["do-ochtend"])
}

func TestMatch_SkipsAnomalies(t *testing.T) {
	slots := []domain.AvailabilitySlot{
		{Day: domain.Monday, Hour: "09:00", Status: domain.StatusAvailable},
		{Day: domain.Monday, Hour: "10:00", Status: domain.StatusUnavailable},
		{Day: domain.Monday, Hour: "abc", Status: domain.StatusAvailable},
		{Day: domain.Monday, Hour: "10:30", Status: domain.StatusAvailable},
		{Day: "funday", Hour: "10:00", Status: domain.StatusAvailable},
		{Day: domain.Tuesday, Hour: "06:00", Status: domain.StatusAvailable},
		{Day: domain.Tuesday, Hour: "23:00", Status: domain.StatusAvailable},
	}

	got := Match(slots, 1)

	assert.Equal(t, map[string]bool{
		"ma-ochtend": true,
		"ma-middag":  false,
		"ma-avond":   false,
	}, got)
}

func TestMatch_Idempotent(t *testing.T) {
	slots := append(available(domain.Monday, 9, 10, 11), available(domain.Sunday, 18, 19)...)

	assert.Equal(t, Match(slots, 2), Match(slots, 2))
}

func TestMatchDay(t *testing.T) {
	slots := append(available(domain.Monday, 12, 13), available(domain.Tuesday, 7)...)

	assert.Equal(t, map[string]bool{"ochtend": false, "middag": true, "avond": false},
		MatchDay(slots, domain.Monday, 2))
	assert.Empty(t, MatchDay(slots, domain.Friday, 2))
}

func TestParseHour(t *testing.T) {
	h, err := ParseHour("07:00")
	require.NoError(t, err)
	assert.Equal(t, 7, h)

	_, err = ParseHour("7:30")
	assert.ErrorIs(t, err, ErrInvalidHour)

	_, err = ParseHour("23:00")
	assert.ErrorIs(t, err, ErrHourOutOfRange)
}
