package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseSlotStart(t *testing.T) {
	tests := []struct {
		name string
		slot string
		want SlotStart
		ok   bool
	}{
		{name: "standard slot", slot: "08:00~10:00", want: SlotStart{8, 0}, ok: true},
		{name: "evening slot", slot: "20:00~22:00", want: SlotStart{20, 0}, ok: true},
		{name: "start only", slot: "06:30", want: SlotStart{6, 30}, ok: true},
		{name: "spaces around start", slot: " 08 : 15 ~10:00", want: SlotStart{8, 15}, ok: true},
		{name: "out of range parses anyway", slot: "25:99~26:00", want: SlotStart{25, 99}, ok: true},
		{name: "garbage", slot: "garbage", ok: false},
		{name: "empty", slot: "", ok: false},
		{name: "missing minutes", slot: "08~10:00", ok: false},
		{name: "non numeric hour", slot: "ab:00~10:00", ok: false},
		{name: "non numeric minute", slot: "08:xx~10:00", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSlotStart(tt.slot)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func TestToLocalTime(t *testing.T) {
	got, ok := ToLocalTime("2026-02-10", 8, 0)
	require.True(t, ok)
	require.Equal(t, time.Date(2026, 2, 10, 8, 0, 0, 0, time.Local), got)

	// Overflowing components normalize instead of failing.
	got, ok = ToLocalTime("2026-02-10", 24, 30)
	require.True(t, ok)
	require.Equal(t, time.Date(2026, 2, 11, 0, 30, 0, 0, time.Local), got)

	for _, bad := range []string{"", "2026", "2026-02", "yyyy-mm-dd", "2026-xx-10"} {
		_, ok := ToLocalTime(bad, 8, 0)
		require.False(t, ok, "date %q should not parse", bad)
	}
}

func TestSlotStartTime(t *testing.T) {
	got, ok := SlotStartTime("08:00~10:00", "2026-02-10")
	require.True(t, ok)
	require.Equal(t, time.Date(2026, 2, 10, 8, 0, 0, 0, time.Local), got)

	_, ok = SlotStartTime("garbage", "2026-02-10")
	require.False(t, ok)

	_, ok = SlotStartTime("08:00~10:00", "not-a-date")
	require.False(t, ok)
}
