package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func localTime(y int, mon time.Month, d, h, m int) time.Time {
	return time.Date(y, mon, d, h, m, 0, 0, time.Local)
}

func TestIsPartnerAccount(t *testing.T) {
	tests := []struct {
		accountType string
		want        bool
	}{
		{"PARTNER", true},
		{"partner", true},
		{"  Partner  ", true},
		{"MEMBER", false},
		{"ADMIN", false},
		{"", false},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, IsPartnerAccount(tt.accountType), "accountType=%q", tt.accountType)
		require.Equal(t, !tt.want, IsGeneralMember(tt.accountType), "accountType=%q", tt.accountType)
	}
}

func TestIsPastSlot(t *testing.T) {
	const slot = "08:00~10:00"
	const date = "2026-02-10"

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"one hour before start", localTime(2026, 2, 10, 7, 0), false},
		{"exactly at start", localTime(2026, 2, 10, 8, 0), false},
		{"one hour after start", localTime(2026, 2, 10, 9, 0), true},
		{"next day", localTime(2026, 2, 11, 0, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsPastSlot(slot, date, tt.now))
		})
	}
}

func TestIsPastSlot_FailsOpenOnMalformedInput(t *testing.T) {
	now := localTime(2026, 2, 10, 9, 0)

	require.False(t, IsPastSlot("garbage", "2026-02-10", now))
	require.False(t, IsPastSlot("08:00~10:00", "garbage", now))
	require.False(t, IsPastSlot("", "", now))
}

func TestIsCancelDeadlinePassed(t *testing.T) {
	// Slot starts 08:00, so the deadline is 06:00.
	const slot = "08:00~10:00"
	const date = "2026-02-10"

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"well before deadline", localTime(2026, 2, 10, 5, 59), false},
		{"exactly at deadline", localTime(2026, 2, 10, 6, 0), false},
		{"just after deadline", localTime(2026, 2, 10, 6, 1), true},
		{"after game start", localTime(2026, 2, 10, 9, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsCancelDeadlinePassed(slot, date, tt.now))
		})
	}
}

func TestIsCancelDeadlinePassed_MonotoneInTime(t *testing.T) {
	const slot = "18:00~20:00"
	const date = "2026-03-01"

	// Once the deadline has passed it must stay passed at every later instant.
	start := localTime(2026, 3, 1, 15, 0)
	passed := false
	for i := 0; i < 12*60; i += 10 {
		now := start.Add(time.Duration(i) * time.Minute)
		got := IsCancelDeadlinePassed(slot, date, now)
		if passed {
			require.True(t, got, "deadline un-passed at %s", now)
		}
		passed = got
	}
	require.True(t, passed)
}

func TestIsCancelDeadlinePassed_FailsOpenOnMalformedInput(t *testing.T) {
	now := localTime(2026, 2, 10, 23, 0)

	require.False(t, IsCancelDeadlinePassed("garbage", "2026-02-10", now))
	require.False(t, IsCancelDeadlinePassed("08:00~10:00", "2026-02", now))
}

func TestIsRentalRestricted(t *testing.T) {
	tests := []struct {
		name        string
		rentalSlot  bool
		accountType string
		want        bool
	}{
		{"general member on rental slot", true, "MEMBER", true},
		{"unknown account type on rental slot", true, "", true},
		{"partner on rental slot", true, "PARTNER", false},
		{"lowercase partner on rental slot", true, "partner", false},
		{"general member on general slot", false, "MEMBER", false},
		{"partner on general slot", false, "PARTNER", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsRentalRestricted(tt.rentalSlot, tt.accountType))
		})
	}
}
