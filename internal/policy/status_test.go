package policy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveSlotStatus(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		players  int
		reserved bool
		want     SlotSummary
	}{
		{"no reservation", 6, 0, false, SlotSummary{StateOpen, 0, 6}},
		{"partially filled", 6, 3, true, SlotSummary{StateAvailable, 3, 6}},
		{"one below capacity", 6, 5, true, SlotSummary{StateAvailable, 5, 6}},
		{"exactly at capacity", 6, 6, true, SlotSummary{StateFull, 6, 6}},
		{"waitlisted folds into full", 6, 9, true, SlotSummary{StateFull, 9, 6}},
		{"small court boundary", 2, 1, true, SlotSummary{StateAvailable, 1, 2}},
		{"small court full", 2, 2, true, SlotSummary{StateFull, 2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ResolveSlotStatus(tt.capacity, tt.players, tt.reserved))
		})
	}
}

func TestResolveSlotStatus_Idempotent(t *testing.T) {
	first := ResolveSlotStatus(6, 4, true)
	second := ResolveSlotStatus(6, 4, true)
	require.Equal(t, first, second)
}
