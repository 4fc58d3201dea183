package policy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeCounts(t *testing.T) {
	tests := []struct {
		name     string
		reserved int
		capacity int
		want     Counts
	}{
		{
			name:     "exactly full",
			reserved: 6,
			capacity: 6,
			want: Counts{
				Capacity: 6, Reserved: 6, Confirmed: 6, Waiting: 0,
				WaitingLimit: 16, IsFull: true, IsWaitingFull: false,
			},
		},
		{
			name:     "waitlist full",
			reserved: 16,
			capacity: 6,
			want: Counts{
				Capacity: 6, Reserved: 16, Confirmed: 6, Waiting: 10,
				WaitingLimit: 16, IsFull: true, IsWaitingFull: true,
			},
		},
		{
			name:     "partially filled",
			reserved: 3,
			capacity: 6,
			want: Counts{
				Capacity: 6, Reserved: 3, Confirmed: 3, Waiting: 0,
				WaitingLimit: 16, IsFull: false, IsWaitingFull: false,
			},
		},
		{
			name:     "empty",
			reserved: 0,
			capacity: 4,
			want: Counts{
				Capacity: 4, Reserved: 0, Confirmed: 0, Waiting: 0,
				WaitingLimit: 14, IsFull: false, IsWaitingFull: false,
			},
		},
		{
			name:     "one below capacity",
			reserved: 5,
			capacity: 6,
			want: Counts{
				Capacity: 6, Reserved: 5, Confirmed: 5, Waiting: 0,
				WaitingLimit: 16, IsFull: false, IsWaitingFull: false,
			},
		},
		{
			name:     "waiting in progress",
			reserved: 9,
			capacity: 4,
			want: Counts{
				Capacity: 4, Reserved: 9, Confirmed: 4, Waiting: 5,
				WaitingLimit: 14, IsFull: true, IsWaitingFull: false,
			},
		},
		{
			name:     "invalid capacity defaults to 6",
			reserved: 7,
			capacity: 0,
			want: Counts{
				Capacity: 6, Reserved: 7, Confirmed: 6, Waiting: 1,
				WaitingLimit: 16, IsFull: true, IsWaitingFull: false,
			},
		},
		{
			name:     "negative reserved defaults to 0",
			reserved: -3,
			capacity: 6,
			want: Counts{
				Capacity: 6, Reserved: 0, Confirmed: 0, Waiting: 0,
				WaitingLimit: 16, IsFull: false, IsWaitingFull: false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ComputeCounts(tt.reserved, tt.capacity))
		})
	}
}

func TestComputeCounts_Invariants(t *testing.T) {
	for capacity := 1; capacity <= 8; capacity++ {
		for reserved := 0; reserved <= capacity+MaxWaitingCount+3; reserved++ {
			c := ComputeCounts(reserved, capacity)

			// Below the waiting limit every player is accounted for.
			if reserved < c.WaitingLimit {
				require.Equal(t, reserved, c.Confirmed+c.Waiting,
					"capacity=%d reserved=%d", capacity, reserved)
			}

			// At or past capacity the confirmed count pins to capacity.
			if reserved >= capacity {
				require.Equal(t, capacity, c.Confirmed,
					"capacity=%d reserved=%d", capacity, reserved)
			}

			// A full waitlist implies a full court.
			if c.IsWaitingFull {
				require.True(t, c.IsFull, "capacity=%d reserved=%d", capacity, reserved)
			}
		}
	}
}
