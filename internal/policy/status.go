package policy

// SlotState is the externally visible status of one (court, date, slot) triple.
type SlotState string

const (
	// StateOpen means no reservation exists for the slot.
	StateOpen SlotState = "open"
	// StateAvailable means a reservation exists with confirmed spots left.
	StateAvailable SlotState = "available"
	// StateFull means confirmed spots are exhausted. This state conflates
	// "exactly full" and "waitlisted"; callers needing waitlist granularity
	// additionally call ComputeCounts with the player count.
	StateFull SlotState = "full"
)

// SlotSummary is the resolved status of a slot.
type SlotSummary struct {
	Status   SlotState `json:"status"`
	Count    int       `json:"count"`
	Capacity int       `json:"capacity"`
}

// ResolveSlotStatus computes the visible status of a slot from the court
// capacity and the reservation's player count. reserved is false when no
// reservation exists for the triple, in which case the slot is open with a
// zero count regardless of playerCount.
func ResolveSlotStatus(capacity, playerCount int, reserved bool) SlotSummary {
	if !reserved {
		return SlotSummary{Status: StateOpen, Count: 0, Capacity: capacity}
	}
	if playerCount >= capacity {
		return SlotSummary{Status: StateFull, Count: playerCount, Capacity: capacity}
	}
	return SlotSummary{Status: StateAvailable, Count: playerCount, Capacity: capacity}
}
