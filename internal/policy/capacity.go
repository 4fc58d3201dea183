package policy

// Counts is the capacity breakdown of a reservation.
type Counts struct {
	Capacity      int  // Effective court capacity
	Reserved      int  // Total joined players, confirmed plus waiting
	Confirmed     int  // Players within capacity
	Waiting       int  // Players past capacity, in arrival order
	WaitingLimit  int  // Capacity plus MaxWaitingCount
	IsFull        bool // Confirmed spots exhausted
	IsWaitingFull bool // No further joins of any kind permitted
}

// ComputeCounts derives confirmed/waiting counts and fullness flags from a
// reservation's player count and a court's capacity. Invalid inputs fall back
// to defaults (capacity 6, zero reserved). Safe to call with hypothetical
// counts for previews; never mutates anything.
func ComputeCounts(reservedCount, capacity int) Counts {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	if reservedCount < 0 {
		reservedCount = 0
	}

	confirmed := reservedCount
	if confirmed > capacity {
		confirmed = capacity
	}

	waiting := reservedCount - capacity
	if waiting < 0 {
		waiting = 0
	}

	limit := capacity + MaxWaitingCount

	return Counts{
		Capacity:      capacity,
		Reserved:      reservedCount,
		Confirmed:     confirmed,
		Waiting:       waiting,
		WaitingLimit:  limit,
		IsFull:        reservedCount >= capacity,
		IsWaitingFull: reservedCount >= limit,
	}
}
