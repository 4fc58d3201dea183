package policy

import (
	"strings"
	"time"
)

// IsPartnerAccount reports whether an account type string denotes a partner
// (operator) account. Comparison is case and whitespace insensitive; empty or
// unknown types are general members.
func IsPartnerAccount(accountType string) bool {
	return strings.EqualFold(strings.TrimSpace(accountType), "PARTNER")
}

// IsGeneralMember reports whether the account type denotes a general member.
func IsGeneralMember(accountType string) bool {
	return !IsPartnerAccount(accountType)
}

// IsPastSlot reports whether now is strictly after the slot's start.
// Unparseable input permits (fails open) rather than erroring.
func IsPastSlot(timeSlot, gameDate string, now time.Time) bool {
	start, ok := SlotStartTime(timeSlot, gameDate)
	if !ok {
		return false
	}
	return now.After(start)
}

// IsCancelDeadlinePassed reports whether now is strictly after the
// cancellation deadline (CancelDeadlineHours before slot start).
// Once true at some instant it stays true for all later instants.
// Unparseable input permits (fails open).
func IsCancelDeadlinePassed(timeSlot, gameDate string, now time.Time) bool {
	start, ok := SlotStartTime(timeSlot, gameDate)
	if !ok {
		return false
	}
	deadline := start.Add(-CancelDeadlineHours * time.Hour)
	return now.After(deadline)
}

// IsRentalRestricted reports whether a rental slot is off-limits for the
// given account type. Partner accounts bypass the restriction.
func IsRentalRestricted(rentalSlot bool, accountType string) bool {
	return rentalSlot && IsGeneralMember(accountType)
}
