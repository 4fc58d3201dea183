package errcode

import "fmt"

// Code is a symbolic failure code shared between backend responses and
// client-side display mapping. The set is closed: every code the service can
// emit has an entry in the default message table.
type Code string

const (
	CourtNotFound       Code = "COURT_NOT_FOUND"
	ReservationNotFound Code = "RESERVATION_NOT_FOUND"
	MemberNotFound      Code = "MEMBER_NOT_FOUND"

	InvalidTimeSlot      Code = "INVALID_TIME_SLOT"
	InvalidRequestState  Code = "INVALID_REQUEST_STATE"
	TermsRequired        Code = "TERMS_REQUIRED"
	RentalNotAllowed     Code = "RENTAL_NOT_ALLOWED"
	GameTimePassed       Code = "GAME_TIME_PASSED"
	CancelDeadlinePassed Code = "CANCEL_DEADLINE_PASSED"
	CourtClosed          Code = "COURT_CLOSED"
	NotOwner             Code = "NOT_OWNER"
	MemberSuspended      Code = "MEMBER_SUSPENDED"
	VoteRejected         Code = "VOTE_REJECTED"

	AlreadyReserved Code = "ALREADY_RESERVED"
	CourtFull       Code = "COURT_FULL"

	UsernameExists  Code = "USERNAME_EXISTS"
	ScheduleOverlap Code = "SCHEDULE_OVERLAP"

	InvalidCredentials Code = "INVALID_CREDENTIALS"
	AccessDenied       Code = "ACCESS_DENIED"
	ValidationError    Code = "VALIDATION_ERROR"
	InternalError      Code = "INTERNAL_ERROR"
)

// defaultMessages maps every known code to its default display text.
// The text is data, not logic: a deployment may swap this table per locale
// as long as the codes themselves are preserved.
var defaultMessages = map[Code]string{
	CourtNotFound:       "court not found",
	ReservationNotFound: "reservation not found",
	MemberNotFound:      "member not found",

	InvalidTimeSlot:      "invalid time slot",
	InvalidRequestState:  "invalid request state",
	TermsRequired:        "you must agree to the required terms to sign up",
	RentalNotAllowed:     "general members cannot reserve rental time slots",
	GameTimePassed:       "this time slot has already started",
	CancelDeadlinePassed: "reservations cannot be cancelled within 2 hours of game time",
	CourtClosed:          "this court is closed for reservations",
	NotOwner:             "you can only cancel your own reservation",
	MemberSuspended:      "this member is suspended at this venue",
	VoteRejected:         "blocked by a majority vote of existing players",

	AlreadyReserved: "you already reserved this time slot",
	CourtFull:       "this time slot is fully booked",

	UsernameExists:  "this username is already taken",
	ScheduleOverlap: "another schedule overlaps this time range",

	InvalidCredentials: "incorrect username or password",
	AccessDenied:       "access denied",
	ValidationError:    "please check your input",
	InternalError:      "an internal server error occurred",
}

// Message returns the default display text for a code.
// ok is false for codes outside the known set.
func Message(code Code) (string, bool) {
	msg, ok := defaultMessages[code]
	return msg, ok
}

// Resolve translates a backend error response into display text.
// Priority: known code -> server-supplied message -> generic HTTP fallback.
// Unrecognized codes are never silently swallowed.
func Resolve(code, serverMessage string, httpStatus int) string {
	if msg, ok := defaultMessages[Code(code)]; ok {
		return msg
	}
	if serverMessage != "" {
		return serverMessage
	}
	return fmt.Sprintf("request failed (HTTP %d)", httpStatus)
}
