package errcode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessage_KnownCodes(t *testing.T) {
	// Every exported code must have an entry in the default table.
	codes := []Code{
		CourtNotFound, ReservationNotFound, MemberNotFound,
		InvalidTimeSlot, InvalidRequestState, TermsRequired,
		RentalNotAllowed, GameTimePassed, CancelDeadlinePassed,
		CourtClosed, NotOwner, MemberSuspended, VoteRejected,
		AlreadyReserved, CourtFull,
		UsernameExists, ScheduleOverlap,
		InvalidCredentials, AccessDenied, ValidationError, InternalError,
	}

	for _, code := range codes {
		msg, ok := Message(code)
		require.True(t, ok, "code %s has no default message", code)
		require.NotEmpty(t, msg)
	}
}

func TestMessage_UnknownCode(t *testing.T) {
	_, ok := Message(Code("NO_SUCH_CODE"))
	require.False(t, ok)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name          string
		code          string
		serverMessage string
		status        int
		want          string
	}{
		{
			name:          "known code wins over server message",
			code:          "COURT_FULL",
			serverMessage: "raw backend text",
			status:        409,
			want:          "this time slot is fully booked",
		},
		{
			name:          "unknown code falls back to server message",
			code:          "SOMETHING_NEW",
			serverMessage: "backend says no",
			status:        400,
			want:          "backend says no",
		},
		{
			name:   "unknown code without server message falls back to generic",
			code:   "SOMETHING_NEW",
			status: 502,
			want:   "request failed (HTTP 502)",
		},
		{
			name:   "empty code without server message",
			code:   "",
			status: 500,
			want:   "request failed (HTTP 500)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Resolve(tt.code, tt.serverMessage, tt.status))
		})
	}
}
