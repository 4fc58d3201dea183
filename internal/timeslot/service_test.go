package timeslot

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	nextID int
	slots  map[string]*TimeSlot
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{slots: map[string]*TimeSlot{}}
}

func (f *fakeRepo) Create(_ context.Context, ts *TimeSlot) error {
	f.nextID++
	ts.ID = fmt.Sprintf("slot-%d", f.nextID)
	f.slots[ts.ID] = ts
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*TimeSlot, error) {
	ts, ok := f.slots[id]
	if !ok {
		return nil, ErrNotFound
	}
	return ts, nil
}

func (f *fakeRepo) GetByLabel(_ context.Context, venueID, label string) (*TimeSlot, error) {
	for _, ts := range f.slots {
		if ts.VenueID == venueID && ts.Label == label {
			return ts, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) List(_ context.Context, filter Filter) ([]*TimeSlot, int, error) {
	var result []*TimeSlot
	for _, ts := range f.slots {
		if filter.VenueID != "" && ts.VenueID != filter.VenueID {
			continue
		}
		result = append(result, ts)
	}
	return result, len(result), nil
}

func (f *fakeRepo) Update(_ context.Context, ts *TimeSlot) error {
	if _, ok := f.slots[ts.ID]; !ok {
		return ErrNotFound
	}
	f.slots[ts.ID] = ts
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.slots[id]; !ok {
		return ErrNotFound
	}
	delete(f.slots, id)
	return nil
}

func TestCreateValidatesLabel(t *testing.T) {
	svc := NewService(newFakeRepo())

	tests := []struct {
		label string
		ok    bool
	}{
		{"08:00~10:00", true},
		{" 08:00~10:00 ", true}, // surrounding whitespace is trimmed
		{"8:0~10:0", true},      // no zero padding required
		{"08:00-10:00", false},  // wrong separator
		{"08:00", false},
		{"ab:cd~10:00", false},
		{"08:00~ef:gh", false},
		{"", false},
	}
	for i, tt := range tests {
		// Distinct venues so trimmed duplicates don't collide.
		venueID := fmt.Sprintf("venue-%d", i)
		_, err := svc.Create(context.Background(), CreateRequest{VenueID: venueID, Label: tt.label})
		if tt.ok {
			require.NoError(t, err, "label %q", tt.label)
		} else {
			require.ErrorIs(t, err, ErrInvalidLabel, "label %q", tt.label)
		}
	}
}

func TestCreateRequiresVenue(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Create(context.Background(), CreateRequest{Label: "08:00~10:00"})
	require.ErrorIs(t, err, ErrVenueRequired)
}

func TestCreateRejectsDuplicateLabel(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Create(context.Background(), CreateRequest{VenueID: "venue-1", Label: "08:00~10:00"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), CreateRequest{VenueID: "venue-1", Label: "08:00~10:00"})
	require.ErrorIs(t, err, ErrLabelExists)

	// Same label at another venue is fine.
	_, err = svc.Create(context.Background(), CreateRequest{VenueID: "venue-2", Label: "08:00~10:00"})
	require.NoError(t, err)
}

func TestUpdateValidatesLabel(t *testing.T) {
	svc := NewService(newFakeRepo())

	ts, err := svc.Create(context.Background(), CreateRequest{VenueID: "venue-1", Label: "08:00~10:00"})
	require.NoError(t, err)

	bad := "nope"
	_, err = svc.Update(context.Background(), ts.ID, UpdateRequest{Label: &bad})
	require.ErrorIs(t, err, ErrInvalidLabel)

	good := "10:00~12:00"
	rental := true
	updated, err := svc.Update(context.Background(), ts.ID, UpdateRequest{Label: &good, RentalOnly: &rental})
	require.NoError(t, err)
	require.Equal(t, "10:00~12:00", updated.Label)
	require.True(t, updated.RentalOnly)
}
