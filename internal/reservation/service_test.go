package reservation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pickleclub/reservation-backend/internal/court"
	"github.com/pickleclub/reservation-backend/internal/member"
	"github.com/pickleclub/reservation-backend/internal/policy"
	"github.com/pickleclub/reservation-backend/internal/timeslot"
)

// fakeRepo is an in-memory Repository for service-level tests.
type fakeRepo struct {
	nextID       int
	reservations map[string]*Reservation
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{reservations: map[string]*Reservation{}}
}

func (f *fakeRepo) Create(_ context.Context, r *Reservation) error {
	f.nextID++
	r.ID = fmt.Sprintf("res-%d", f.nextID)
	stored := *r
	stored.Players = append([]Player(nil), r.Players...)
	f.reservations[r.ID] = &stored
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyReservation(r), nil
}

func (f *fakeRepo) FindBySlot(_ context.Context, courtID, gameDate, timeSlot string) (*Reservation, error) {
	for _, r := range f.reservations {
		if r.CourtID == courtID && r.GameDate == gameDate && r.TimeSlot == timeSlot {
			return copyReservation(r), nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) List(_ context.Context, filter Filter) ([]*Reservation, int, error) {
	var result []*Reservation
	for _, r := range f.reservations {
		if filter.MemberID != "" && !r.HasPlayer(filter.MemberID) {
			continue
		}
		if filter.FromDate != "" && r.GameDate < filter.FromDate {
			continue
		}
		result = append(result, copyReservation(r))
	}
	return result, len(result), nil
}

func (f *fakeRepo) ListByVenueDate(_ context.Context, venueID, gameDate string) ([]*Reservation, error) {
	var result []*Reservation
	for _, r := range f.reservations {
		if r.VenueID == venueID && r.GameDate == gameDate {
			result = append(result, copyReservation(r))
		}
	}
	return result, nil
}

func (f *fakeRepo) AddPlayer(_ context.Context, reservationID, memberID string) (int, error) {
	r, ok := f.reservations[reservationID]
	if !ok {
		return 0, ErrNotFound
	}
	if r.HasPlayer(memberID) {
		return 0, ErrAlreadyReserved
	}
	position := 0
	for _, p := range r.Players {
		if p.Position >= position {
			position = p.Position + 1
		}
	}
	r.Players = append(r.Players, Player{MemberID: memberID, Position: position})
	return position, nil
}

func (f *fakeRepo) RemovePlayer(_ context.Context, reservationID, memberID string) error {
	r, ok := f.reservations[reservationID]
	if !ok {
		return ErrNotFound
	}
	for i, p := range r.Players {
		if p.MemberID == memberID {
			r.Players = append(r.Players[:i], r.Players[i+1:]...)
			return nil
		}
	}
	return ErrNotOwner
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.reservations[id]; !ok {
		return ErrNotFound
	}
	delete(f.reservations, id)
	return nil
}

func copyReservation(r *Reservation) *Reservation {
	c := *r
	c.Players = append([]Player(nil), r.Players...)
	return &c
}

type fakeCourtService struct {
	courts map[string]*court.Court
}

func (f *fakeCourtService) Create(context.Context, court.CreateRequest) (*court.Court, error) {
	return nil, nil
}

func (f *fakeCourtService) GetByID(_ context.Context, id string) (*court.Court, error) {
	c, ok := f.courts[id]
	if !ok {
		return nil, court.ErrNotFound
	}
	return c, nil
}

func (f *fakeCourtService) List(_ context.Context, filter court.Filter) ([]*court.Court, int, error) {
	var result []*court.Court
	for _, c := range f.courts {
		if filter.VenueID != "" && c.VenueID != filter.VenueID {
			continue
		}
		result = append(result, c)
	}
	return result, len(result), nil
}

func (f *fakeCourtService) Update(context.Context, string, court.UpdateRequest) (*court.Court, error) {
	return nil, nil
}

func (f *fakeCourtService) Delete(context.Context, string) error { return nil }

type fakeSlotService struct {
	slots []*timeslot.TimeSlot
}

func (f *fakeSlotService) Create(context.Context, timeslot.CreateRequest) (*timeslot.TimeSlot, error) {
	return nil, nil
}

func (f *fakeSlotService) GetByID(context.Context, string) (*timeslot.TimeSlot, error) {
	return nil, timeslot.ErrNotFound
}

func (f *fakeSlotService) GetByLabel(_ context.Context, venueID, label string) (*timeslot.TimeSlot, error) {
	for _, ts := range f.slots {
		if ts.VenueID == venueID && ts.Label == label {
			return ts, nil
		}
	}
	return nil, timeslot.ErrNotFound
}

func (f *fakeSlotService) List(_ context.Context, filter timeslot.Filter) ([]*timeslot.TimeSlot, int, error) {
	var result []*timeslot.TimeSlot
	for _, ts := range f.slots {
		if filter.VenueID != "" && ts.VenueID != filter.VenueID {
			continue
		}
		result = append(result, ts)
	}
	return result, len(result), nil
}

func (f *fakeSlotService) Update(context.Context, string, timeslot.UpdateRequest) (*timeslot.TimeSlot, error) {
	return nil, nil
}

func (f *fakeSlotService) Delete(context.Context, string) error { return nil }

type fakeMemberService struct {
	members map[string]*member.Member
}

func (f *fakeMemberService) Signup(context.Context, member.SignupRequest) (*member.Member, error) {
	return nil, nil
}

func (f *fakeMemberService) Login(context.Context, string, string) (*member.Member, error) {
	return nil, nil
}

func (f *fakeMemberService) GetByID(_ context.Context, id string) (*member.Member, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, member.ErrNotFound
	}
	return m, nil
}

func (f *fakeMemberService) List(context.Context, member.Filter) ([]*member.Member, int, error) {
	return nil, 0, nil
}

func (f *fakeMemberService) Update(context.Context, string, member.UpdateRequest) (*member.Member, error) {
	return nil, nil
}

type fixture struct {
	repo    *fakeRepo
	courts  *fakeCourtService
	slots   *fakeSlotService
	members *fakeMemberService
	service Service
}

// newFixture builds a venue with a general court, a rental court, a closed
// court, two slot labels, and a handful of members, with a fixed clock.
func newFixture(t *testing.T, now time.Time) *fixture {
	t.Helper()

	f := &fixture{
		repo: newFakeRepo(),
		courts: &fakeCourtService{courts: map[string]*court.Court{
			"court-1": {ID: "court-1", VenueID: "venue-1", Name: "Court 1", Capacity: 2, Type: court.TypeGeneral},
			"court-2": {ID: "court-2", VenueID: "venue-1", Name: "Court 2", Capacity: 4, Type: court.TypeRental},
			"court-3": {ID: "court-3", VenueID: "venue-1", Name: "Court 3", Capacity: 2, Type: court.TypeGeneral, Closed: true},
		}},
		slots: &fakeSlotService{slots: []*timeslot.TimeSlot{
			{ID: "slot-1", VenueID: "venue-1", Label: "08:00~10:00"},
			{ID: "slot-2", VenueID: "venue-1", Label: "10:00~12:00", RentalOnly: true},
		}},
		members: &fakeMemberService{members: map[string]*member.Member{
			"mem-1": {ID: "mem-1", Username: "alice", Name: "Alice", AccountType: member.AccountTypeMember},
			"mem-2": {ID: "mem-2", Username: "bob", Name: "Bob", AccountType: member.AccountTypeMember},
			"mem-3": {ID: "mem-3", Username: "club", Name: "Club", AccountType: member.AccountTypePartner},
			"mem-4": {ID: "mem-4", Username: "carol", Name: "Carol", AccountType: member.AccountTypeMember, Suspended: true},
		}},
	}
	f.service = NewServiceWithClock(f.repo, f.courts, f.slots, f.members, func() time.Time { return now })
	return f
}

var gameDay = time.Date(2026, time.February, 10, 5, 0, 0, 0, time.Local)

func join(courtID, memberID string) JoinRequest {
	return JoinRequest{CourtID: courtID, GameDate: "2026-02-10", TimeSlot: "08:00~10:00", MemberID: memberID}
}

func TestJoinCreatesRosterOnFirstJoin(t *testing.T) {
	f := newFixture(t, gameDay)

	res, err := f.service.Join(context.Background(), join("court-1", "mem-1"))
	require.NoError(t, err)
	require.NotEmpty(t, res.ID)
	require.Len(t, res.Players, 1)
	require.Equal(t, "mem-1", res.Players[0].MemberID)
	require.Equal(t, 0, res.Players[0].Position)
}

func TestJoinAppendsInArrivalOrder(t *testing.T) {
	f := newFixture(t, gameDay)

	_, err := f.service.Join(context.Background(), join("court-1", "mem-1"))
	require.NoError(t, err)
	res, err := f.service.Join(context.Background(), join("court-1", "mem-2"))
	require.NoError(t, err)

	require.Len(t, res.Players, 2)
	require.Equal(t, 1, res.Players[1].Position)
}

func TestJoinUnknownCourt(t *testing.T) {
	f := newFixture(t, gameDay)

	_, err := f.service.Join(context.Background(), join("court-nope", "mem-1"))
	require.ErrorIs(t, err, court.ErrNotFound)
}

func TestJoinClosedCourt(t *testing.T) {
	f := newFixture(t, gameDay)

	_, err := f.service.Join(context.Background(), join("court-3", "mem-1"))
	require.ErrorIs(t, err, ErrCourtClosed)
}

func TestJoinUndefinedSlot(t *testing.T) {
	f := newFixture(t, gameDay)

	req := join("court-1", "mem-1")
	req.TimeSlot = "06:00~08:00"
	_, err := f.service.Join(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidSlot)
}

func TestJoinSuspendedMember(t *testing.T) {
	f := newFixture(t, gameDay)

	_, err := f.service.Join(context.Background(), join("court-1", "mem-4"))
	require.ErrorIs(t, err, member.ErrSuspended)
}

func TestJoinPastSlot(t *testing.T) {
	// 09:00 on game day, an hour after the 08:00 start.
	f := newFixture(t, gameDay.Add(4*time.Hour))

	_, err := f.service.Join(context.Background(), join("court-1", "mem-1"))
	require.ErrorIs(t, err, ErrGameTimePassed)
}

func TestJoinIntoWaitlistWhenFull(t *testing.T) {
	f := newFixture(t, gameDay)

	// Capacity 2: fill both confirmed spots, the third join waits.
	for i, id := range []string{"mem-1", "mem-2"} {
		res, err := f.service.Join(context.Background(), join("court-1", id))
		require.NoError(t, err)
		require.Equal(t, i, res.Players[i].Position)
	}

	res, err := f.service.Join(context.Background(), join("court-1", "mem-3"))
	require.NoError(t, err)
	require.Equal(t, 2, res.Players[2].Position)

	counts := policy.ComputeCounts(len(res.Players), 2)
	require.True(t, counts.IsFull)
	require.Equal(t, 1, counts.Waiting)
}

func TestJoinRejectedAtWaitingLimit(t *testing.T) {
	f := newFixture(t, gameDay)

	// Capacity 2 plus 10 waiting spots: the 13th member is turned away.
	for i := 0; i < 12; i++ {
		id := fmt.Sprintf("extra-%d", i)
		f.members.members[id] = &member.Member{ID: id, AccountType: member.AccountTypeMember}
		_, err := f.service.Join(context.Background(), join("court-1", id))
		require.NoError(t, err)
	}

	_, err := f.service.Join(context.Background(), join("court-1", "mem-1"))
	require.ErrorIs(t, err, ErrCourtFull)
}

func TestWaitlistFullWinsOverPastSlot(t *testing.T) {
	// Both gates would fire; the waiting-limit check runs first.
	f := newFixture(t, gameDay)
	for i := 0; i < 12; i++ {
		id := fmt.Sprintf("extra-%d", i)
		f.members.members[id] = &member.Member{ID: id, AccountType: member.AccountTypeMember}
		_, err := f.service.Join(context.Background(), join("court-1", id))
		require.NoError(t, err)
	}

	late := newFixture(t, gameDay.Add(4*time.Hour))
	late.repo = f.repo
	late.members = f.members
	late.service = NewServiceWithClock(f.repo, late.courts, late.slots, f.members, func() time.Time { return gameDay.Add(4 * time.Hour) })

	_, err := late.service.Join(context.Background(), join("court-1", "mem-1"))
	require.ErrorIs(t, err, ErrCourtFull)
}

func TestJoinRentalCourtRestriction(t *testing.T) {
	f := newFixture(t, gameDay)

	_, err := f.service.Join(context.Background(), join("court-2", "mem-1"))
	require.ErrorIs(t, err, ErrRentalNotAllowed)

	res, err := f.service.Join(context.Background(), join("court-2", "mem-3"))
	require.NoError(t, err)
	require.Len(t, res.Players, 1)
}

func TestJoinRentalOnlySlotRestriction(t *testing.T) {
	f := newFixture(t, gameDay)

	req := join("court-1", "mem-1")
	req.TimeSlot = "10:00~12:00"
	_, err := f.service.Join(context.Background(), req)
	require.ErrorIs(t, err, ErrRentalNotAllowed)

	req.MemberID = "mem-3"
	_, err = f.service.Join(context.Background(), req)
	require.NoError(t, err)
}

func TestJoinTwiceRejected(t *testing.T) {
	f := newFixture(t, gameDay)

	_, err := f.service.Join(context.Background(), join("court-1", "mem-1"))
	require.NoError(t, err)
	_, err = f.service.Join(context.Background(), join("court-1", "mem-1"))
	require.ErrorIs(t, err, ErrAlreadyReserved)
}

func cancel(courtID, memberID string) CancelRequest {
	return CancelRequest{CourtID: courtID, GameDate: "2026-02-10", TimeSlot: "08:00~10:00", MemberID: memberID}
}

func TestCancelRemovesPlayer(t *testing.T) {
	f := newFixture(t, gameDay)

	_, err := f.service.Join(context.Background(), join("court-1", "mem-1"))
	require.NoError(t, err)
	_, err = f.service.Join(context.Background(), join("court-1", "mem-2"))
	require.NoError(t, err)

	require.NoError(t, f.service.Cancel(context.Background(), cancel("court-1", "mem-1")))

	res, err := f.repo.FindBySlot(context.Background(), "court-1", "2026-02-10", "08:00~10:00")
	require.NoError(t, err)
	require.Len(t, res.Players, 1)
	require.Equal(t, "mem-2", res.Players[0].MemberID)
}

func TestCancelLastPlayerDeletesRoster(t *testing.T) {
	f := newFixture(t, gameDay)

	_, err := f.service.Join(context.Background(), join("court-1", "mem-1"))
	require.NoError(t, err)

	require.NoError(t, f.service.Cancel(context.Background(), cancel("court-1", "mem-1")))

	_, err = f.repo.FindBySlot(context.Background(), "court-1", "2026-02-10", "08:00~10:00")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCancelWithoutReservation(t *testing.T) {
	f := newFixture(t, gameDay)

	err := f.service.Cancel(context.Background(), cancel("court-1", "mem-1"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCancelNotOnRoster(t *testing.T) {
	f := newFixture(t, gameDay)

	_, err := f.service.Join(context.Background(), join("court-1", "mem-1"))
	require.NoError(t, err)

	err = f.service.Cancel(context.Background(), cancel("court-1", "mem-2"))
	require.ErrorIs(t, err, ErrNotOwner)
}

func TestCancelDeadline(t *testing.T) {
	f := newFixture(t, gameDay)
	_, err := f.service.Join(context.Background(), join("court-1", "mem-1"))
	require.NoError(t, err)

	// 06:00 is exactly the deadline for an 08:00 start and still allowed;
	// one minute later is not.
	atDeadline := NewServiceWithClock(f.repo, f.courts, f.slots, f.members,
		func() time.Time { return gameDay.Add(time.Hour) })
	require.NoError(t, atDeadline.Cancel(context.Background(), cancel("court-1", "mem-1")))

	_, err = f.service.Join(context.Background(), join("court-1", "mem-1"))
	require.NoError(t, err)

	pastDeadline := NewServiceWithClock(f.repo, f.courts, f.slots, f.members,
		func() time.Time { return gameDay.Add(time.Hour + time.Minute) })
	err = pastDeadline.Cancel(context.Background(), cancel("court-1", "mem-1"))
	require.ErrorIs(t, err, ErrCancelDeadlinePassed)
}

func TestSlotBoard(t *testing.T) {
	f := newFixture(t, gameDay)

	_, err := f.service.Join(context.Background(), join("court-1", "mem-1"))
	require.NoError(t, err)

	board, err := f.service.SlotBoard(context.Background(), "venue-1", "2026-02-10", "mem-1")
	require.NoError(t, err)
	require.Equal(t, "venue-1", board.VenueID)

	// Two open courts x two slots; the closed court is absent.
	require.Len(t, board.Cells, 4)

	byKey := map[string]BoardCell{}
	for _, cell := range board.Cells {
		require.NotEqual(t, "court-3", cell.CourtID)
		byKey[cell.CourtID+"/"+cell.TimeSlot] = cell
	}

	joined := byKey["court-1/08:00~10:00"]
	require.Equal(t, policy.StateAvailable, joined.Summary.Status)
	require.Equal(t, 1, joined.Summary.Count)
	require.True(t, joined.Mine)

	empty := byKey["court-2/08:00~10:00"]
	require.Equal(t, policy.StateOpen, empty.Summary.Status)
	require.Equal(t, 0, empty.Summary.Count)
	require.False(t, empty.Mine)
}

func TestSlotBoardFullCourt(t *testing.T) {
	f := newFixture(t, gameDay)

	for _, id := range []string{"mem-1", "mem-2"} {
		_, err := f.service.Join(context.Background(), join("court-1", id))
		require.NoError(t, err)
	}

	board, err := f.service.SlotBoard(context.Background(), "venue-1", "2026-02-10", "mem-3")
	require.NoError(t, err)

	for _, cell := range board.Cells {
		if cell.CourtID == "court-1" && cell.TimeSlot == "08:00~10:00" {
			require.Equal(t, policy.StateFull, cell.Summary.Status)
			require.True(t, cell.Counts.IsFull)
			require.False(t, cell.Counts.IsWaitingFull)
			require.False(t, cell.Mine)
		}
	}
}

func TestListMineSkipsPastDates(t *testing.T) {
	f := newFixture(t, gameDay)

	_, err := f.service.Join(context.Background(), join("court-1", "mem-1"))
	require.NoError(t, err)

	// Joined yesterday's roster directly; ListMine must not return it.
	old := &Reservation{
		CourtID: "court-1", VenueID: "venue-1",
		GameDate: "2026-02-09", TimeSlot: "08:00~10:00",
		Players: []Player{{MemberID: "mem-1", Position: 0}},
	}
	require.NoError(t, f.repo.Create(context.Background(), old))

	mine, total, err := f.service.ListMine(context.Background(), "mem-1", 1, 20)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, mine, 1)
	require.Equal(t, "2026-02-10", mine[0].GameDate)
}
