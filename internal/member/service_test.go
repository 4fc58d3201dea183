package member

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	nextID  int
	members map[string]*Member // by username
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{members: map[string]*Member{}}
}

func (f *fakeRepo) GetByUsername(_ context.Context, username string) (*Member, error) {
	m, ok := f.members[username]
	if !ok {
		return nil, ErrNotFound
	}
	return m, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Member, error) {
	for _, m := range f.members {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) Create(_ context.Context, m *Member) error {
	if _, ok := f.members[m.Username]; ok {
		return ErrUsernameExists
	}
	f.nextID++
	m.ID = fmt.Sprintf("mem-%d", f.nextID)
	f.members[m.Username] = m
	return nil
}

func (f *fakeRepo) UpdateLastLogin(_ context.Context, id string, t time.Time) error {
	for _, m := range f.members {
		if m.ID == id {
			m.LastLoginAt = &t
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeRepo) List(_ context.Context, _ Filter) ([]*Member, int, error) {
	var result []*Member
	for _, m := range f.members {
		result = append(result, m)
	}
	return result, len(result), nil
}

func (f *fakeRepo) Update(_ context.Context, m *Member) error {
	for _, existing := range f.members {
		if existing.ID == m.ID {
			f.members[existing.Username] = m
			return nil
		}
	}
	return ErrNotFound
}

// fakeHasher marks hashes without doing real bcrypt work.
type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (fakeHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return errors.New("mismatch")
	}
	return nil
}

func signupReq() SignupRequest {
	return SignupRequest{
		Username:   "Alice",
		Password:   "correct horse",
		Name:       "Alice Chen",
		AgreeTerms: true,
	}
}

func TestSignup(t *testing.T) {
	svc := NewService(newFakeRepo(), fakeHasher{})

	m, err := svc.Signup(context.Background(), signupReq())
	require.NoError(t, err)
	require.Equal(t, "alice", m.Username, "usernames are lowercased")
	require.Equal(t, AccountTypeMember, m.AccountType)
	require.NotNil(t, m.AgreedTermsAt)
	require.Nil(t, m.Level)
}

func TestSignupRequiresTerms(t *testing.T) {
	svc := NewService(newFakeRepo(), fakeHasher{})

	req := signupReq()
	req.AgreeTerms = false
	_, err := svc.Signup(context.Background(), req)
	require.ErrorIs(t, err, ErrTermsRequired)
}

func TestSignupValidation(t *testing.T) {
	svc := NewService(newFakeRepo(), fakeHasher{})

	req := signupReq()
	req.Username = "   "
	_, err := svc.Signup(context.Background(), req)
	require.ErrorIs(t, err, ErrUsernameRequired)

	req = signupReq()
	req.Password = "short"
	_, err = svc.Signup(context.Background(), req)
	require.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestSignupDuplicateUsername(t *testing.T) {
	svc := NewService(newFakeRepo(), fakeHasher{})

	_, err := svc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	// Same username with different casing is still a duplicate.
	req := signupReq()
	req.Username = "ALICE"
	_, err = svc.Signup(context.Background(), req)
	require.ErrorIs(t, err, ErrUsernameExists)
}

func TestLogin(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fakeHasher{})

	_, err := svc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	m, err := svc.Login(context.Background(), "alice", "correct horse")
	require.NoError(t, err)
	require.Equal(t, "alice", m.Username)
	require.NotNil(t, m.LastLoginAt)

	_, err = svc.Login(context.Background(), "alice", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown usernames report the same error as bad passwords.
	_, err = svc.Login(context.Background(), "nobody", "correct horse")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateSuspension(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fakeHasher{})

	m, err := svc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	suspended := true
	updated, err := svc.Update(context.Background(), m.ID, UpdateRequest{Suspended: &suspended})
	require.NoError(t, err)
	require.True(t, updated.Suspended)
}

func TestIsPartner(t *testing.T) {
	require.True(t, (&Member{AccountType: "PARTNER"}).IsPartner())
	require.True(t, (&Member{AccountType: " partner "}).IsPartner())
	require.False(t, (&Member{AccountType: "MEMBER"}).IsPartner())
	require.False(t, (&Member{AccountType: ""}).IsPartner())
}
