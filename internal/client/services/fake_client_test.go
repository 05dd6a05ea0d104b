package services

import (
	"context"
	"sync"

	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/api"
	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/models"
	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/session"
)

// fakeClient implements api.Client, recording calls in order. Behaviour
// is steered through the err* and out* fields.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	signInResult *api.SignInResult
	signInErr    error
	signOutErr   error
	registerErr  error

	accountUser    *models.User
	accountUserErr error
	createdUser    *models.User
	createUserErr  error
	user           *models.User
	userErr        error
	updateUserErr  error
	setLocationErr error
	setGenresErr   error
	deleteUserErr  error

	events       []models.Event
	eventsErr    error
	userEvents   []models.Event
	createEvtErr error

	locations    []string
	locationsErr error
	genres       []string
	genresErr    error
	types        []string
	typesErr     error

	gotLocation string
	gotGenres   []string
	gotFilter   api.EventFilter
	gotCore     api.UserCore
	gotEvent    api.NewEvent
}

func (f *fakeClient) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeClient) Register(ctx context.Context, email, password string) error {
	f.record("Register")
	return f.registerErr
}

func (f *fakeClient) SignIn(ctx context.Context, email, password string) (*api.SignInResult, error) {
	f.record("SignIn")
	return f.signInResult, f.signInErr
}

func (f *fakeClient) SignOut(ctx context.Context) error {
	f.record("SignOut")
	return f.signOutErr
}

func (f *fakeClient) Account(ctx context.Context, accountID string) (*models.Account, error) {
	f.record("Account")
	return &models.Account{ID: accountID}, nil
}

func (f *fakeClient) AccountUser(ctx context.Context, accountID string) (*models.User, error) {
	f.record("AccountUser")
	return f.accountUser, f.accountUserErr
}

func (f *fakeClient) CreateUser(ctx context.Context, core api.UserCore) (*models.User, error) {
	f.record("CreateUser")
	f.gotCore = core
	return f.createdUser, f.createUserErr
}

func (f *fakeClient) User(ctx context.Context, userID string) (*models.User, error) {
	f.record("User")
	return f.user, f.userErr
}

func (f *fakeClient) UpdateUser(ctx context.Context, userID string, core api.UserCore) error {
	f.record("UpdateUser")
	f.gotCore = core
	return f.updateUserErr
}

func (f *fakeClient) SetUserLocation(ctx context.Context, userID, location string) error {
	f.record("SetUserLocation")
	f.gotLocation = location
	return f.setLocationErr
}

func (f *fakeClient) SetUserGenres(ctx context.Context, userID string, genres []string) error {
	f.record("SetUserGenres")
	f.gotGenres = genres
	return f.setGenresErr
}

func (f *fakeClient) DeleteUser(ctx context.Context, userID string) error {
	f.record("DeleteUser")
	return f.deleteUserErr
}

func (f *fakeClient) Events(ctx context.Context) ([]models.Event, error) {
	f.record("Events")
	return f.events, f.eventsErr
}

func (f *fakeClient) EventsByLocation(ctx context.Context, location string, filter api.EventFilter) ([]models.Event, error) {
	f.record("EventsByLocation")
	f.gotLocation = location
	f.gotFilter = filter
	return f.events, f.eventsErr
}

func (f *fakeClient) UserEvents(ctx context.Context, userID string) ([]models.Event, error) {
	f.record("UserEvents")
	return f.userEvents, f.eventsErr
}

func (f *fakeClient) CreateEvent(ctx context.Context, userID string, event api.NewEvent) error {
	f.record("CreateEvent")
	f.gotEvent = event
	return f.createEvtErr
}

func (f *fakeClient) Locations(ctx context.Context) ([]string, error) {
	f.record("Locations")
	return f.locations, f.locationsErr
}

func (f *fakeClient) Genres(ctx context.Context) ([]string, error) {
	f.record("Genres")
	return f.genres, f.genresErr
}

func (f *fakeClient) Types(ctx context.Context) ([]string, error) {
	f.record("Types")
	return f.types, f.typesErr
}

// memStore is an in-memory session.Store for service tests.
type memStore struct {
	sess   session.Session
	setErr error
	clrErr error
	setCnt int
	clrCnt int
}

func (m *memStore) Get(ctx context.Context) (session.Session, error) { return m.sess, nil }

func (m *memStore) Set(ctx context.Context, s session.Session) error {
	m.setCnt++
	if m.setErr != nil {
		return m.setErr
	}
	m.sess = s
	return nil
}

func (m *memStore) Clear(ctx context.Context) error {
	m.clrCnt++
	if m.clrErr != nil {
		return m.clrErr
	}
	m.sess = session.Session{}
	return nil
}

func (m *memStore) Authenticated(ctx context.Context) bool { return m.sess.Token != "" }

func (m *memStore) Token(ctx context.Context) (string, error) { return m.sess.Token, nil }
