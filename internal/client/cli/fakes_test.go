package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/api"
	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/models"
	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/services"
	"github.com/Gabrielparizet/book-my-gigs-cli/internal/client/session"
	"github.com/Gabrielparizet/book-my-gigs-cli/internal/logging"
)

// ------------ helpers ------------

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

type appFakes struct {
	accounts *fakeAccounts
	users    *fakeUsers
	events   *fakeEvents
	refs     *fakeRefs
	sessions *fakeSessions
}

func newTestApp(t *testing.T, f *appFakes, lines ...string) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	return &App{
		log:      logging.NewTextLogger(io.Discard, "error"),
		sessions: f.sessions,
		accounts: f.accounts,
		users:    f.users,
		events:   f.events,
		refs:     f.refs,
		reader:   readerFromLines(lines...),
		out:      out,
	}, out
}

func signedIn() *fakeSessions {
	return &fakeSessions{sess: session.Session{Token: "tok-1", AccountID: "acc-1"}}
}

// stubPassword swaps the password seam for the duration of the test.
func stubPassword(t *testing.T, passwords ...string) {
	t.Helper()
	orig := getPassword
	i := 0
	getPassword = func(prompt string, w io.Writer) (string, error) {
		pw := passwords[i%len(passwords)]
		i++
		return pw, nil
	}
	t.Cleanup(func() { getPassword = orig })
}

// stubPickers swaps the picker seams so forms can be filled without a
// terminal round-trip. Single-select values are keyed by prompt label;
// absent labels commit nothing.
func stubPickers(t *testing.T, singles map[string]string, multi []string) {
	t.Helper()
	origOne, origMany := pickOneFn, pickManyFn
	pickOneFn = func(r *bufio.Reader, w io.Writer, label string, candidates []string) (string, error) {
		return singles[label], nil
	}
	pickManyFn = func(r *bufio.Reader, w io.Writer, label string, candidates []string) ([]string, error) {
		return multi, nil
	}
	t.Cleanup(func() { pickOneFn, pickManyFn = origOne, origMany })
}

// ------------ fakes ------------

type fakeSessions struct {
	sess session.Session
}

func (f *fakeSessions) Get(ctx context.Context) (session.Session, error) { return f.sess, nil }
func (f *fakeSessions) Set(ctx context.Context, s session.Session) error { f.sess = s; return nil }
func (f *fakeSessions) Clear(ctx context.Context) error                  { f.sess = session.Session{}; return nil }
func (f *fakeSessions) Authenticated(ctx context.Context) bool           { return f.sess.Token != "" }
func (f *fakeSessions) Token(ctx context.Context) (string, error)        { return f.sess.Token, nil }

type fakeAccounts struct {
	calls []string

	registerErr   error
	signInAccount *models.Account
	signInErr     error
	signOutErr    error
	account       *models.Account
	accountErr    error
}

func (f *fakeAccounts) Register(ctx context.Context, email, password string) error {
	f.calls = append(f.calls, "Register")
	return f.registerErr
}

func (f *fakeAccounts) SignIn(ctx context.Context, email, password string) (*models.Account, error) {
	f.calls = append(f.calls, "SignIn")
	return f.signInAccount, f.signInErr
}

func (f *fakeAccounts) SignOut(ctx context.Context) error {
	f.calls = append(f.calls, "SignOut")
	return f.signOutErr
}

func (f *fakeAccounts) Account(ctx context.Context, accountID string) (*models.Account, error) {
	f.calls = append(f.calls, "Account")
	if f.account != nil || f.accountErr != nil {
		return f.account, f.accountErr
	}
	return &models.Account{ID: accountID}, nil
}

type fakeUsers struct {
	calls []string

	profile    *models.User
	profileErr error
	created    *models.User
	createErr  error
	updateErr  error
	deleteErr  error

	gotInput services.ProfileInput
	gotID    string
}

func (f *fakeUsers) ProfileByAccount(ctx context.Context, accountID string) (*models.User, error) {
	f.calls = append(f.calls, "ProfileByAccount")
	return f.profile, f.profileErr
}

func (f *fakeUsers) Get(ctx context.Context, userID string) (*models.User, error) {
	f.calls = append(f.calls, "Get")
	return f.profile, f.profileErr
}

func (f *fakeUsers) Create(ctx context.Context, in services.ProfileInput) (*models.User, error) {
	f.calls = append(f.calls, "Create")
	f.gotInput = in
	return f.created, f.createErr
}

func (f *fakeUsers) Update(ctx context.Context, userID string, in services.ProfileInput) error {
	f.calls = append(f.calls, "Update")
	f.gotID = userID
	f.gotInput = in
	return f.updateErr
}

func (f *fakeUsers) Delete(ctx context.Context, userID string) error {
	f.calls = append(f.calls, "Delete")
	f.gotID = userID
	return f.deleteErr
}

type fakeEvents struct {
	calls []string

	events    []models.Event
	err       error
	createErr error

	gotLocation string
	gotFilter   api.EventFilter
	gotEvent    api.NewEvent
}

func (f *fakeEvents) All(ctx context.Context) ([]models.Event, error) {
	f.calls = append(f.calls, "All")
	return f.events, f.err
}

func (f *fakeEvents) ByLocation(ctx context.Context, location string, filter api.EventFilter) ([]models.Event, error) {
	f.calls = append(f.calls, "ByLocation")
	f.gotLocation = location
	f.gotFilter = filter
	return f.events, f.err
}

func (f *fakeEvents) ForUser(ctx context.Context, userID string) ([]models.Event, error) {
	f.calls = append(f.calls, "ForUser")
	return f.events, f.err
}

func (f *fakeEvents) Create(ctx context.Context, userID string, event api.NewEvent) error {
	f.calls = append(f.calls, "Create")
	f.gotEvent = event
	return f.createErr
}

type fakeRefs struct {
	calls []string

	locations []string
	types     []string
	genres    []string
	err       error
}

func (f *fakeRefs) LocationsAndGenres(ctx context.Context) ([]string, []string, error) {
	f.calls = append(f.calls, "LocationsAndGenres")
	return f.locations, f.genres, f.err
}

func (f *fakeRefs) FilterSets(ctx context.Context) ([]string, []string, []string, error) {
	f.calls = append(f.calls, "FilterSets")
	return f.locations, f.types, f.genres, f.err
}

func (f *fakeRefs) Types(ctx context.Context) ([]string, error) {
	f.calls = append(f.calls, "Types")
	return f.types, f.err
}
