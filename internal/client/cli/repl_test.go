package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	admin    bool

	calls []string
	arg   string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) isAdmin() bool    { return f.admin }

func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) AdminLogin(ctx context.Context) error {
	f.calls = append(f.calls, "admin-login")
	f.loggedIn, f.admin = true, true
	return nil
}
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Google(ctx context.Context) error {
	f.calls = append(f.calls, "google")
	return nil
}
func (f *fakeExec) Forgot(ctx context.Context) error {
	f.calls = append(f.calls, "forgot")
	return nil
}
func (f *fakeExec) Verify(ctx context.Context, token string) error {
	f.calls = append(f.calls, "verify")
	f.arg = token
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn, f.admin = false, false
	return nil
}
func (f *fakeExec) Whoami(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) Stations(ctx context.Context) error {
	f.calls = append(f.calls, "stations")
	return nil
}
func (f *fakeExec) AddStation(ctx context.Context) error {
	f.calls = append(f.calls, "add-station")
	return nil
}
func (f *fakeExec) UpdateStation(ctx context.Context, id string) error {
	f.calls = append(f.calls, "update-station")
	f.arg = id
	return nil
}
func (f *fakeExec) DeleteStation(ctx context.Context, id string) error {
	f.calls = append(f.calls, "del-station")
	f.arg = id
	return nil
}
func (f *fakeExec) AddSlot(ctx context.Context) error {
	f.calls = append(f.calls, "add-slot")
	return nil
}
func (f *fakeExec) UpdateSlot(ctx context.Context, id string) error {
	f.calls = append(f.calls, "update-slot")
	f.arg = id
	return nil
}
func (f *fakeExec) DeleteSlot(ctx context.Context, id string) error {
	f.calls = append(f.calls, "del-slot")
	f.arg = id
	return nil
}
func (f *fakeExec) Rebook(ctx context.Context, id string) error {
	f.calls = append(f.calls, "rebook")
	f.arg = id
	return nil
}
func (f *fakeExec) Slots(ctx context.Context, stationID string) error {
	f.calls = append(f.calls, "slots")
	f.arg = stationID
	return nil
}
func (f *fakeExec) Book(ctx context.Context) error {
	f.calls = append(f.calls, "book")
	return nil
}
func (f *fakeExec) Bookings(ctx context.Context) error {
	f.calls = append(f.calls, "bookings")
	return nil
}
func (f *fakeExec) CancelBooking(ctx context.Context, id string) error {
	f.calls = append(f.calls, "cancel")
	f.arg = id
	return nil
}
func (f *fakeExec) Pending(ctx context.Context) error {
	f.calls = append(f.calls, "pending")
	return nil
}
func (f *fakeExec) Approve(ctx context.Context, id string) error {
	f.calls = append(f.calls, "approve")
	f.arg = id
	return nil
}
func (f *fakeExec) Reject(ctx context.Context, id string) error {
	f.calls = append(f.calls, "reject")
	f.arg = id
	return nil
}
func (f *fakeExec) Profile(ctx context.Context) error {
	f.calls = append(f.calls, "profile")
	return nil
}
func (f *fakeExec) UpdateProfile(ctx context.Context) error {
	f.calls = append(f.calls, "update-profile")
	return nil
}
func (f *fakeExec) Users(ctx context.Context) error {
	f.calls = append(f.calls, "users")
	return nil
}
func (f *fakeExec) Block(ctx context.Context, id string) error {
	f.calls = append(f.calls, "block")
	f.arg = id
	return nil
}
func (f *fakeExec) Unblock(ctx context.Context, id string) error {
	f.calls = append(f.calls, "unblock")
	f.arg = id
	return nil
}

func muteREPLOutput(t *testing.T) {
	t.Helper()
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	muteREPLOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"stations",
		"slots st1",
		"book",
		"bookings",
		"cancel b1",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "stations", "slots", "book", "bookings", "cancel"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
	if exec.arg != "b1" {
		t.Fatalf("last arg = %q, want %q", exec.arg, "b1")
	}
}

func TestRunREPL_ArgCommandsRequireAnArgument(t *testing.T) {
	muteREPLOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"cancel",
		"rebook",
		"approve",
		"reject",
		"block",
		"unblock",
		"verify",
		"update-station",
		"del-slot",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: true, admin: true}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	if len(exec.calls) != 0 {
		t.Fatalf("expected no dispatches without arguments, got %v", exec.calls)
	}
}

func TestRunREPL_AdminCommands(t *testing.T) {
	muteREPLOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"admin-login",
		"pending",
		"approve b7",
		"users",
		"block u9",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	want := []string{"admin-login", "pending", "approve", "users", "block", "logout"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("calls[%d] = %q, want %q", i, exec.calls[i], want[i])
		}
	}
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	muteREPLOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("")))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
