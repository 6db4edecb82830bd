package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Login(ctx context.Context) error
	AdminLogin(ctx context.Context) error
	Register(ctx context.Context) error
	Google(ctx context.Context) error
	Forgot(ctx context.Context) error
	Verify(ctx context.Context, token string) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Stations(ctx context.Context) error
	AddStation(ctx context.Context) error
	UpdateStation(ctx context.Context, id string) error
	DeleteStation(ctx context.Context, id string) error
	Slots(ctx context.Context, stationID string) error
	AddSlot(ctx context.Context) error
	UpdateSlot(ctx context.Context, id string) error
	DeleteSlot(ctx context.Context, id string) error
	Book(ctx context.Context) error
	Rebook(ctx context.Context, id string) error
	Bookings(ctx context.Context) error
	CancelBooking(ctx context.Context, id string) error
	Pending(ctx context.Context) error
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
	Profile(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	Users(ctx context.Context) error
	Block(ctx context.Context, id string) error
	Unblock(ctx context.Context, id string) error
}

// runREPL starts a simple read–eval–print loop for the chargecli client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("evcs %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		firstArg := ""
		if len(args) > 0 {
			firstArg = args[0]
		}

		switch cmd {
		case "help":
			switch {
			case !a.isLoggedIn():
				printlnFn("Available commands: login, admin-login, register, google, forgot, verify, stations, slots, exit")
			case a.isAdmin():
				printlnFn("Available commands: stations, add-station, update-station, del-station, slots, add-slot, update-slot, del-slot, pending, approve, reject, users, block, unblock, profile, update-profile, whoami, logout, exit")
			default:
				printlnFn("Available commands: stations, slots, book, rebook, bookings, cancel, profile, update-profile, whoami, logout, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "admin-login":
			_ = a.AdminLogin(ctx)

		case "register":
			_ = a.Register(ctx)

		case "google":
			_ = a.Google(ctx)

		case "forgot":
			_ = a.Forgot(ctx)

		case "verify":
			if firstArg == "" {
				printlnFn("Usage: verify <token>")
				continue
			}
			_ = a.Verify(ctx, firstArg)

		case "stations":
			_ = a.Stations(ctx)

		case "add-station":
			_ = a.AddStation(ctx)

		case "update-station":
			if firstArg == "" {
				printlnFn("Usage: update-station <station-id>")
				continue
			}
			_ = a.UpdateStation(ctx, firstArg)

		case "del-station":
			if firstArg == "" {
				printlnFn("Usage: del-station <station-id>")
				continue
			}
			_ = a.DeleteStation(ctx, firstArg)

		case "slots":
			_ = a.Slots(ctx, firstArg)

		case "add-slot":
			_ = a.AddSlot(ctx)

		case "update-slot":
			if firstArg == "" {
				printlnFn("Usage: update-slot <slot-id>")
				continue
			}
			_ = a.UpdateSlot(ctx, firstArg)

		case "del-slot":
			if firstArg == "" {
				printlnFn("Usage: del-slot <slot-id>")
				continue
			}
			_ = a.DeleteSlot(ctx, firstArg)

		case "book":
			_ = a.Book(ctx)

		case "rebook":
			if firstArg == "" {
				printlnFn("Usage: rebook <booking-id>")
				continue
			}
			_ = a.Rebook(ctx, firstArg)

		case "bookings":
			_ = a.Bookings(ctx)

		case "cancel":
			if firstArg == "" {
				printlnFn("Usage: cancel <booking-id>")
				continue
			}
			_ = a.CancelBooking(ctx, firstArg)

		case "pending":
			_ = a.Pending(ctx)

		case "approve":
			if firstArg == "" {
				printlnFn("Usage: approve <booking-id>")
				continue
			}
			_ = a.Approve(ctx, firstArg)

		case "reject":
			if firstArg == "" {
				printlnFn("Usage: reject <booking-id>")
				continue
			}
			_ = a.Reject(ctx, firstArg)

		case "users":
			_ = a.Users(ctx)

		case "block":
			if firstArg == "" {
				printlnFn("Usage: block <user-id>")
				continue
			}
			_ = a.Block(ctx, firstArg)

		case "unblock":
			if firstArg == "" {
				printlnFn("Usage: unblock <user-id>")
				continue
			}
			_ = a.Unblock(ctx, firstArg)

		case "profile":
			_ = a.Profile(ctx)

		case "update-profile":
			_ = a.UpdateProfile(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func (a *App) getStatus() string {
	s := a.nav.Route()
	if u := a.session.CurrentUser(); u != nil {
		s = u.Email + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "EV Charging Station CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
