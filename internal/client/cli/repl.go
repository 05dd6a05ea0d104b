package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests can substitute a stub.
type execIface interface {
	isSignedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	SignIn(ctx context.Context) error
	SignOut(ctx context.Context) error
	Profile(ctx context.Context) error
	CreateUser(ctx context.Context) error
	ModifyUser(ctx context.Context) error
	DeleteUser(ctx context.Context) error
	Events(ctx context.Context) error
	FilterEvents(ctx context.Context) error
	MyEvents(ctx context.Context) error
	CreateEvent(ctx context.Context) error
}

// runREPL reads a line from scanner, takes the first token as the command
// and dispatches to a. Unknown commands are reported back. The loop exits
// on scanner EOF or when the user types "exit" or "quit".
//
// Every view except register and signin is gated on the session inside
// its handler; signed out they print the sign-in redirect and make no
// network calls.
//
// Handler errors are not surfaced here: every handler renders its own
// failure message, keeping the loop itself pure I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner, out io.Writer) {
	for {
		fmt.Fprintf(out, "bmg %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isSignedIn(ctx) {
				fmt.Fprintln(out, "Available commands: events, filter, reset, myevents, createevent, profile, createuser, modifyuser, deleteuser, signout, exit")
			} else {
				fmt.Fprintln(out, "Available commands: register, signin, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "signin":
			_ = a.SignIn(ctx)

		case "signout":
			_ = a.SignOut(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "createuser":
			_ = a.CreateUser(ctx)

		case "modifyuser":
			_ = a.ModifyUser(ctx)

		case "deleteuser":
			_ = a.DeleteUser(ctx)

		case "e", "events":
			_ = a.Events(ctx)

		case "filter":
			_ = a.FilterEvents(ctx)

		// reset restores the unfiltered listing after a filter.
		case "reset":
			_ = a.Events(ctx)

		case "myevents":
			_ = a.MyEvents(ctx)

		case "createevent":
			_ = a.CreateEvent(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}
