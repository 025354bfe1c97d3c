package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Airports(ctx context.Context) error
	Nearby(ctx context.Context) error
	Search(ctx context.Context) error
	Calendar(ctx context.Context) error
	Sort(ctx context.Context, filter string) error
	Details(ctx context.Context, id string) error
	Abort(ctx context.Context) error
}

// runREPL reads a line from the provided scanner, parses the first token as
// the command, and dispatches to methods on 'a'. Unknown commands are
// reported back to the user. The loop exits on scanner EOF or when the user
// types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers print their
// own messages. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("skyfare %s> ", statusFn()))
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

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: airports, nearby, search, calendar, sort, details, abort, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, airports, nearby, search, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "airports":
			_ = a.Airports(ctx)

		case "nearby":
			_ = a.Nearby(ctx)

		case "search":
			_ = a.Search(ctx)

		case "calendar":
			_ = a.Calendar(ctx)

		case "sort":
			if len(args) == 0 {
				printlnFn("Usage: sort best|cheapest|fastest")
				continue
			}
			_ = a.Sort(ctx, args[0])

		case "details":
			if len(args) == 0 {
				printlnFn("Usage: details <number>")
				continue
			}
			_ = a.Details(ctx, args[0])

		case "abort":
			_ = a.Abort(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
