package cli

import (
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// lineScanner abstracts bufio.Scanner so tests can feed scripted input.
type lineScanner interface {
	Scan() bool
	Text() string
}

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Upload(ctx context.Context) error
	Draw(ctx context.Context) error
	Reference(ctx context.Context) error
	History(ctx context.Context) error
	Show(ctx context.Context) error
	Chat(ctx context.Context) error
	ClearChat(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner lineScanner) {
	printlnFn("Welcome to the Latte Art Meister CLI (type 'help' for commands)")

	for {
		printlnFn(fmt.Sprintf("latte %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: upload, draw, reference, (h)istory, show, chat, clearchat, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "upload":
			_ = a.Upload(ctx)

		case "draw":
			_ = a.Draw(ctx)

		case "reference":
			_ = a.Reference(ctx)

		case "h", "history":
			_ = a.History(ctx)

		case "show":
			_ = a.Show(ctx)

		case "chat":
			_ = a.Chat(ctx)

		case "clearchat":
			_ = a.ClearChat(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
