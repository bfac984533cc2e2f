package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Create(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// runREPL reads one command per line from reader and dispatches it to a. The
// loop exits on EOF or when the user types "exit" or "quit".
//
//	Always available:
//	  - help             show available commands
//	  - ping             check the server
//	  - (l)ist           list posts, newest first
//	  - show <id>        print one post
//	  - exit | quit      leave the program
//
//	Not logged in:
//	  - register, login
//
//	Logged in:
//	  - new              create a post
//	  - edit <id>        change title and content of your post
//	  - delete <id>      delete your post
//	  - logout
//
// Errors returned by command handlers are ignored here; handlers report them
// to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "gp%s> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		withID := func(fn func(context.Context, string) error) {
			if len(args) != 1 {
				fmt.Fprintf(out, "Usage: %s <id>\n", cmd)
				return
			}
			_ = fn(ctx, args[0])
		}
		needLogin := func(fn func()) {
			if !a.isLoggedIn() {
				fmt.Fprintln(out, "Please login first")
				return
			}
			fn()
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, "Available commands: (l)ist, show <id>, new, edit <id>, delete <id>, ping, logout, exit")
			} else {
				fmt.Fprintln(out, "Available commands: register, login, (l)ist, show <id>, ping, exit")
			}
		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "ping":
			_ = a.Ping(ctx)
		case "l", "list":
			_ = a.List(ctx)
		case "show":
			withID(a.Show)
		case "new":
			needLogin(func() { _ = a.Create(ctx) })
		case "edit":
			needLogin(func() { withID(a.Edit) })
		case "delete":
			needLogin(func() { withID(a.Delete) })
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
