package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL chrome output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Catalog(ctx context.Context) error
	Add(ctx context.Context, id string) error
	Move(ctx context.Context, slot string, up bool) error
	Remove(ctx context.Context, slot string) error
	Show(ctx context.Context) error
	Clear(ctx context.Context) error
	Order(ctx context.Context) error
	CloseOrder(ctx context.Context) error

	Feed(ctx context.Context) error
	Info(ctx context.Context, number string) error
	Profile(ctx context.Context) error

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Whoami(ctx context.Context) error
	Update(ctx context.Context) error
	Logout(ctx context.Context) error
	Forgot(ctx context.Context) error
	ResetPassword(ctx context.Context) error
}

// runREPL reads commands line by line and dispatches them to a.
//
// Lines are read from the same reader the prompt helpers use, so a command
// and its answers can arrive through one pipe. The loop exits on EOF, on ctx
// cancellation or when the user types "exit" or "quit". Handler errors are
// ignored here; handlers report their own.
//
//	Always:
//	  - catalog              list ingredients by type
//	  - add <id>             add an ingredient (a bun replaces the current one)
//	  - up|down <slot>       move a filling
//	  - rm <slot>            remove a filling
//	  - show                 show the current burger and its price
//	  - clear                empty the constructor
//	  - feed                 show the global order feed
//	  - info <number>        show one order with its ingredients
//	  - forgot | reset       password recovery
//	Not logged in:
//	  - register | login
//	Logged in:
//	  - order | close        place the burger, dismiss the result
//	  - profile              show own order history
//	  - whoami | update | logout
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("sb %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		arg := func(usage string) (string, bool) {
			if len(args) == 0 {
				printlnFn("Usage:", usage)
				return "", false
			}
			return args[0], true
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: catalog, add, up, down, rm, show, clear, order, close, feed, info, profile, whoami, update, logout, exit")
			} else {
				printlnFn("Available commands: catalog, add, up, down, rm, show, clear, feed, info, register, login, forgot, reset, exit")
			}

		case "catalog", "c":
			_ = a.Catalog(ctx)

		case "add":
			if id, ok := arg("add <ingredient id>"); ok {
				_ = a.Add(ctx, id)
			}

		case "up", "down":
			if slot, ok := arg(cmd + " <slot>"); ok {
				_ = a.Move(ctx, slot, cmd == "up")
			}

		case "rm":
			if slot, ok := arg("rm <slot>"); ok {
				_ = a.Remove(ctx, slot)
			}

		case "show", "s":
			_ = a.Show(ctx)

		case "clear":
			_ = a.Clear(ctx)

		case "order":
			_ = a.Order(ctx)

		case "close":
			_ = a.CloseOrder(ctx)

		case "feed":
			_ = a.Feed(ctx)

		case "info":
			if n, ok := arg("info <order number>"); ok {
				_ = a.Info(ctx, n)
			}

		case "profile":
			_ = a.Profile(ctx)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "update":
			_ = a.Update(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "forgot":
			_ = a.Forgot(ctx)

		case "reset":
			_ = a.ResetPassword(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
