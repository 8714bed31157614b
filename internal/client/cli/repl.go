package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches against. App
// satisfies it; tests can substitute a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Overview(ctx context.Context) error
	Accounts(ctx context.Context) error
	Posts(ctx context.Context) error
	OpenTab(ctx context.Context, name string) error
	Connect(ctx context.Context, platform, accountName string) error
	Disconnect(ctx context.Context, rawID string) error
	Predict(ctx context.Context, platform, content string) error
	Reload(ctx context.Context) error
}

// runREPL reads commands line by line and dispatches them. The loop exits
// on scanner EOF or an explicit exit command. Handler errors are printed,
// never fatal.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sp> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				printlnFn("Available commands: register, login, exit")
			case "register":
				report(a.Register(ctx))
			case "login":
				report(a.Login(ctx))
			case "exit", "quit":
				printlnFn("Bye!")
				return
			default:
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "help":
			printlnFn("Available commands: overview, accounts, posts, tab <name>, connect <platform> <name>, disconnect <id>, predict <platform> <content>, reload, logout, exit")
		case "overview":
			report(a.Overview(ctx))
		case "accounts":
			report(a.Accounts(ctx))
		case "posts":
			report(a.Posts(ctx))
		case "tab":
			if len(args) != 1 {
				printlnFn("Usage: tab <name>")
				continue
			}
			report(a.OpenTab(ctx, args[0]))
		case "connect":
			if len(args) < 2 {
				printlnFn("Usage: connect <platform> <account name>")
				continue
			}
			report(a.Connect(ctx, args[0], strings.Join(args[1:], " ")))
		case "disconnect":
			if len(args) != 1 {
				printlnFn("Usage: disconnect <account id>")
				continue
			}
			report(a.Disconnect(ctx, args[0]))
		case "predict":
			if len(args) < 2 {
				printlnFn("Usage: predict <platform> <content>")
				continue
			}
			report(a.Predict(ctx, args[0], strings.Join(args[1:], " ")))
		case "reload":
			report(a.Reload(ctx))
		case "logout":
			report(a.Logout(ctx))
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func report(err error) {
	if err != nil {
		printlnFn("Error:", err.Error())
	}
}
