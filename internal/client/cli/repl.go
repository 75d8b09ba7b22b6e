package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Page(ctx context.Context, args []string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Done(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Filter(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
	Board(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, help, exit"
	helpLoggedIn  = `Available commands:
  list                      all tasks
  page [n]                  one page of tasks
  search <query>            tasks whose title or description contains query
  filter [true|false|all]   tasks by completion
  add                       create a task
  edit <id>                 change title or description (- clears description)
  done <id>                 toggle completion
  delete <id>               remove a task
  export [file]             upload tasks to storage, optionally download to file
  board                     full-screen task board
  logout, help, exit`
	msgLoginFirst = "Please log in first (type 'login')"
)

var errUsage = errors.New("usage")

func usage(format string) error {
	return fmt.Errorf("%w: %s", errUsage, format)
}

// taskCommands require an authenticated session.
var taskCommands = map[string]bool{
	"list": true, "l": true, "page": true, "add": true, "edit": true, "done": true,
	"delete": true, "search": true, "filter": true, "export": true, "board": true,
}

// runREPL reads commands from reader until EOF or "exit"/"quit" and
// dispatches them to a. Handler errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("gt %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if taskCommands[cmd] && !a.isLoggedIn() {
			printlnFn(msgLoginFirst)
			continue
		}

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "l", "list":
			cmdErr = a.List(ctx)

		case "page":
			cmdErr = a.Page(ctx, args)

		case "add":
			cmdErr = a.Add(ctx)

		case "edit":
			cmdErr = a.Edit(ctx, args)

		case "done":
			cmdErr = a.Done(ctx, args)

		case "delete":
			cmdErr = a.Delete(ctx, args)

		case "search":
			cmdErr = a.Search(ctx, args)

		case "filter":
			cmdErr = a.Filter(ctx, args)

		case "export":
			cmdErr = a.Export(ctx, args)

		case "board":
			cmdErr = a.Board(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}

		if errors.Is(err, io.EOF) {
			return
		}
	}
}
