package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool
	failWith error

	calls []string
}

func (f *fakeExec) call(name string, args ...string) error {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return f.failWith
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(context.Context) error {
	return f.call("register")
}
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.call("login")
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.call("logout")
}
func (f *fakeExec) List(context.Context) error { return f.call("list") }
func (f *fakeExec) Page(_ context.Context, args []string) error {
	return f.call("page", args...)
}
func (f *fakeExec) Add(context.Context) error { return f.call("add") }
func (f *fakeExec) Edit(_ context.Context, args []string) error {
	return f.call("edit", args...)
}
func (f *fakeExec) Done(_ context.Context, args []string) error {
	return f.call("done", args...)
}
func (f *fakeExec) Delete(_ context.Context, args []string) error {
	return f.call("delete", args...)
}
func (f *fakeExec) Search(_ context.Context, args []string) error {
	return f.call("search", args...)
}
func (f *fakeExec) Filter(_ context.Context, args []string) error {
	return f.call("filter", args...)
}
func (f *fakeExec) Export(_ context.Context, args []string) error {
	return f.call("export", args...)
}
func (f *fakeExec) Board(context.Context) error { return f.call("board") }

// capturePrint swaps printlnFn for the duration of the test.
func capturePrint(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func reader(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	capturePrint(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, reader(
		"help",
		"login",
		"list",
		"page 2",
		"add",
		"edit t1",
		"done t1",
		"delete t1",
		"search buy milk",
		"filter true",
		"export out.json",
		"board",
		"logout",
		"exit",
	))

	assert.Equal(t, []string{
		"login", "list", "page 2", "add", "edit t1", "done t1", "delete t1",
		"search buy milk", "filter true", "export out.json", "board", "logout",
	}, exec.calls)
}

func TestRunREPL_TaskCommandsNeedLogin(t *testing.T) {
	out := capturePrint(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, reader("list", "add", "quit"))

	assert.Empty(t, exec.calls)
	assert.Contains(t, strings.Join(*out, ""), msgLoginFirst)
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	out := capturePrint(t)

	runREPL(context.Background(), &fakeExec{}, func() string { return "" }, reader("help", "exit"))
	assert.Contains(t, strings.Join(*out, ""), helpLoggedOut)

	*out = nil
	runREPL(context.Background(), &fakeExec{loggedIn: true}, func() string { return "" }, reader("help", "exit"))
	assert.Contains(t, strings.Join(*out, ""), "export [file]")
}

func TestRunREPL_PrintsHandlerErrorsAndContinues(t *testing.T) {
	out := capturePrint(t)

	exec := &fakeExec{loggedIn: true, failWith: errors.New("boom")}
	runREPL(context.Background(), exec, func() string { return "" }, reader("list", "add", "exit"))

	require.Len(t, exec.calls, 2)
	assert.Contains(t, strings.Join(*out, ""), "Error: boom")
}

func TestRunREPL_UnknownAndBlank(t *testing.T) {
	out := capturePrint(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, reader("", "   ", "foobar", "quit"))

	assert.Empty(t, exec.calls)
	assert.Contains(t, strings.Join(*out, ""), "Unknown command: foobar")
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	capturePrint(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, reader("list"))

	assert.Equal(t, []string{"list"}, exec.calls)
}

func TestRunREPL_ShowsStatusInPrompt(t *testing.T) {
	out := capturePrint(t)

	runREPL(context.Background(), &fakeExec{}, func() string { return "(a@b.c) " }, reader("exit"))
	require.NotEmpty(t, *out)
	assert.Equal(t, "gt (a@b.c) > \n", (*out)[0])
}
