package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) rec(name string, args ...string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args...)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Catalog(ctx context.Context) error { return f.rec("catalog") }
func (f *fakeExec) Add(ctx context.Context, id string) error { return f.rec("add", id) }
func (f *fakeExec) Remove(ctx context.Context, s string) error { return f.rec("rm", s) }
func (f *fakeExec) Show(ctx context.Context) error { return f.rec("show") }
func (f *fakeExec) Clear(ctx context.Context) error { return f.rec("clear") }
func (f *fakeExec) Order(ctx context.Context) error { return f.rec("order") }
func (f *fakeExec) CloseOrder(ctx context.Context) error { return f.rec("close") }
func (f *fakeExec) Feed(ctx context.Context) error { return f.rec("feed") }
func (f *fakeExec) Info(ctx context.Context, n string) error { return f.rec("info", n) }
func (f *fakeExec) Profile(ctx context.Context) error { return f.rec("profile") }
func (f *fakeExec) Register(ctx context.Context) error { return f.rec("register") }
func (f *fakeExec) Whoami(ctx context.Context) error { return f.rec("whoami") }
func (f *fakeExec) Update(ctx context.Context) error { return f.rec("update") }
func (f *fakeExec) Forgot(ctx context.Context) error { return f.rec("forgot") }
func (f *fakeExec) ResetPassword(ctx context.Context) error { return f.rec("reset") }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.rec("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.rec("logout")
}
func (f *fakeExec) Move(ctx context.Context, slot string, up bool) error {
	if up {
		return f.rec("up", slot)
	}
	return f.rec("down", slot)
}

func silence(t *testing.T) *[]string {
	t.Helper()
	var printed []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		var parts []string
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		printed = append(printed, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &printed
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	silence(t)

	input := strings.Join([]string{
		"",
		"catalog",
		"add bun-1",
		"up 2",
		"down 0",
		"rm 1",
		"show",
		"login",
		"order",
		"close",
		"info 12345",
		"profile",
		"logout",
		"exit",
		"feed",
	}, "\n")

	f := &fakeExec{}
	runREPL(context.Background(), f, func() string { return "" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{"catalog", "add", "up", "down", "rm", "show", "login", "order", "close", "info", "profile", "logout"}, f.calls)
	assert.Equal(t, []string{"bun-1", "2", "0", "1", "12345"}, f.args)
}

func TestRunREPL_MissingArgumentPrintsUsage(t *testing.T) {
	printed := silence(t)

	f := &fakeExec{}
	runREPL(context.Background(), f, func() string { return "" }, bufio.NewReader(strings.NewReader("add\nrm\nnope\n")))

	assert.Empty(t, f.calls)
	assert.Contains(t, *printed, "Usage: add <ingredient id>")
	assert.Contains(t, *printed, "Usage: rm <slot>")
	assert.Contains(t, *printed, "Unknown command: nope")
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	printed := silence(t)

	f := &fakeExec{}
	runREPL(context.Background(), f, func() string { return "" }, bufio.NewReader(strings.NewReader("help\nlogin\nhelp\n")))

	var helps []string
	for _, p := range *printed {
		if strings.HasPrefix(p, "Available commands") {
			helps = append(helps, p)
		}
	}
	if assert.Len(t, helps, 2) {
		assert.Contains(t, helps[0], "register")
		assert.Contains(t, helps[1], "logout")
	}
}

// promptingExec answers login by reading from the same reader the loop uses.
type promptingExec struct {
	fakeExec
	reader *bufio.Reader
	email  string
}

func (p *promptingExec) Login(ctx context.Context) error {
	v, err := GetSimpleText(p.reader, "Email", io.Discard)
	p.email = v
	if err != nil {
		return err
	}
	return p.fakeExec.Login(ctx)
}

func TestRunREPL_PromptsReadFollowingLines(t *testing.T) {
	silence(t)
	reader := bufio.NewReader(strings.NewReader("login\nneo@matrix.io\nwhoami"))
	f := &promptingExec{reader: reader}

	runREPL(context.Background(), f, func() string { return "" }, reader)

	assert.Equal(t, "neo@matrix.io", f.email)
	assert.Equal(t, []string{"login", "whoami"}, f.calls)
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	silence(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := &fakeExec{}
	runREPL(ctx, f, func() string { return "" }, bufio.NewReader(strings.NewReader("catalog\n")))
	assert.Empty(t, f.calls)
}
