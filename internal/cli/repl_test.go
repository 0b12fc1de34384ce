package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Upload(ctx context.Context) error {
	f.calls = append(f.calls, "upload")
	return nil
}
func (f *fakeExec) Draw(ctx context.Context) error {
	f.calls = append(f.calls, "draw")
	return nil
}
func (f *fakeExec) Reference(ctx context.Context) error {
	f.calls = append(f.calls, "reference")
	return nil
}
func (f *fakeExec) History(ctx context.Context) error {
	f.calls = append(f.calls, "history")
	return nil
}
func (f *fakeExec) Show(ctx context.Context) error {
	f.calls = append(f.calls, "show")
	return nil
}
func (f *fakeExec) Chat(ctx context.Context) error {
	f.calls = append(f.calls, "chat")
	return nil
}
func (f *fakeExec) ClearChat(ctx context.Context) error {
	f.calls = append(f.calls, "clearchat")
	return nil
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"upload",
		"draw",
		"reference",
		"history",
		"h",
		"show",
		"chat",
		"clearchat",
		"foobar",
		"",
		"logout",
		"exit",
	}, "\n"))

	f := &fakeExec{}
	runREPL(context.Background(), f, func() string { return "" }, bufio.NewScanner(input))

	want := []string{"login", "upload", "draw", "reference", "history", "history", "show", "chat", "clearchat", "logout"}
	if len(f.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", f.calls, want)
	}
	for i := range want {
		if f.calls[i] != want[i] {
			t.Fatalf("calls[%d] = %q, want %q", i, f.calls[i], want[i])
		}
	}
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	f := &fakeExec{}
	runREPL(context.Background(), f, func() string { return "" }, bufio.NewScanner(strings.NewReader("")))

	if len(f.calls) != 0 {
		t.Fatalf("expected no calls, got %v", f.calls)
	}
}
