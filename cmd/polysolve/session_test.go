package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/zephyrtronium/polysolve"
	"github.com/zephyrtronium/polysolve/internal/store"
)

func testSession(st store.Store) (*session, *bytes.Buffer) {
	var out bytes.Buffer
	return newSession(polysolve.NewEnv(), st, nil, &out), &out
}

func TestSessionExec(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		want  string
	}{
		{"expr", []string{"1 + 2i"}, "1 + 2i\n"},
		{"poly", []string{"(x + 1)^2"}, "x^2 + 2*x + 1\n"},
		{"let", []string{"let A = x - 1"}, "A = x + -1\n"},
		{"let-use", []string{"let A = x - 1", "A(3)"}, "A = x + -1\n2\n"},
		{"solve", []string{"solve x^2 - 1"}, "x^2 + -1 = 0\n2 solutions\n  - -1\n  - 1\n"},
		{"solve-var", []string{"let P = 2*x - 4", "solve P"}, "P = 2*x + -4\n2*x + -4 = 0\n1 solution\n  - 2\n"},
		{"solve-infinite", []string{"solve x - x"}, "0 = 0\nInfinite solutions\n"},
		{"solve-none", []string{"solve 3"}, "3 = 0\nNo solutions\n"},
		{"solve-unsolved", []string{"solve x^4 + 1"}, "x^4 + 1 = 0\nCould not solve\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, out := testSession(store.NewMemory())
			for _, line := range c.lines {
				if err := s.exec(line); err != nil {
					t.Fatalf("%q: %v", line, err)
				}
			}
			if got := out.String(); got != c.want {
				t.Errorf("want %q, got %q", c.want, got)
			}
		})
	}
}

func TestSessionExecErrors(t *testing.T) {
	s, out := testSession(store.NewMemory())
	var ie polysolve.InputError
	if err := s.exec("1 +"); !errors.As(err, &ie) {
		t.Errorf("syntax error: want InputError, got %v", err)
	}
	var ne *polysolve.NameError
	if err := s.exec("B + 1"); !errors.As(err, &ne) {
		t.Errorf("undefined variable: want NameError, got %v", err)
	}
	if err := s.exec("let A = 1/0"); err == nil {
		t.Error("division by zero succeeded")
	}
	if _, ok := s.env.Lookup('A'); ok {
		t.Error("failed let bound A")
	}
	if out.Len() != 0 {
		t.Errorf("errors wrote output: %q", out)
	}
}

func TestSessionRun(t *testing.T) {
	s, out := testSession(store.NewMemory())
	lines := []string{"# comment", "", "let A = 2", "A +", "   ", "A * x"}
	if n := s.run(lines); n != 1 {
		t.Errorf("want 1 failure, got %d", n)
	}
	got := out.String()
	if !strings.HasPrefix(got, "A = 2\nerror: ") || !strings.HasSuffix(got, "\n2*x\n") {
		t.Errorf("wrong output %q", got)
	}
}

func TestSessionPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.db")
	st, err := store.NewSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	s, _ := testSession(st)
	for _, line := range []string{"let A = (1+2i)*x^2 - 3", "let B = 5", "let C = x - x", "let D = 7 + 0*t"} {
		if err := s.exec(line); err != nil {
			t.Fatalf("%q: %v", line, err)
		}
	}
	st.Close()

	st, err = store.NewSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
	if err := st.Put("a", "1"); err != nil {
		t.Fatal(err)
	}
	if err := st.Put("E", "1 +"); err != nil {
		t.Fatal(err)
	}
	r, _ := testSession(st)
	if err := r.load(); err != nil {
		t.Fatal(err)
	}
	for _, name := range []byte("ABCD") {
		want, _ := s.env.Lookup(name)
		got, ok := r.env.Lookup(name)
		if !ok {
			t.Errorf("%c not loaded", name)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("%c: want %v (%v), got %v (%v)", name, want, want.Kind(), got, got.Kind())
		}
	}
	if _, ok := r.env.Lookup('E'); ok {
		t.Error("invalid binding E was loaded")
	}
}

func TestSkipLine(t *testing.T) {
	cases := map[string]bool{
		"":          true,
		"  \t":      true,
		"# x":       true,
		"  #":       true,
		"x":         false,
		"let A = 1": false,
	}
	for line, want := range cases {
		if got := skipLine(line); got != want {
			t.Errorf("skipLine(%q): want %t, got %t", line, want, got)
		}
	}
}

func TestBasicREPL(t *testing.T) {
	s, out := testSession(store.NewMemory())
	in := strings.NewReader("let A = x\n\nA^2\nbad)\nquit\nA\n")
	if err := basicREPL(s, in, "> "); err != nil {
		t.Fatal(err)
	}
	want := "> A = x\n> > x^2\n> error: "
	if got := out.String(); !strings.HasPrefix(got, want) || !strings.HasSuffix(got, "\n> ") {
		t.Errorf("want output starting with %q and ending at the prompt, got %q", want, got)
	}
}

// failStore is a store whose writes fail.
type failStore struct{ *store.Memory }

func (failStore) Put(name, src string) error { return errors.New("disk full") }

func TestSessionLetSaveFails(t *testing.T) {
	s, out := testSession(failStore{store.NewMemory()})
	if err := s.exec("let A = 2"); err == nil {
		t.Fatal("let succeeded with a failing store")
	}
	if v, ok := s.env.Lookup('A'); ok {
		t.Errorf("unsaved binding A = %v is set", v)
	}
	if out.Len() != 0 {
		t.Errorf("failed let wrote output: %q", out)
	}
}

func TestSessionUnset(t *testing.T) {
	st := store.NewMemory()
	s, _ := testSession(st)
	if err := s.exec("let A = x"); err != nil {
		t.Fatal(err)
	}
	ok, err := s.unset("A")
	if err != nil || !ok {
		t.Fatalf("unset A: want true, got %t, %v", ok, err)
	}
	if _, found, _ := st.Get("A"); found {
		t.Error("A still stored after unset")
	}
	ok, err = s.unset("A")
	if err != nil || ok {
		t.Errorf("second unset of A: want false, got %t, %v", ok, err)
	}
	if _, err := s.unset("a"); err == nil {
		t.Error("unset of invalid name succeeded")
	}
	r, _ := testSession(st)
	if err := r.load(); err != nil {
		t.Fatal(err)
	}
	if _, found := r.env.Lookup('A'); found {
		t.Error("unset binding was reloaded")
	}
}

func TestShutdownOn(t *testing.T) {
	done := make(chan struct{})
	close(done)
	called := false
	shutdownOn(make(chan os.Signal), done, func() error { called = true; return nil }, nil)
	if called {
		t.Error("shut down without a signal")
	}

	sig := make(chan os.Signal, 1)
	sig <- syscall.SIGTERM
	shutdownOn(sig, make(chan struct{}), func() error { called = true; return nil }, nil)
	if !called {
		t.Error("signal did not shut down")
	}
}
