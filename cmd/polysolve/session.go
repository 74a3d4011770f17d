package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/zephyrtronium/polysolve"
	"github.com/zephyrtronium/polysolve/internal/store"
)

// session executes statements against one environment, persisting let
// bindings to a store.
type session struct {
	env   *polysolve.Env
	store store.Store
	log   *logger
	out   io.Writer
}

func newSession(env *polysolve.Env, st store.Store, lg *logger, out io.Writer) *session {
	return &session{env: env, store: st, log: lg, out: out}
}

// load evaluates every stored binding into the environment. Bindings that
// no longer evaluate are logged and skipped.
func (s *session) load() error {
	all, err := s.store.All()
	if err != nil {
		return fmt.Errorf("loading bindings: %w", err)
	}
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		src := all[name]
		if len(name) != 1 || !polysolve.IsVarName(name[0]) {
			s.log.Warnf("skipping stored binding with invalid name %q", name)
			continue
		}
		v, err := polysolve.EvalString(src, polysolve.Prec(s.env.Prec()))
		if err != nil {
			s.log.Warnf("skipping stored binding %s = %s: %v", name, src, err)
			continue
		}
		s.env.Set(name[0], v)
		s.log.Debugf("loaded %s = %v", name, v)
	}
	return nil
}

// exec executes one statement and writes its result.
func (s *session) exec(line string) error {
	stmt, err := polysolve.ParseStatement(line)
	if err != nil {
		return err
	}
	s.log.Debugf("parsed %v statement %v", stmt.Kind, stmt)
	v, err := s.env.Eval(stmt.Expr)
	if err != nil {
		return err
	}
	switch stmt.Kind {
	case polysolve.StmtLet:
		if err := s.store.Put(string(stmt.Var), v.Source()); err != nil {
			return fmt.Errorf("saving %c: %w", stmt.Var, err)
		}
		s.env.Set(stmt.Var, v)
		fmt.Fprintf(s.out, "%c = %v\n", stmt.Var, v)
	case polysolve.StmtSolve:
		fmt.Fprintf(s.out, "%v = 0\n", v)
		sols, ok := polysolve.SolveValue(v)
		if !ok {
			s.log.Debugf("could not solve %v", v)
			fmt.Fprintln(s.out, "Could not solve")
			return nil
		}
		s.log.Debugf("found %d roots of %v", sols.Len(), v)
		fmt.Fprintln(s.out, sols)
	default:
		fmt.Fprintln(s.out, v)
	}
	return nil
}

// unset removes the stored binding for a variable and reports whether it
// existed.
func (s *session) unset(name string) (bool, error) {
	if len(name) != 1 || !polysolve.IsVarName(name[0]) {
		return false, fmt.Errorf("invalid variable name %q", name)
	}
	_, ok, err := s.store.Get(name)
	if err != nil || !ok {
		return false, err
	}
	if err := s.store.Delete(name); err != nil {
		return false, fmt.Errorf("deleting %s: %w", name, err)
	}
	s.log.Debugf("unset %s", name)
	return true, nil
}

// run executes each line, writing errors to the output rather than
// stopping. Blank lines and lines starting with # are skipped.
func (s *session) run(lines []string) (failed int) {
	for _, line := range lines {
		if skipLine(line) {
			continue
		}
		if err := s.exec(line); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			failed++
		}
	}
	return failed
}
