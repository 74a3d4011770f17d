package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

func skipLine(line string) bool {
	line = strings.TrimSpace(line)
	return line == "" || strings.HasPrefix(line, "#")
}

func isExit(line string) bool {
	switch strings.TrimSpace(line) {
	case "exit", "quit":
		return true
	}
	return false
}

// repl runs the read-eval-print loop on stdin. When stdin is a terminal it
// uses line editing; otherwise it reads plain lines.
func repl(s *session, prompt string) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return basicREPL(s, os.Stdin, prompt)
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		s.log.Warnf("failed to set raw mode: %v", err)
		return basicREPL(s, os.Stdin, prompt)
	}
	defer term.Restore(fd, old)
	rw := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	t := term.NewTerminal(rw, prompt)
	out := s.out
	s.out = t
	defer func() { s.out = out }()
	for {
		line, err := t.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if isExit(line) {
			return nil
		}
		if skipLine(line) {
			continue
		}
		if err := s.exec(line); err != nil {
			fmt.Fprintf(t, "error: %v\n", err)
		}
	}
}

func basicREPL(s *session, in io.Reader, prompt string) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, prompt)
		if !sc.Scan() {
			fmt.Fprintln(s.out)
			return sc.Err()
		}
		line := sc.Text()
		if isExit(line) {
			return nil
		}
		if skipLine(line) {
			continue
		}
		if err := s.exec(line); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}
}
