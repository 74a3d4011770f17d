package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"
)

type level int8

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

var levelNames = [...]string{
	levelDebug: "debug",
	levelInfo:  "info",
	levelWarn:  "warn",
	levelError: "error",
}

var levelColors = [...]string{
	levelDebug: "\x1b[37m",
	levelInfo:  "\x1b[32m",
	levelWarn:  "\x1b[33m",
	levelError: "\x1b[31m",
}

const colorReset = "\x1b[0m"

func (l level) String() string {
	return levelNames[l]
}

func parseLevel(s string) (level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return level(i), nil
		}
	}
	return 0, fmt.Errorf("unknown log level %q (want debug, info, warn, or error)", s)
}

// logger is a leveled logger. A nil *logger discards everything.
type logger struct {
	l     *log.Logger
	min   level
	color bool
}

// newLogger creates a logger writing to w. The format is one of auto, color,
// or text; auto uses color when w is a terminal.
func newLogger(w io.Writer, min level, format string) (*logger, error) {
	var color bool
	switch format {
	case "", "auto":
		f, ok := w.(*os.File)
		color = ok && term.IsTerminal(int(f.Fd()))
	case "color":
		color = true
	case "text":
		color = false
	default:
		return nil, fmt.Errorf("unknown log format %q (want auto, color, or text)", format)
	}
	return &logger{l: log.New(w, "", log.LstdFlags), min: min, color: color}, nil
}

func (lg *logger) logf(lvl level, format string, args ...any) {
	if lg == nil || lvl < lg.min {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if lg.color {
		lg.l.Printf("%s[%s]%s %s", levelColors[lvl], lvl, colorReset, msg)
		return
	}
	lg.l.Printf("[%s] %s", lvl, msg)
}

func (lg *logger) Debugf(format string, args ...any) { lg.logf(levelDebug, format, args...) }
func (lg *logger) Infof(format string, args ...any)  { lg.logf(levelInfo, format, args...) }
func (lg *logger) Warnf(format string, args ...any)  { lg.logf(levelWarn, format, args...) }
func (lg *logger) Errorf(format string, args ...any) { lg.logf(levelError, format, args...) }
