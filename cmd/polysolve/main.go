// Command polysolve evaluates expressions over complex polynomials and
// finds their roots.
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/polysolve"
	"github.com/zephyrtronium/polysolve/internal/store"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// app is the state shared by commands after configuration.
type app struct {
	cfg   config
	log   *logger
	store store.Store
}

func newRootCmd() *cobra.Command {
	a := new(app)
	root := &cobra.Command{
		Use:   "polysolve [statement]",
		Short: "Evaluate polynomial expressions and solve them",
		Long: `polysolve evaluates statements over complex numbers and polynomials of degree
up to four in one lowercase indeterminate. A statement is an expression,
"let V = expr" to bind an uppercase variable, or "solve expr" to find the
roots of a polynomial. With no statement and no file, polysolve reads
statements interactively.`,
		Args:               cobra.MaximumNArgs(1),
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
		RunE:               a.run,
	}
	root.Version = version + " (commit=" + commit + ", built=" + date + ")"
	root.SetVersionTemplate("polysolve version {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.String("config", "", "YAML config file (env POLYSOLVE_CONFIG)")
	pf.String("db", "", "SQLite database for let bindings (default in-memory, env POLYSOLVE_DB)")
	pf.String("log-level", "", "log level: debug, info, warn, or error (env POLYSOLVE_LOG_LEVEL)")
	pf.String("log-format", "", "log format: auto, color, or text (env POLYSOLVE_LOG_FORMAT)")
	pf.Uint("precision", 0, "bits of precision for real powers (default 64)")
	root.Flags().StringP("file", "f", "", "execute each line of a file")

	root.AddCommand(newQuadraticCmd(), newServeCmd(a), newUnsetCmd(a))
	return root
}

func newQuadraticCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quadratic A B C",
		Short: "Solve A*x^2 + B*x + C = 0 for real coefficients",
		Args:  cobra.ExactArgs(3),

		// Coefficients may be negative.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var k [3]float64
			for i, arg := range args {
				x, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("coefficient %d: %w", i+1, err)
				}
				k[i] = x
			}
			p := polysolve.NewPoly('x', complex(k[2], 0), complex(k[1], 0), complex(k[0], 0))
			fmt.Fprintf(cmd.OutOrStdout(), "%v = 0\n", p)
			fmt.Fprintln(cmd.OutOrStdout(), polysolve.SolveQuadratic(k[0], k[1], k[2]))
			return nil
		},
	}
}

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the evaluate and solve HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := a.cfg.Serve.Addr
			if v, _ := cmd.Flags().GetString("addr"); v != "" {
				addr = v
			}
			srv := newServer(a.log, a.cfg.envOptions()...)
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigCh)
			done := make(chan struct{})
			defer close(done)
			go shutdownOn(sigCh, done, srv.Shutdown, a.log)
			a.log.Infof("polysolve listening on %s", addr)
			return srv.Listen(addr)
		},
	}
	cmd.Flags().String("addr", "", "listen address (default :8080, env POLYSOLVE_ADDR)")
	return cmd
}

// shutdownOn calls shutdown when a signal arrives. It returns without
// shutting down once done is closed.
func shutdownOn(sig <-chan os.Signal, done <-chan struct{}, shutdown func() error, lg *logger) {
	select {
	case <-sig:
	case <-done:
		return
	}
	lg.Infof("shutting down")
	if err := shutdown(); err != nil {
		lg.Errorf("error during shutdown: %v", err)
	}
}

func newUnsetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unset NAME...",
		Short: "Remove stored let bindings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession(polysolve.NewEnv(a.cfg.envOptions()...), a.store, a.log, cmd.OutOrStdout())
			for _, name := range args {
				ok, err := s.unset(name)
				if err != nil {
					return err
				}
				if ok {
					fmt.Fprintf(s.out, "%s unset\n", name)
				} else {
					fmt.Fprintf(s.out, "%s is not bound\n", name)
				}
			}
			return nil
		},
	}
}

// setup loads configuration and opens the binding store. Flags take
// precedence over the environment, which takes precedence over the file.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(orDefault(path, os.Getenv("POLYSOLVE_CONFIG")))
	if err != nil {
		return err
	}
	cfg.applyEnv(os.Getenv)
	if v, _ := cmd.Flags().GetString("db"); v != "" {
		cfg.DB = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		cfg.Log.Format = v
	}
	if v, _ := cmd.Flags().GetUint("precision"); v != 0 {
		cfg.Precision = v
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	lvl, _ := parseLevel(cfg.Log.Level)
	lg, err := newLogger(cmd.ErrOrStderr(), lvl, cfg.Log.Format)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, lg
	a.store, err = openStore(cfg.DB)
	if err != nil {
		return err
	}
	lg.Debugf("config: %+v", cfg)
	return nil
}

func (a *app) teardown(cmd *cobra.Command, args []string) error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

func openStore(path string) (store.Store, error) {
	if path == "" {
		return store.NewMemory(), nil
	}
	s, err := store.NewSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return s, nil
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	env := polysolve.NewEnv(a.cfg.envOptions()...)
	s := newSession(env, a.store, a.log, cmd.OutOrStdout())
	if err := s.load(); err != nil {
		return err
	}
	file, _ := cmd.Flags().GetString("file")
	switch {
	case len(args) == 1:
		return s.exec(args[0])
	case file != "":
		lines, err := readLines(file)
		if err != nil {
			return err
		}
		if n := s.run(lines); n > 0 {
			return fmt.Errorf("%d of %d lines failed", n, len(lines))
		}
		return nil
	default:
		return repl(s, a.cfg.Prompt)
	}
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
