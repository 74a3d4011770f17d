package main

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zephyrtronium/polysolve"
)

// server is the HTTP API. It holds no bindings; each request evaluates in a
// fresh environment.
type server struct {
	app  *fiber.App
	opts []polysolve.EnvOption
	log  *logger
}

type evalRequest struct {
	Source string            `json:"source"`
	Vars   map[string]string `json:"vars"`
}

type evalResponse struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

type solveResponse struct {
	Polynomial string   `json:"polynomial"`
	Solved     bool     `json:"solved"`
	Infinite   bool     `json:"infinite"`
	Count      int      `json:"count"`
	Roots      []string `json:"roots"`
}

func newServer(lg *logger, opts ...polysolve.EnvOption) *server {
	srv := &server{opts: opts, log: lg}
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
	})
	app.Post("/v1/eval", srv.eval)
	app.Post("/v1/solve", srv.solve)
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	srv.app = app
	return srv
}

func (s *server) Listen(addr string) error {
	return s.app.Listen(addr)
}

func (s *server) Shutdown() error {
	return s.app.Shutdown()
}

// evaluate parses the request and evaluates its source with its variables.
// On failure it returns the HTTP status to respond with.
func (s *server) evaluate(c *fiber.Ctx) (polysolve.Value, int, error) {
	var req evalRequest
	if err := c.BodyParser(&req); err != nil {
		return polysolve.Value{}, fiber.StatusBadRequest, fmt.Errorf("invalid request body: %w", err)
	}
	env := polysolve.NewEnv(s.opts...)
	names := make([]string, 0, len(req.Vars))
	for name := range req.Vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if len(name) != 1 || !polysolve.IsVarName(name[0]) {
			return polysolve.Value{}, fiber.StatusBadRequest, fmt.Errorf("invalid variable name %q", name)
		}
		v, err := evalSource(env, req.Vars[name])
		if err != nil {
			return polysolve.Value{}, errStatus(err), fmt.Errorf("variable %s: %w", name, err)
		}
		env.Set(name[0], v)
	}
	v, err := evalSource(env, req.Source)
	if err != nil {
		return polysolve.Value{}, errStatus(err), err
	}
	return v, fiber.StatusOK, nil
}

func evalSource(env *polysolve.Env, src string) (polysolve.Value, error) {
	e, err := polysolve.Parse(src)
	if err != nil {
		return polysolve.Value{}, err
	}
	return env.Eval(e)
}

func (s *server) eval(c *fiber.Ctx) error {
	v, status, err := s.evaluate(c)
	if err != nil {
		return s.fail(c, status, err)
	}
	return c.JSON(evalResponse{Kind: v.Kind().String(), Value: v.String()})
}

func (s *server) solve(c *fiber.Ctx) error {
	v, status, err := s.evaluate(c)
	if err != nil {
		return s.fail(c, status, err)
	}
	resp := solveResponse{Polynomial: v.String(), Roots: []string{}}
	sols, ok := polysolve.SolveValue(v)
	if !ok {
		s.log.Debugf("could not solve %v", v)
		return c.JSON(resp)
	}
	resp.Solved = true
	resp.Infinite = sols.Infinite
	resp.Count = sols.Len()
	for _, x := range sols.Roots {
		resp.Roots = append(resp.Roots, polysolve.FormatComplex(x))
	}
	return c.JSON(resp)
}

// fail writes an error response. Input errors carry their position.
func (s *server) fail(c *fiber.Ctx, status int, err error) error {
	s.log.Debugf("%s %s: %d %v", c.Method(), c.Path(), status, err)
	body := fiber.Map{"message": err.Error()}
	var ie polysolve.InputError
	if errors.As(err, &ie) {
		body["pos"] = ie.Pos()
	}
	return c.Status(status).JSON(fiber.Map{"error": body})
}

func errStatus(err error) int {
	var ie polysolve.InputError
	if errors.As(err, &ie) {
		return fiber.StatusBadRequest
	}
	return fiber.StatusUnprocessableEntity
}
