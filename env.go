package polysolve

// Env is an environment of variables for evaluating expressions. Variable
// names are the uppercase letters A through Z. It is not safe to use an Env
// concurrently.
type Env struct {
	vars [26]Value
	set  [26]bool
	prec uint
}

// EnvOption is an option used when creating an environment.
type EnvOption interface {
	envOption()
}

type (
	varopt struct {
		name byte
		val  Value
	}
	varsopt map[byte]Value
	precopt uint
)

func (varopt) envOption()  {}
func (varsopt) envOption() {}
func (precopt) envOption() {}

// SetVar sets the value of a variable in the environment.
func SetVar(name byte, val Value) EnvOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the environment.
func SetVars(vars map[byte]Value) EnvOption {
	return varsopt(vars)
}

// Prec sets the precision in bits of real powers with fractional exponents.
func Prec(prec uint) EnvOption {
	return precopt(prec)
}

// NewEnv creates a new environment. If no precision is given, the default is
// 64.
func NewEnv(opts ...EnvOption) *Env {
	env := Env{prec: 64}
	return env.Clone(opts...)
}

// IsVarName reports whether c names a variable.
func IsVarName(c byte) bool {
	return 'A' <= c && c <= 'Z'
}

// Set sets the value of a variable. Returns env for chaining. Panics if name
// is not an uppercase letter.
func (env *Env) Set(name byte, val Value) *Env {
	if !IsVarName(name) {
		panic("polysolve: invalid variable name " + string(rune(name)))
	}
	env.vars[name-'A'] = val
	env.set[name-'A'] = true
	return env
}

// Lookup returns the value of a variable and whether it has been set.
func (env *Env) Lookup(name byte) (Value, bool) {
	if !IsVarName(name) || !env.set[name-'A'] {
		return Value{}, false
	}
	return env.vars[name-'A'], true
}

// Names returns the names of all set variables in order.
func (env *Env) Names() []byte {
	var r []byte
	for i, ok := range env.set {
		if ok {
			r = append(r, 'A'+byte(i))
		}
	}
	return r
}

// Prec returns the precision of real powers in the environment.
func (env *Env) Prec() uint {
	return env.prec
}

// Clone creates a copy of an environment and applies options to it. Changes
// to either environment do not affect the other.
func (env *Env) Clone(opts ...EnvOption) *Env {
	n := *env
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			n.Set(opt.name, opt.val)
		case varsopt:
			for k, v := range opt {
				n.Set(k, v)
			}
		case precopt:
			n.prec = uint(opt)
		default:
			panic("polysolve: unknown option type")
		}
	}
	return &n
}
