package polysolve

import "strconv"

// DefaultMaxLength is the default limit on the length of a source, in runes
// after whitespace is removed.
const DefaultMaxLength = 256

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	maxlenopt  int
	leftpowopt struct{}
)

// parsectx holds general data for parsing.
type parsectx struct {
	// names is the set of variable names that have been seen this parse.
	names map[byte]bool
	// maxlen is the maximum compacted source length. Zero means unlimited.
	maxlen int
	// leftpow indicates that ^ folds to the left.
	leftpow bool
}

func newParsectx(opts []ParseOption) parsectx {
	p := parsectx{
		names:  make(map[byte]bool),
		maxlen: DefaultMaxLength,
	}
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	return p
}

// MaxLength sets the maximum length of a source in runes, not counting
// whitespace. Zero removes the limit. Panics if n is negative.
func MaxLength(n int) ParseOption {
	if n < 0 {
		panic("polysolve: negative maximum length " + strconv.Itoa(n))
	}
	return maxlenopt(n)
}

func (o maxlenopt) parseOption(p parsectx) parsectx {
	p.maxlen = int(o)
	return p
}

// LeftAssociativePower makes ^ associate to the left so that 2^3^2 is
// (2^3)^2. By default it associates to the right, giving 2^(3^2).
func LeftAssociativePower() ParseOption {
	return leftpowopt{}
}

func (leftpowopt) parseOption(p parsectx) parsectx {
	p.leftpow = true
	return p
}
