// Package store persists variable bindings between polysolve sessions.
package store

// Store holds the source text of bound values by variable name.
type Store interface {
	// Get retrieves the source bound to name and whether it exists.
	Get(name string) (src string, ok bool, err error)
	// Put binds src to name, overwriting any previous binding.
	Put(name, src string) error
	// Delete removes the binding for name. It is not an error if there is none.
	Delete(name string) error
	// All returns every binding.
	All() (map[string]string, error)
	// Close releases resources.
	Close() error
}

var (
	_ Store = (*Memory)(nil)
	_ Store = (*SQLite)(nil)
)
