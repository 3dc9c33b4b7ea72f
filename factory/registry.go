package factory

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownClass is returned when no constructor is registered for a class
// identifier.
var ErrUnknownClass = errors.New("unknown class")

// ErrEmptyClass is returned when an empty class identifier is requested.
var ErrEmptyClass = errors.New("class identifier must not be empty")

// Constructor builds a new instance for a registered class identifier.
type Constructor func() (any, error)

// Registry maps class identifiers to constructors. It is safe for concurrent
// use. The latest registration for an identifier wins.
type Registry struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{constructors: make(map[string]Constructor)}
}

// Register adds a constructor for className. Blank names and nil constructors
// are ignored.
func (r *Registry) Register(className string, constructor Constructor) {
	if r == nil || constructor == nil {
		return
	}

	trimmed := strings.TrimSpace(className)
	if trimmed == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.constructors == nil {
		r.constructors = make(map[string]Constructor)
	}

	r.constructors[trimmed] = constructor
}

// Create builds a new instance of className.
func (r *Registry) Create(className string) (any, error) {
	trimmed := strings.TrimSpace(className)
	if trimmed == "" {
		return nil, ErrEmptyClass
	}

	constructor, ok := r.lookup(trimmed)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownClass, trimmed)
	}

	instance, err := constructor()
	if err != nil {
		return nil, fmt.Errorf("creating %q: %w", trimmed, err)
	}

	return instance, nil
}

// Has reports whether a constructor is registered for className.
func (r *Registry) Has(className string) bool {
	_, ok := r.lookup(strings.TrimSpace(className))

	return ok
}

// Names returns the registered class identifiers in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	names := make([]string, 0, len(r.constructors))

	for name := range r.constructors {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)

	return names
}

func (r *Registry) lookup(className string) (Constructor, bool) {
	if r == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	constructor, ok := r.constructors[className]

	return constructor, ok
}
