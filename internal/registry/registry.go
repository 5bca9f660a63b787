// Package registry holds the ordered set of benchmark operations.
//
// Each kernel variant (scalar loop, SSE, AVX, aligned, streaming) is described
// by an Entry. A Registry keeps entries in declaration order, which is also the
// column order of the benchmark output. Registries are built once at startup
// and only read afterwards.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Kind identifies the element-wise operation a registry benchmarks.
type Kind int

const (
	// KindCopy is dst[i] = src[i].
	KindCopy Kind = iota

	// KindMul is dst[i] = a[i] * b[i].
	KindMul
)

// String returns the subcommand name of the kind.
func (k Kind) String() string {
	switch k {
	case KindCopy:
		return "copy"
	case KindMul:
		return "mult"
	default:
		return "unknown"
	}
}

// Sources returns the number of input buffers the kind reads.
func (k Kind) Sources() int {
	if k == KindMul {
		return 2
	}
	return 1
}

// CopyFunc copies len(dst) elements from src into dst.
type CopyFunc func(dst, src []float32)

// MulFunc stores a[i] * b[i] into dst[i] for every i < len(dst).
type MulFunc func(dst, a, b []float32)

// Entry describes one benchmarked strategy.
type Entry struct {
	// Name is the column label (e.g. "Aligned SSE Stream").
	Name string

	// Kind selects which of Copy or Mul is set.
	Kind Kind

	// Width is the number of float32 lanes moved per instruction (1 for scalar).
	Width int

	// Align is the byte alignment the start pointers must satisfy, 0 if none.
	Align int

	// Wide marks strategies that are only run when wide vectors are enabled.
	Wide bool

	// Streaming marks non-temporal (cache-bypassing) stores.
	Streaming bool

	// SIMDLevel is the instruction set the implementation needs.
	SIMDLevel cpu.SIMDLevel

	// Noop marks the placeholder that stands in for inapplicable strategies.
	Noop bool

	Copy CopyFunc
	Mul  MulFunc
}

// Placeholder returns the no-op entry substituted for an inapplicable strategy.
func Placeholder(name string, kind Kind) Entry {
	return Entry{Name: name, Kind: kind, Width: 1, Noop: true}
}

// Applicable reports whether e may run at the given byte offset.
// Placeholders are never applicable.
func (e Entry) Applicable(offset int) bool {
	if e.Noop {
		return false
	}
	return e.Align == 0 || offset%e.Align == 0
}

// Supported reports whether the CPU described by features can execute e.
func (e Entry) Supported(features cpu.Features) bool {
	return cpu.Supports(features, e.SIMDLevel)
}

// Errors returned by Register.
var (
	ErrDuplicateName = errors.New("registry: duplicate entry name")
	ErrKindMismatch  = errors.New("registry: entry kind does not match registry")
	ErrMissingFunc   = errors.New("registry: entry has no implementation")
)

// Registry is an ordered collection of entries of a single Kind.
type Registry struct {
	mu      sync.RWMutex
	kind    Kind
	entries []Entry
	index   map[string]int
}

// New returns an empty registry for kind.
func New(kind Kind) *Registry {
	return &Registry{kind: kind, index: make(map[string]int)}
}

// Kind returns the operation kind of the registry.
func (r *Registry) Kind() Kind {
	return r.kind
}

// Register appends entry. Names must be unique and the implementation
// matching the registry kind must be set.
func (r *Registry) Register(entry Entry) error {
	if entry.Kind != r.kind {
		return fmt.Errorf("%w: %s is %s, registry is %s", ErrKindMismatch, entry.Name, entry.Kind, r.kind)
	}
	if !entry.Noop {
		if (r.kind == KindCopy && entry.Copy == nil) || (r.kind == KindMul && entry.Mul == nil) {
			return fmt.Errorf("%w: %s", ErrMissingFunc, entry.Name)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[entry.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateName, entry.Name)
	}
	r.index[entry.Name] = len(r.entries)
	r.entries = append(r.entries, entry)
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(entry Entry) {
	if err := r.Register(entry); err != nil {
		panic(err)
	}
}

// Lookup returns the entry with the given name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[name]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Entries returns a copy of all entries in declaration order.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Names returns the entry names in declaration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
