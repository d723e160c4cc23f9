// Package registry implements the Vocab Registry of spec §4.4: a
// process-wide, lazily initialized collection of named vocabularies with a
// designated default, frozen against further registration after its first
// build.
//
// The lazy singleton guards expensive one-time setup with sync.Once; the
// three built-in vocabularies build concurrently via errgroup, since
// constructing each approximate vocabulary is independent CPU-bound work.
package registry

import (
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/tokviz/tokviz/internal/vocab"
)

// DefaultVocabID is returned by Get when a requested id is absent.
const DefaultVocabID = "cl100k_base"

// Info is the metadata spec §4.4's info() operation surfaces for UI display.
type Info struct {
	ID          string
	Name        string
	Description string
	VocabSize   int
}

// Registry holds named vocabularies. It is safe for concurrent use by
// multiple readers once frozen; registration itself is single-threaded
// construction-time-only, per spec §4.4's lifecycle note.
type Registry struct {
	mu     sync.RWMutex
	vocabs map[string]*vocab.Vocabulary
	order  []string
	frozen bool
}

// New returns an empty, unfrozen registry. Hosts that want an isolated set
// of vocabularies (tests, an offline CLI invocation) can build one directly
// instead of going through the frozen process-wide Global.
func New() *Registry {
	return &Registry{vocabs: make(map[string]*vocab.Vocabulary)}
}

var (
	globalOnce sync.Once
	globalReg  *Registry
	globalErr  error
)

// Global returns the process-wide registry, building it on first call with
// the three built-in approximate vocabularies. Subsequent calls return the
// same frozen instance and the same error, if any.
func Global() (*Registry, error) {
	globalOnce.Do(func() {
		globalReg, globalErr = buildDefault()
	})
	return globalReg, globalErr
}

func buildDefault() (*Registry, error) {
	r := New()

	var cl100k, o200k, p50k *vocab.Vocabulary
	var g errgroup.Group
	g.Go(func() error {
		v, err := vocab.BuildCL100kApprox()
		cl100k = v
		return err
	})
	g.Go(func() error {
		v, err := vocab.BuildO200kApprox()
		o200k = v
		return err
	})
	g.Go(func() error {
		v, err := vocab.BuildP50kApprox()
		p50k = v
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("registry: building built-in vocabularies: %w", err)
	}

	// Registered in a fixed order so Available() is deterministic regardless
	// of goroutine completion order above.
	for _, v := range []*vocab.Vocabulary{p50k, cl100k, o200k} {
		if err := r.Register(v.ID(), v); err != nil {
			return nil, err
		}
	}

	r.Freeze()
	return r, nil
}

// Register installs a vocabulary under id. Only permitted before Freeze;
// the global instance is frozen immediately after its built-ins are
// installed, so hosts must use a private Registry (New) to add more.
func (r *Registry) Register(id string, v *vocab.Vocabulary) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return fmt.Errorf("registry: cannot register %q: registry is frozen", id)
	}
	if _, exists := r.vocabs[id]; exists {
		return fmt.Errorf("registry: duplicate vocab id %q", id)
	}
	r.vocabs[id] = v
	r.order = append(r.order, id)
	return nil
}

// Freeze stops further registration. Idempotent.
func (r *Registry) Freeze() {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
}

// Get returns the named vocabulary, falling back to DefaultVocabID if id is
// absent (spec §7, "Unknown vocab id... recovered locally by falling back
// to the default vocabulary"). It panics if even the default is missing,
// since that means the registry was never built correctly — a malformed
// registry is a fatal startup condition per spec §7, not a recoverable one.
func (r *Registry) Get(id string) *vocab.Vocabulary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if v, ok := r.vocabs[id]; ok {
		return v
	}
	if v, ok := r.vocabs[DefaultVocabID]; ok {
		return v
	}
	panic(fmt.Sprintf("registry: malformed: neither %q nor default %q is registered", id, DefaultVocabID))
}

// Available lists registered ids in registration order.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// VocabInfo returns display metadata for id, or ok=false if unregistered.
func (r *Registry) VocabInfo(id string) (Info, bool) {
	r.mu.RLock()
	v, ok := r.vocabs[id]
	r.mu.RUnlock()
	if !ok {
		return Info{}, false
	}

	desc := vocab.BuiltinDescriptions[id]
	name := desc.Name
	if name == "" {
		name = id
	}
	return Info{ID: id, Name: name, Description: desc.Description, VocabSize: v.VocabSize()}, true
}
