package registry

import (
	"fmt"
	"sort"

	"github.com/opcvmsim/fund-simulator/internal/domain"
)

// MemoryRegistry is an immutable in-memory Registry backed by a map. It is
// the implementation behind both the built-in fund table and the YAML file
// loader, and the one tests use with synthetic profiles.
type MemoryRegistry struct {
	profiles map[string]domain.InstrumentProfile
}

// NewMemoryRegistry builds a registry from the given profiles. Profiles are
// keyed by name; a later duplicate replaces an earlier one.
func NewMemoryRegistry(profiles ...domain.InstrumentProfile) *MemoryRegistry {
	m := make(map[string]domain.InstrumentProfile, len(profiles))
	for _, p := range profiles {
		m[p.Name] = p
	}
	return &MemoryRegistry{profiles: m}
}

// Lookup implements Registry.
func (r *MemoryRegistry) Lookup(name string) (domain.InstrumentProfile, error) {
	p, ok := r.profiles[name]
	if !ok {
		return domain.InstrumentProfile{}, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return p, nil
}

// List implements Registry.
func (r *MemoryRegistry) List() []domain.InstrumentProfile {
	out := make([]domain.InstrumentProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
