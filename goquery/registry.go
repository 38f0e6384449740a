// Package goquery implements the selector-driven extraction cascade using
// CSS selectors evaluated with github.com/PuerkitoBio/goquery.
package goquery

import (
	"sort"

	"newsharvest"
)

var _ newsharvest.ProfileRegistry = (*Registry)(nil)

// Registry maps source names to selector profiles with a generic fallback.
// Registration is static configuration performed during setup; lookups are
// read-only afterwards and safe for concurrent use.
type Registry struct {
	fallback newsharvest.Profile
	profiles map[string]newsharvest.Profile
}

// NewRegistry creates an empty Registry with the given fallback profile.
// The fallback is returned whenever no source-specific profile exists,
// making profile lookup total.
func NewRegistry(fallback newsharvest.Profile) *Registry {
	return &Registry{
		fallback: fallback,
		profiles: make(map[string]newsharvest.Profile),
	}
}

// DefaultRegistry creates a Registry seeded with the built-in profiles for
// all known sources and the generic profile as fallback.
func DefaultRegistry() *Registry {
	r := NewRegistry(GenericProfile())
	for _, p := range BuiltinProfiles() {
		r.Register(p)
	}
	return r
}

// ProfileFor returns the profile registered for the source, or the
// fallback profile when none is registered.
func (r *Registry) ProfileFor(source string) newsharvest.Profile {
	if p, ok := r.profiles[source]; ok {
		return p
	}
	return r.fallback
}

// Register adds a profile for its source.
// If a profile is already registered for the source, it is replaced.
func (r *Registry) Register(profile newsharvest.Profile) {
	r.profiles[profile.Source] = profile
}

// Sources returns the names of all registered source profiles, sorted.
func (r *Registry) Sources() []string {
	sources := make([]string, 0, len(r.profiles))
	for s := range r.profiles {
		sources = append(sources, s)
	}
	sort.Strings(sources)
	return sources
}
