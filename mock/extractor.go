package mock

import "newsharvest"

var _ newsharvest.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of newsharvest.Extractor.
type Extractor struct {
	ExtractFn func(html string, source string) (*newsharvest.ExtractResult, error)
}

func (e *Extractor) Extract(html string, source string) (*newsharvest.ExtractResult, error) {
	return e.ExtractFn(html, source)
}

var _ newsharvest.ProfileRegistry = (*ProfileRegistry)(nil)

// ProfileRegistry is a mock implementation of newsharvest.ProfileRegistry.
type ProfileRegistry struct {
	ProfileForFn func(source string) newsharvest.Profile
	RegisterFn   func(profile newsharvest.Profile)
	SourcesFn    func() []string
}

func (r *ProfileRegistry) ProfileFor(source string) newsharvest.Profile {
	return r.ProfileForFn(source)
}

func (r *ProfileRegistry) Register(profile newsharvest.Profile) {
	r.RegisterFn(profile)
}

func (r *ProfileRegistry) Sources() []string {
	return r.SourcesFn()
}
