package newsharvest

// GenericSource names the profile used when no source-specific profile is
// registered. Its selectors are the broadly-applicable structural ones that
// open the cascade's generic tier.
const GenericSource = "Generic"

// Profile is an ordered sequence of structural selector expressions known
// to bound the main article body for a source. Selectors are ordered by
// priority: most specific and site-proven first, most generic last.
type Profile struct {
	Source    string   `yaml:"source"`
	Selectors []string `yaml:"selectors"`
}

// Validate returns an error if the profile contains invalid fields.
func (p *Profile) Validate() error {
	if p.Source == "" {
		return Errorf(EINVALID, "profile source required")
	}
	if len(p.Selectors) == 0 {
		return Errorf(EINVALID, "profile %q has no selectors", p.Source)
	}
	return nil
}

// ProfileRegistry resolves source names to selector profiles.
// Lookup is total: every source name resolves to a profile, falling back
// to the generic profile when no specific one is registered.
type ProfileRegistry interface {
	// ProfileFor returns the profile registered for the source, or the
	// generic profile when none is.
	ProfileFor(source string) Profile

	// Register adds or replaces a profile for its source.
	Register(profile Profile)

	// Sources returns the names of all registered source profiles.
	Sources() []string
}
