// Package yaml loads selector profiles from YAML files.
package yaml

import (
	"os"

	"newsharvest"

	"gopkg.in/yaml.v3"
)

// LoadProfiles reads selector profiles from a YAML file. The file holds
// a list of profiles:
//
//	- source: LiveMint
//	  selectors:
//	    - div.mainArea
//	    - div.contentSec
//
// Each profile is validated before it is returned.
func LoadProfiles(path string) ([]newsharvest.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newsharvest.Errorf(newsharvest.ENOTFOUND, "profile file %s: %v", path, err)
	}

	var profiles []newsharvest.Profile
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, newsharvest.Errorf(newsharvest.EINVALID, "profile file %s: %v", path, err)
	}

	seen := make(map[string]bool, len(profiles))
	for i := range profiles {
		if err := profiles[i].Validate(); err != nil {
			return nil, err
		}
		// Later registrations silently replace earlier ones, so two
		// entries for one source would make the file order decide which
		// selectors win.
		if seen[profiles[i].Source] {
			return nil, newsharvest.Errorf(newsharvest.ECONFLICT, "profile file %s: duplicate profile for source %q", path, profiles[i].Source)
		}
		seen[profiles[i].Source] = true
	}

	return profiles, nil
}

// RegisterProfiles loads profiles from path and registers them,
// replacing any builtin profile for the same source.
func RegisterProfiles(registry newsharvest.ProfileRegistry, path string) error {
	profiles, err := LoadProfiles(path)
	if err != nil {
		return err
	}
	for _, p := range profiles {
		registry.Register(p)
	}
	return nil
}
