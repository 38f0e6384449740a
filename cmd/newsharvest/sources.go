package main

import (
	"fmt"

	"newsharvest/goquery"
)

// Run executes the sources command.
func (c *SourcesCmd) Run(deps *Dependencies) error {
	registry := deps.Registry
	if registry == nil {
		registry = goquery.DefaultRegistry()
	}

	for _, source := range registry.Sources() {
		profile := registry.ProfileFor(source)
		fmt.Fprintf(deps.Stdout, "%s  (%d selectors)\n", source, len(profile.Selectors))
	}

	return nil
}
