package main

import (
	"fmt"

	"newsharvest"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	articles, err := deps.Store.LoadArticles(deps.Ctx, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsharvest.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintf(deps.Stdout, "No articles saved for %q.\n", c.Source)
		return nil
	}

	for _, a := range articles {
		if c.Full {
			fmt.Fprintf(deps.Stdout, "%s\n%s\n\n", a.URL, a.Content)
		} else {
			fmt.Fprintf(deps.Stdout, "%s  %d chars\n", a.URL, len(a.Content))
		}
	}

	return nil
}
