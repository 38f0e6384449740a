package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"

	"newsharvest"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	results, err := deps.Search.Search(deps.Ctx, c.Query, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsharvest.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results.")
		return nil
	}

	switch c.Format {
	case "csv":
		return writeCSV(deps, results)
	default:
		return writeJSON(deps, results)
	}
}

func writeJSON(deps *Dependencies, results []newsharvest.SearchResult) error {
	enc := json.NewEncoder(deps.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func writeCSV(deps *Dependencies, results []newsharvest.SearchResult) error {
	w := csv.NewWriter(deps.Stdout)
	if err := w.Write([]string{"title", "description", "url", "source", "published_at"}); err != nil {
		return err
	}
	for _, r := range results {
		if err := w.Write([]string{r.Title, r.Description, r.URL, r.Source, r.PublishedAt}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
