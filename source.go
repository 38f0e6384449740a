package newsharvest

import (
	"net/url"
	"strings"
)

// domainSources maps known news domains to their logical source names.
// The source name selects the selector profile used by the extraction
// cascade and names the persisted per-source collection.
var domainSources = map[string]string{
	"prnewswire.com":               "PR Newswire",
	"economictimes.indiatimes.com": "Economic Times",
	"livemint.com":                 "LiveMint",
	"thehindu.com":                 "The Hindu",
	"zeenews.india.com":            "Zee News",
	"hindustantimes.com":           "Hindustan Times",
	"indiatoday.in":                "India Today",
	"indiatvnews.com":              "India TV News",
	"timesofindia.indiatimes.com":  "Times of India",
	"etnownews.com":                "ET Now",
	"indianexpress.com":            "Indian Express",
	"news18.com":                   "News18",
	"business-standard.com":        "Business Standard",
	"deccanherald.com":             "Deccan Herald",
	"firstpost.com":                "Firstpost",
	"theprint.in":                  "The Print",
	"thewire.in":                   "The Wire",
	"moneycontrol.com":             "Moneycontrol",
	"freepressjournal.in":          "Free Press Journal",
}

// SourceForURL resolves a URL to its logical source name. The host is
// lowercased and stripped of a leading "www." before lookup. Unknown
// domains fall back to the normalized domain with dots replaced by
// underscores, so every URL resolves to a usable source name.
func SourceForURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}

	domain := strings.ToLower(u.Host)
	domain = strings.TrimPrefix(domain, "www.")

	if name, ok := domainSources[domain]; ok {
		return name
	}
	return strings.ReplaceAll(domain, ".", "_")
}
