package feed

import "strings"

// CategoryOrder lists the catalog categories in their canonical order.
var CategoryOrder = []string{"security", "tech", "devops"}

// DefaultCategories is substituted when a request resolves to no valid
// categories.
var DefaultCategories = []string{"security", "tech"}

// Catalog is the fixed set of upstream feeds grouped by category.
var Catalog = map[string][]Source{
	"security": {
		{Name: "Krebs on Security", URL: "https://krebsonsecurity.com/feed/", Category: "security", Type: "rss"},
		{Name: "The Hacker News", URL: "https://feeds.feedburner.com/TheHackersNews", Category: "security", Type: "rss"},
		{Name: "Bleeping Computer", URL: "https://www.bleepingcomputer.com/feed/", Category: "security", Type: "rss"},
		{Name: "SANS Internet Storm Center", URL: "https://isc.sans.edu/rssfeed.xml", Category: "security", Type: "rss"},
		{Name: "Dark Reading", URL: "https://www.darkreading.com/rss.xml", Category: "security", Type: "rss"},
	},
	"tech": {
		{Name: "Ars Technica", URL: "https://feeds.arstechnica.com/arstechnica/index", Category: "tech", Type: "rss"},
		{Name: "TechCrunch", URL: "https://techcrunch.com/feed/", Category: "tech", Type: "rss"},
		{Name: "Hacker News", URL: "https://hnrss.org/frontpage", Category: "tech", Type: "rss"},
		{Name: "The Verge", URL: "https://www.theverge.com/rss/index.xml", Category: "tech", Type: "rss"},
	},
	"devops": {
		{Name: "Kubernetes Blog", URL: "https://kubernetes.io/feed.xml", Category: "devops", Type: "rss"},
		{Name: "Docker Blog", URL: "https://www.docker.com/blog/feed/", Category: "devops", Type: "rss"},
		{Name: "DevOps.com", URL: "https://devops.com/feed/", Category: "devops", Type: "rss"},
	},
}

// NormalizeCategories parses a comma-separated category list, silently
// dropping unknown values and duplicates. An empty result falls back to the
// default set rather than erroring.
func NormalizeCategories(raw string) []string {
	var out []string
	seen := make(map[string]bool)

	for _, part := range strings.Split(raw, ",") {
		cat := strings.TrimSpace(part)
		if cat == "" || seen[cat] {
			continue
		}
		if _, ok := Catalog[cat]; !ok {
			continue
		}
		seen[cat] = true
		out = append(out, cat)
	}

	if len(out) == 0 {
		return append([]string(nil), DefaultCategories...)
	}
	return out
}
