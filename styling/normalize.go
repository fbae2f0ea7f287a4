package styling

import "strings"

// Category keyword groups, checked in priority order. The first group
// that matches wins, so "sweater dress" is a dress and "boot cut jeans"
// are shoes-adjacent on purpose: footwear words are the most specific.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"shoes", []string{"shoe", "sneaker", "heel", "boot", "loafer", "sandals", "footwear"}},
	{"dress", []string{"dress", "robe", "gown"}},
	{"accessory", []string{"watch", "belt", "bag", "scarf", "jewelry", "accessory", "hat", "cap", "glasses", "sunglasses"}},
	{"bottom", []string{"jean", "pant", "trouser", "skirt", "short", "legging", "bottom"}},
	{"outerwear", []string{"jacket", "coat", "blazer", "veste", "hoodie", "sweater", "cardigan", "outerwear"}},
	{"top", []string{"shirt", "tee", "t-shirt", "top", "blouse", "sweater", "pull", "tank", "polo"}},
}

// NormalizeCategory maps a free-text category to the small set the
// generator understands. Unmatched input passes through lowercased so
// odd tagger output still groups consistently. Idempotent.
func NormalizeCategory(raw string) string {
	c := strings.ToLower(strings.TrimSpace(raw))
	if c == "" {
		return "unknown"
	}
	for _, group := range categoryKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(c, kw) {
				return group.category
			}
		}
	}
	return c
}

var colorAliases = map[string]string{
	"grey":     "gray",
	"navy":     "blue",
	"offwhite": "white",
	"ivory":    "white",
	"tan":      "beige",
	"camel":    "beige",
	"maroon":   "red",
}

// NormalizeColor lowercases and rewrites common aliases. Idempotent.
func NormalizeColor(raw string) string {
	c := strings.ToLower(strings.TrimSpace(raw))
	if c == "" {
		return "unknown"
	}
	if alias, ok := colorAliases[c]; ok {
		return alias
	}
	return c
}
