package styling

import "strings"

// Two color-harmony scorers live here on purpose. HarmonyScore is the
// cheap variant used when aggregating a finished outfit; RichHarmonyScore
// knows about color families and drives candidate gating during
// selection. They disagree for some pairs and that layering is part of
// the observed behavior.

var neutralColors = map[string]struct{}{
	"black": {}, "white": {}, "gray": {}, "beige": {},
	"brown": {}, "navy": {}, "blue": {},
}

var pleasantPairs = map[[2]string]struct{}{
	{"blue", "white"}:   {},
	{"blue", "beige"}:   {},
	{"red", "black"}:    {},
	{"green", "white"}:  {},
	{"pink", "white"}:   {},
	{"purple", "black"}: {},
	{"yellow", "blue"}:  {},
}

// HarmonyScore returns a cheap harmony score in [0..1] for two colors.
func HarmonyScore(a, b string) float64 {
	a, b = NormalizeColor(a), NormalizeColor(b)
	if a == "unknown" || b == "unknown" {
		return 0.55
	}
	if a == b {
		return 0.7
	}
	if _, ok := neutralColors[a]; ok {
		return 0.85
	}
	if _, ok := neutralColors[b]; ok {
		return 0.85
	}
	if _, ok := pleasantPairs[[2]string{a, b}]; ok {
		return 0.8
	}
	if _, ok := pleasantPairs[[2]string{b, a}]; ok {
		return 0.8
	}
	return 0.45
}

var colorFamilies = []struct {
	name   string
	colors map[string]struct{}
}{
	{"neutral", set("black", "white", "gray", "grey", "beige", "brown", "navy", "cream", "khaki")},
	{"warm", set("red", "orange", "yellow", "pink", "coral", "peach", "gold")},
	{"cool", set("blue", "green", "purple", "teal", "turquoise", "lavender", "mint")},
	{"earth", set("brown", "beige", "olive", "mustard", "rust", "terracotta")},
	{"jewel", set("emerald", "sapphire", "ruby", "amethyst", "topaz")},
}

var complementaryColors = map[string]string{
	"red":    "green",
	"orange": "blue",
	"yellow": "purple",
	"pink":   "mint",
	"blue":   "orange",
	"green":  "red",
	"purple": "yellow",
}

var analogousColors = map[string][]string{
	"red":    {"pink", "orange", "coral"},
	"blue":   {"teal", "purple", "navy"},
	"green":  {"mint", "olive", "teal"},
	"purple": {"lavender", "pink", "blue"},
}

func set(colors ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(colors))
	for _, c := range colors {
		m[c] = struct{}{}
	}
	return m
}

// ColorFamily reports which family a color belongs to, or "unknown".
func ColorFamily(color string) string {
	c := strings.ToLower(color)
	for _, family := range colorFamilies {
		if _, ok := family.colors[c]; ok {
			return family.name
		}
	}
	return "unknown"
}

func isRichNeutral(c string) bool {
	_, ok := colorFamilies[0].colors[c]
	return ok
}

// RichHarmonyScore is the family-aware harmony scorer used while
// assembling candidates. Scores range 0.5..0.95.
func RichHarmonyScore(a, b string) float64 {
	if a == "unknown" || b == "unknown" {
		return 0.6
	}
	a, b = strings.ToLower(a), strings.ToLower(b)

	if a == b {
		return 0.8
	}
	if isRichNeutral(a) && isRichNeutral(b) {
		return 0.9
	}
	if isRichNeutral(a) || isRichNeutral(b) {
		return 0.85
	}
	if complementaryColors[a] == b {
		return 0.95
	}
	for _, analog := range analogousColors[a] {
		if analog == b {
			return 0.85
		}
	}

	fam1, fam2 := ColorFamily(a), ColorFamily(b)
	if fam1 == fam2 && fam1 != "unknown" {
		return 0.8
	}
	if (fam1 == "warm" || fam1 == "earth") && (fam2 == "cool" || fam2 == "jewel") {
		return 0.5
	}
	return 0.7
}

// Style categories in fixed priority order so tie-breaking stays
// deterministic: the first category with the highest keyword overlap wins.
var styleCategories = []struct {
	name     string
	keywords map[string]struct{}
}{
	{"minimal", set("simple", "clean", "basic", "neutral")},
	{"streetwear", set("urban", "casual", "edgy", "sporty")},
	{"classic", set("timeless", "elegant", "traditional", "sophisticated")},
	{"bohemian", set("boho", "flowy", "patterned", "natural")},
	{"glam", set("glamorous", "sparkly", "luxurious", "evening")},
	{"sporty", set("athletic", "active", "comfortable", "performance")},
	{"business", set("professional", "tailored", "sharp", "formal")},
}

// StyleCategory picks the dominant style category for a tag set.
func StyleCategory(tags []string) string {
	tagSet := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		tagSet[strings.ToLower(t)] = struct{}{}
	}

	best := "minimal"
	bestCount := -1
	for _, category := range styleCategories {
		count := 0
		for tag := range tagSet {
			if _, ok := category.keywords[tag]; ok {
				count++
			}
		}
		if count > bestCount {
			best = category.name
			bestCount = count
		}
	}
	return best
}

var compatibleStylePairs = map[[2]string]struct{}{
	{"minimal", "classic"}:   {},
	{"minimal", "business"}:  {},
	{"classic", "business"}:  {},
	{"streetwear", "sporty"}: {},
	{"bohemian", "glam"}:     {},
}

var clashingStylePairs = map[[2]string]struct{}{
	{"sporty", "business"}:   {},
	{"streetwear", "glam"}:   {},
	{"bohemian", "business"}: {},
}

func inPairSet(pairs map[[2]string]struct{}, a, b string) bool {
	if _, ok := pairs[[2]string{a, b}]; ok {
		return true
	}
	_, ok := pairs[[2]string{b, a}]
	return ok
}

// StyleCompatibility scores two tag sets in [0..1].
func StyleCompatibility(tags1, tags2 []string) float64 {
	if len(tags1) == 0 || len(tags2) == 0 {
		return 0.7
	}

	cat1, cat2 := StyleCategory(tags1), StyleCategory(tags2)
	if cat1 == cat2 {
		return 1.0
	}
	if inPairSet(compatibleStylePairs, cat1, cat2) {
		return 0.8
	}
	// minimal and classic go with almost anything
	if cat1 == "minimal" || cat1 == "classic" || cat2 == "minimal" || cat2 == "classic" {
		return 0.75
	}
	if inPairSet(clashingStylePairs, cat1, cat2) {
		return 0.5
	}
	return 0.7
}

var categorySynergies = map[[2]string]float64{
	{"bottom", "top"}:       1.0,
	{"dress", "shoes"}:      1.0,
	{"outerwear", "top"}:    0.9,
	{"bottom", "shoes"}:     0.9,
	{"accessory", "top"}:    0.8,
	{"accessory", "dress"}:  0.8,
	{"accessory", "bottom"}: 0.7,
}

// CategorySynergy returns how naturally two categories pair up.
func CategorySynergy(cat1, cat2 string) float64 {
	key := [2]string{cat1, cat2}
	if cat2 < cat1 {
		key = [2]string{cat2, cat1}
	}
	if score, ok := categorySynergies[key]; ok {
		return score
	}
	return 0.5
}
