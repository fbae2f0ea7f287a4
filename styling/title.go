package styling

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

var weatherVibes = map[string]string{
	BucketCold: "Cozy",
	BucketMild: "Classic",
	BucketWarm: "Fresh",
	BucketHot:  "Breezy",
}

// OutfitTitle builds a short display title from the occasion and a
// weather-based vibe word.
func OutfitTitle(occasion string, weather WeatherProfile) string {
	occ := strings.TrimSpace(occasion)
	if occ == "" {
		occ = "casual"
	}
	vibe, ok := weatherVibes[weather.Bucket]
	if !ok {
		vibe = "Style"
	}
	return fmt.Sprintf("%s %s Look", vibe, titleCaser.String(occ))
}

// OutfitDetails summarizes the categories and colors of an outfit,
// keeping first-seen order so the output is stable.
func OutfitDetails(items []Item) string {
	var categories, colors []string
	seenCat := map[string]struct{}{}
	seenColor := map[string]struct{}{}
	for _, item := range items {
		cat := NormalizeCategory(item.Category)
		if _, ok := seenCat[cat]; !ok {
			seenCat[cat] = struct{}{}
			categories = append(categories, cat)
		}
		if _, ok := seenColor[item.Color]; !ok {
			seenColor[item.Color] = struct{}{}
			colors = append(colors, item.Color)
		}
	}
	return fmt.Sprintf("%s in %s", strings.Join(categories, ", "), strings.Join(colors, ", "))
}
