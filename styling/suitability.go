package styling

import "strings"

// SuitabilityScore rates a single item against the generation context.
// The result is a relative weight starting at 1.0; bonuses can push it
// above 1.0, penalties compound below it.
func SuitabilityScore(item Item, ctx *GenerationContext) float64 {
	score := 1.0

	category := NormalizeCategory(item.Category)
	if category == "top" || category == "dress" {
		score *= 1.1 // core garments anchor the outfit
	}

	if ctx.OutfitType == OutfitFormal && item.Formality != "formal" {
		score *= 0.7
	} else if ctx.OutfitType == OutfitBusiness && item.Formality != "business" && item.Formality != "business-casual" {
		score *= 0.8
	}

	temp := ctx.Weather.TempC
	if item.Season != "all-season" {
		if temp < 15 && item.Season != "winter" && item.Season != "fall" {
			score *= 0.7
		} else if temp > 25 && item.Season != "summer" && item.Season != "spring" {
			score *= 0.7
		}
	}

	cond := ctx.Weather.Condition
	if strings.Contains(cond, "rain") && category != "shoes" && category != "outerwear" {
		// non-protective items are slightly penalized in rain
		score *= 0.9
	} else if strings.Contains(cond, "cold") && (category == "shorts" || category == "skirt") {
		score *= 0.6
	}

	return score
}
