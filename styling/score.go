package styling

import "strings"

// OutfitScore aggregates per-item suitability, pairwise compatibility
// and the weather/occasion bonuses into one scalar. An outfit below the
// configured minimum item count scores exactly 0 and must be rejected.
func OutfitScore(items []Item, ctx *GenerationContext) float64 {
	if len(items) < ctx.Config.MinItems {
		return 0.0
	}

	var scores []float64

	for _, item := range items {
		scores = append(scores, SuitabilityScore(item, ctx))
	}

	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			colorScore := HarmonyScore(items[i].Color, items[j].Color)
			styleScore := StyleCompatibility(items[i].StyleTags, items[j].StyleTags)
			scores = append(scores, (colorScore+styleScore)/2)
		}
	}

	scores = append(scores, WeatherAdaptationBonus(items, ctx.Weather))
	scores = append(scores, OccasionBonus(items, ctx.OutfitType))

	total := 0.0
	for _, s := range scores {
		total += s
	}
	return total / float64(len(scores))
}

// WeatherAdaptationBonus rewards outerwear in cold weather and
// waterproof or boot-like pieces in rain.
func WeatherAdaptationBonus(items []Item, weather WeatherProfile) float64 {
	bonus := 1.0

	if weather.TempC < 15 {
		hasOuterwear := false
		for _, item := range items {
			if NormalizeCategory(item.Category) == "outerwear" {
				hasOuterwear = true
				break
			}
		}
		if hasOuterwear {
			bonus *= 1.2
		} else {
			bonus *= 0.8
		}
	}

	if strings.Contains(weather.Condition, "rain") {
		hasWaterproof := false
		for _, item := range items {
			if strings.Contains(item.RawCategory, "boot") {
				hasWaterproof = true
				break
			}
			for _, tag := range item.StyleTags {
				if tag == "waterproof" {
					hasWaterproof = true
					break
				}
			}
			if hasWaterproof {
				break
			}
		}
		if hasWaterproof {
			bonus *= 1.1
		}
	}

	return bonus
}

// OccasionBonus rewards outfits whose formality matches the occasion.
func OccasionBonus(items []Item, t OutfitType) float64 {
	switch t {
	case OutfitFormal:
		formalCount := 0
		for _, item := range items {
			if item.Formality == "formal" {
				formalCount++
			}
		}
		switch {
		case formalCount >= 2:
			return 1.2
		case formalCount == 1:
			return 1.0
		default:
			return 0.8
		}
	case OutfitBusiness, OutfitBusinessCasual:
		businessCount := 0
		for _, item := range items {
			if item.Formality == "business" || item.Formality == "business-casual" {
				businessCount++
			}
		}
		if businessCount >= 2 {
			return 1.1
		}
		return 1.0
	}
	return 1.0
}
