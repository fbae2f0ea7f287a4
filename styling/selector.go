package styling

import (
	"sort"
	"strings"
)

// RequiredCategories lists the base categories an outfit type must cover.
func RequiredCategories(t OutfitType) []string {
	switch t {
	case OutfitFormal:
		return []string{"dress", "shoes", "accessory"}
	case OutfitBusiness, OutfitBusinessCasual:
		return []string{"top", "bottom", "shoes", "outerwear"}
	case OutfitSport:
		return []string{"top", "bottom", "shoes"}
	default: // casual, party, date, travel
		return []string{"top", "bottom", "shoes"}
	}
}

// SelectBaseItems greedily fills the required categories. Per category
// the candidates are ranked by suitability and the pick rotates with the
// attempt index, which is what makes repeated attempts explore different
// combinations without any randomness. A pick that fails the pairwise
// compatibility gate is rejected outright; there is deliberately no
// fallback to the next-best candidate (known limitation, kept for
// output compatibility).
func SelectBaseItems(byCategory map[string][]Item, ctx *GenerationContext) []Item {
	var base []Item

	if ctx.FocusItem != nil {
		base = append(base, *ctx.FocusItem)
		ctx.blacklist(ctx.FocusItem.ID)
	}

	for _, category := range RequiredCategories(ctx.OutfitType) {
		candidates := byCategory[category]
		if len(candidates) == 0 {
			continue
		}

		type scored struct {
			item  Item
			score float64
		}
		var ranked []scored
		for _, item := range candidates {
			if item.ID == "" || ctx.isBlacklisted(item.ID) {
				continue
			}
			ranked = append(ranked, scored{item, SuitabilityScore(item, ctx)})
		}
		if len(ranked) == 0 {
			continue
		}
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].score > ranked[j].score
		})

		pick := ranked[ctx.Attempt%len(ranked)].item
		if !passesCompatibilityGate(pick, base) {
			continue
		}
		base = append(base, pick)
		ctx.blacklist(pick.ID)
	}

	return base
}

// passesCompatibilityGate checks the candidate against every item chosen
// so far. Both checks use strict thresholds: a 0.5 clash score fails.
func passesCompatibilityGate(candidate Item, existing []Item) bool {
	for _, other := range existing {
		if RichHarmonyScore(candidate.Color, other.Color) <= 0.5 {
			return false
		}
		if StyleCompatibility(candidate.StyleTags, other.StyleTags) <= 0.5 {
			return false
		}
	}
	return true
}

// ComplementaryCategories lists the optional slots layered on top of the
// base: always one accessory, outerwear when the weather calls for it,
// and two more accessory slots for dressed-up occasions.
func ComplementaryCategories(ctx *GenerationContext) []string {
	complementary := []string{"accessory"}

	if ctx.Weather.Bucket == BucketCold || strings.Contains(ctx.Weather.Condition, "rain") {
		complementary = append(complementary, "outerwear")
	}
	switch ctx.OutfitType {
	case OutfitFormal, OutfitParty, OutfitDateNight:
		complementary = append(complementary, "accessory", "accessory")
	}
	return complementary
}

// AddComplementaryItems augments the base with the best-fitting item per
// complementary slot, accepting it only when it clears the 0.6 bar
// against the whole outfit assembled so far.
func AddComplementaryItems(base []Item, byCategory map[string][]Item, ctx *GenerationContext) []Item {
	outfit := make([]Item, len(base))
	copy(outfit, base)

	for _, category := range ComplementaryCategories(ctx) {
		candidates := byCategory[category]
		if len(candidates) == 0 {
			continue
		}

		var best *Item
		bestScore := 0.0
		for i := range candidates {
			item := candidates[i]
			if ctx.isBlacklisted(item.ID) {
				continue
			}
			score := ComplementaryScore(item, outfit, ctx)
			if score > bestScore {
				bestScore = score
				best = &candidates[i]
			}
		}

		if best != nil && bestScore > 0.6 {
			outfit = append(outfit, *best)
			ctx.blacklist(best.ID)
		}
	}
	return outfit
}

// ComplementaryScore measures how well an item complements an existing
// outfit: per existing item 40% rich color harmony, 40% style
// compatibility, 20% category synergy, averaged over the outfit.
func ComplementaryScore(item Item, outfit []Item, ctx *GenerationContext) float64 {
	if len(outfit) == 0 {
		return SuitabilityScore(item, ctx)
	}

	total := 0.0
	for _, other := range outfit {
		colorScore := RichHarmonyScore(item.Color, other.Color)
		styleScore := StyleCompatibility(item.StyleTags, other.StyleTags)
		synergy := CategorySynergy(NormalizeCategory(item.Category), NormalizeCategory(other.Category))
		total += colorScore*0.4 + styleScore*0.4 + synergy*0.2
	}
	return total / float64(len(outfit))
}
