package styling

import "strings"

// Item is a read-only wardrobe snapshot used for one generation call.
// All optional fields are defaulted once, at ingestion, so the scoring
// code never has to re-check for missing values.
type Item struct {
	ID          string
	Category    string // normalized, e.g. top/bottom/dress/shoes/outerwear/accessory
	RawCategory string // as stored, kept for display and footwear checks
	Color       string
	StyleTags   []string
	Season      string // summer/winter/spring/fall/all-season
	Formality   string // casual/business-casual/business/formal
	ImageKey    string
}

// SnapshotItem builds a fully-populated Item from possibly-sparse stored fields.
func SnapshotItem(id, category, color string, styleTags []string, season, formality, imageKey string) Item {
	c := strings.ToLower(strings.TrimSpace(color))
	if c == "" {
		c = "unknown"
	}
	s := strings.ToLower(strings.TrimSpace(season))
	if s == "" {
		s = "all-season"
	}
	f := strings.ToLower(strings.TrimSpace(formality))
	if f == "" {
		f = "casual"
	}
	if styleTags == nil {
		styleTags = []string{}
	}
	return Item{
		ID:          id,
		Category:    NormalizeCategory(category),
		RawCategory: strings.ToLower(strings.TrimSpace(category)),
		Color:       c,
		StyleTags:   styleTags,
		Season:      s,
		Formality:   f,
		ImageKey:    imageKey,
	}
}

// GenerationContext carries the state of one generation attempt. The
// blacklist only grows while items are selected, so the same item can
// never appear twice inside one outfit.
type GenerationContext struct {
	UserID      string
	Occasion    string
	Weather     WeatherProfile
	OutfitType  OutfitType
	Config      GenerationConfig
	Available   []Item
	FocusItem   *Item
	Attempt     int
	Blacklisted map[string]struct{}
}

func (ctx *GenerationContext) blacklist(id string) {
	if ctx.Blacklisted == nil {
		ctx.Blacklisted = map[string]struct{}{}
	}
	ctx.Blacklisted[id] = struct{}{}
}

func (ctx *GenerationContext) isBlacklisted(id string) bool {
	_, ok := ctx.Blacklisted[id]
	return ok
}
