package styling

import (
	"context"
	"fmt"
	"log"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
)

// ImageResolver turns a stored image key into a displayable URL.
// Resolution is best-effort: failures leave the display field empty and
// never affect selection or scoring.
type ImageResolver interface {
	GetReadURL(ctx context.Context, objectKey string) (string, error)
}

// OutfitEnricher may attach refined titles, descriptions and styling
// tips to finished outfits. Entirely additive; any failure is swallowed.
type OutfitEnricher interface {
	RefineOutfits(ctx context.Context, outfits []Outfit, occasion string, weather WeatherProfile) error
}

// OutfitItem is the per-item view handed to the API layer.
type OutfitItem struct {
	ID        string   `json:"id"`
	Category  string   `json:"category"`
	Color     string   `json:"color"`
	StyleTags []string `json:"style_tags"`
	Formality string   `json:"formality"`
	Season    string   `json:"season"`
	ImageKey  string   `json:"image_key,omitempty"`
	ImageURL  string   `json:"image_url,omitempty"`
}

// Outfit is one ranked generation result.
type Outfit struct {
	Title               string       `json:"title"`
	Details             string       `json:"details"`
	Items               []OutfitItem `json:"items"`
	Score               float64      `json:"score"`
	ItemCount           int          `json:"item_count"`
	OccasionSuitability float64      `json:"occasion_suitability"`
	WeatherAdaptation   float64      `json:"weather_adaptation"`

	// Filled by the enricher when available.
	AITitle          string   `json:"ai_title,omitempty"`
	AIDescription    string   `json:"ai_description,omitempty"`
	StylingTips      []string `json:"styling_tips,omitempty"`
	SuitabilityScore float64  `json:"suitability_score,omitempty"`
}

// GenerateRequest bundles the inputs of one generation call. Items is an
// immutable snapshot; the generator never mutates it.
type GenerateRequest struct {
	UserID      string
	Occasion    string
	Weather     WeatherInfo
	Items       []Item
	NumOutfits  int
	FocusItemID string
}

// Generator drives the bounded-attempt generation loop. Both
// collaborators may be nil; the engine then simply skips display images
// and enrichment.
type Generator struct {
	cache    *ResultCache
	images   ImageResolver
	enricher OutfitEnricher
}

func envCacheTTL() string {
	return os.Getenv("OUTFIT_CACHE_TTL")
}

func NewGenerator(images ImageResolver, enricher OutfitEnricher) *Generator {
	ttl := 30 * time.Second
	if raw := strings.TrimSpace(envCacheTTL()); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			ttl = time.Duration(seconds) * time.Second
		}
	}
	return &Generator{
		cache:    NewResultCache(ttl, 128),
		images:   images,
		enricher: enricher,
	}
}

// Generate produces up to NumOutfits ranked, internally consistent and
// non-duplicate outfits. It may legitimately return fewer than requested
// or none at all; an insufficient wardrobe is not an error.
func (g *Generator) Generate(ctx context.Context, req GenerateRequest) []Outfit {
	occasion := strings.TrimSpace(req.Occasion)
	if occasion == "" {
		occasion = "casual day"
	}
	numOutfits := req.NumOutfits
	if numOutfits <= 0 {
		numOutfits = 3
	}

	wp := BuildWeatherProfile(req.Weather)
	cacheKey := fmt.Sprintf("%s|%s|%s|%d|%s", req.UserID, occasion, wp.Bucket, numOutfits, req.FocusItemID)

	if cached, ok := g.cache.Get(cacheKey); ok {
		log.Printf("[Generate] cache hit for user %s", req.UserID)
		return cached
	}

	if len(req.Items) == 0 {
		return []Outfit{}
	}

	outfitType := DetermineOutfitType(occasion)
	config := ConfigFor(outfitType)

	var focusItem *Item
	if req.FocusItemID != "" {
		for i := range req.Items {
			if req.Items[i].ID == req.FocusItemID {
				focusItem = &req.Items[i]
				break
			}
		}
		if focusItem == nil {
			log.Printf("[Generate] focus item %s not found in wardrobe of user %s", req.FocusItemID, req.UserID)
		}
	}

	byCategory := categorizeItems(req.Items)

	var outfits []Outfit
	usedCombinations := map[string]struct{}{}

	for attempt := 0; attempt < config.MaxGenerationAttempts; attempt++ {
		if len(outfits) >= numOutfits {
			break
		}

		attemptCtx := &GenerationContext{
			UserID:      req.UserID,
			Occasion:    occasion,
			Weather:     wp,
			OutfitType:  outfitType,
			Config:      config,
			Available:   req.Items,
			FocusItem:   focusItem,
			Attempt:     attempt,
			Blacklisted: map[string]struct{}{},
		}

		base := SelectBaseItems(byCategory, attemptCtx)
		if len(base) < config.MinItems {
			continue
		}

		items := AddComplementaryItems(base, byCategory, attemptCtx)
		items = dedupeItems(items)
		if len(items) < config.MinItems {
			continue
		}

		score := OutfitScore(items, attemptCtx)

		key := combinationKey(items)
		if _, seen := usedCombinations[key]; seen {
			continue
		}
		if score < 0.5 {
			continue
		}

		outfits = append(outfits, g.formatOutfit(ctx, items, attemptCtx, score))
		usedCombinations[key] = struct{}{}
	}

	sort.SliceStable(outfits, func(i, j int) bool {
		return outfits[i].Score > outfits[j].Score
	})
	if len(outfits) > numOutfits {
		outfits = outfits[:numOutfits]
	}

	if g.enricher != nil && len(outfits) > 0 {
		if err := g.enricher.RefineOutfits(ctx, outfits, occasion, wp); err != nil {
			// Never fail generation because of enrichment.
			log.Printf("[Generate] enrichment failed: %v", err)
			sentry.CaptureException(err)
		}
	}

	g.cache.Set(cacheKey, outfits, GenerationParams{
		UserID:      req.UserID,
		Occasion:    occasion,
		City:        req.Weather.City,
		NumOutfits:  numOutfits,
		FocusItemID: req.FocusItemID,
	})

	return outfits
}

// RecommendForItem generates outfits built around one specific item.
func (g *Generator) RecommendForItem(ctx context.Context, userID string, items []Item, focusItemID string, weather WeatherInfo) []Outfit {
	return g.Generate(ctx, GenerateRequest{
		UserID:      userID,
		Occasion:    "casual",
		Weather:     weather,
		Items:       items,
		NumOutfits:  5,
		FocusItemID: focusItemID,
	})
}

func categorizeItems(items []Item) map[string][]Item {
	byCategory := map[string][]Item{}
	for _, item := range items {
		cat := NormalizeCategory(item.Category)
		byCategory[cat] = append(byCategory[cat], item)
	}
	return byCategory
}

func dedupeItems(items []Item) []Item {
	seen := map[string]struct{}{}
	unique := items[:0:0]
	for _, item := range items {
		if item.ID == "" {
			continue
		}
		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}
		unique = append(unique, item)
	}
	return unique
}

// combinationKey is the dedup key: the sorted item ids of the outfit.
func combinationKey(items []Item) string {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	sort.Strings(ids)
	return strings.Join(ids, "|")
}

func (g *Generator) formatOutfit(ctx context.Context, items []Item, attemptCtx *GenerationContext, score float64) Outfit {
	outfitItems := make([]OutfitItem, 0, len(items))
	for _, item := range items {
		out := OutfitItem{
			ID:        item.ID,
			Category:  NormalizeCategory(item.Category),
			Color:     item.Color,
			StyleTags: item.StyleTags,
			Formality: item.Formality,
			Season:    item.Season,
			ImageKey:  item.ImageKey,
		}
		if g.images != nil && item.ImageKey != "" {
			url, err := g.images.GetReadURL(ctx, item.ImageKey)
			if err != nil {
				log.Printf("[Generate] could not resolve image for item %s: %v", item.ID, err)
			} else {
				out.ImageURL = url
			}
		}
		outfitItems = append(outfitItems, out)
	}

	return Outfit{
		Title:               OutfitTitle(attemptCtx.Occasion, attemptCtx.Weather),
		Details:             OutfitDetails(items),
		Items:               outfitItems,
		Score:               math.Round(score*1000) / 1000,
		ItemCount:           len(outfitItems),
		OccasionSuitability: OccasionBonus(items, attemptCtx.OutfitType),
		WeatherAdaptation:   WeatherAdaptationBonus(items, attemptCtx.Weather),
	}
}
