package styling

import "strings"

// OutfitType is the closed set of occasions the generator understands.
type OutfitType string

const (
	OutfitCasual         OutfitType = "casual"
	OutfitBusinessCasual OutfitType = "business-casual"
	OutfitBusiness       OutfitType = "business"
	OutfitFormal         OutfitType = "formal"
	OutfitParty          OutfitType = "party"
	OutfitDateNight      OutfitType = "date"
	OutfitSport          OutfitType = "sport"
	OutfitTravel         OutfitType = "travel"
)

type OutfitComplexity string

const (
	ComplexitySimple   OutfitComplexity = "simple"   // 2-3 items
	ComplexityStandard OutfitComplexity = "standard" // 3-4 items
	ComplexityComplex  OutfitComplexity = "complex"  // 4-6 items
)

// GenerationConfig holds the per-type knobs of the generation loop.
type GenerationConfig struct {
	MinItems                int
	MaxItems                int
	Complexity              OutfitComplexity
	DiversityWeight         float64
	StyleConsistencyWeight  float64
	ColorHarmonyWeight      float64
	WeatherAdaptationWeight float64
	MaxGenerationAttempts   int
}

// DefaultGenerationConfig returns the baseline knobs shared by all types.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		MinItems:                3,
		MaxItems:                6,
		Complexity:              ComplexityStandard,
		DiversityWeight:         0.7,
		StyleConsistencyWeight:  0.8,
		ColorHarmonyWeight:      0.9,
		WeatherAdaptationWeight: 1.0,
		MaxGenerationAttempts:   100,
	}
}

// ConfigFor returns the generation knobs for an outfit type. The switch
// is exhaustive over the OutfitType constants so a new type cannot fall
// through to the default silently.
func ConfigFor(t OutfitType) GenerationConfig {
	cfg := DefaultGenerationConfig()
	switch t {
	case OutfitCasual:
		cfg.MinItems = 2
		cfg.MaxItems = 4
		cfg.Complexity = ComplexitySimple
	case OutfitBusinessCasual:
		cfg.MinItems = 3
		cfg.MaxItems = 5
		cfg.Complexity = ComplexityStandard
	case OutfitBusiness:
		cfg.MinItems = 3
		cfg.MaxItems = 5
		cfg.Complexity = ComplexityStandard
		cfg.StyleConsistencyWeight = 0.9
	case OutfitFormal:
		cfg.MinItems = 3
		cfg.MaxItems = 6
		cfg.Complexity = ComplexityComplex
		cfg.StyleConsistencyWeight = 0.95
	case OutfitParty:
		cfg.MinItems = 3
		cfg.MaxItems = 6
		cfg.Complexity = ComplexityComplex
		cfg.DiversityWeight = 0.8
	case OutfitDateNight:
		cfg.MinItems = 3
		cfg.MaxItems = 5
		cfg.Complexity = ComplexityStandard
		cfg.StyleConsistencyWeight = 0.85
	case OutfitSport:
		cfg.MinItems = 2
		cfg.MaxItems = 4
		cfg.Complexity = ComplexitySimple
		cfg.WeatherAdaptationWeight = 1.2
	case OutfitTravel:
		cfg.MinItems = 2
		cfg.MaxItems = 4
		cfg.Complexity = ComplexitySimple
		cfg.WeatherAdaptationWeight = 1.1
	}
	return cfg
}

// Occasion keyword groups, first match wins.
var outfitTypeKeywords = []struct {
	outfitType OutfitType
	keywords   []string
}{
	{OutfitFormal, []string{"wedding", "gala", "formal", "ceremony"}},
	{OutfitBusiness, []string{"meeting", "office", "work", "business", "interview"}},
	{OutfitDateNight, []string{"date", "romantic", "anniversary"}},
	{OutfitParty, []string{"party", "celebration", "festival"}},
	{OutfitSport, []string{"sport", "gym", "workout", "athletic"}},
	{OutfitTravel, []string{"travel", "airport", "journey"}},
	{OutfitCasual, []string{"casual", "relaxed", "everyday"}},
}

// DetermineOutfitType maps a free-text occasion to an OutfitType.
// Unrecognized occasions land on business-casual, a safe middle ground.
func DetermineOutfitType(occasion string) OutfitType {
	occ := strings.ToLower(occasion)
	for _, group := range outfitTypeKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(occ, kw) {
				return group.outfitType
			}
		}
	}
	return OutfitBusinessCasual
}
