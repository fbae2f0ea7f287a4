package styling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testCtx(outfitType OutfitType, tempC float64, condition string) *GenerationContext {
	return &GenerationContext{
		OutfitType:  outfitType,
		Config:      ConfigFor(outfitType),
		Weather:     BuildWeatherProfile(WeatherInfo{TempC: &tempC, Condition: condition}),
		Blacklisted: map[string]struct{}{},
	}
}

func TestSuitabilityScoreCoreGarments(t *testing.T) {
	ctx := testCtx(OutfitCasual, 18, "clear")
	top := SnapshotItem("1", "t-shirt", "blue", nil, "", "", "")
	bottom := SnapshotItem("2", "jeans", "black", nil, "", "", "")
	dress := SnapshotItem("3", "dress", "red", nil, "", "", "")

	assert.InDelta(t, 1.1, SuitabilityScore(top, ctx), 1e-9)
	assert.InDelta(t, 1.1, SuitabilityScore(dress, ctx), 1e-9)
	assert.InDelta(t, 1.0, SuitabilityScore(bottom, ctx), 1e-9)
}

func TestSuitabilityScoreFormalityMismatch(t *testing.T) {
	casualBottom := SnapshotItem("1", "jeans", "black", nil, "", "casual", "")

	formalCtx := testCtx(OutfitFormal, 18, "clear")
	assert.InDelta(t, 0.7, SuitabilityScore(casualBottom, formalCtx), 1e-9)

	businessCtx := testCtx(OutfitBusiness, 18, "clear")
	assert.InDelta(t, 0.8, SuitabilityScore(casualBottom, businessCtx), 1e-9)

	businessBottom := SnapshotItem("2", "trousers", "gray", nil, "", "business-casual", "")
	assert.InDelta(t, 1.0, SuitabilityScore(businessBottom, businessCtx), 1e-9)
}

func TestSuitabilityScoreSeasonMismatch(t *testing.T) {
	summerBottom := SnapshotItem("1", "shorts", "beige", nil, "summer", "", "")
	winterBottom := SnapshotItem("2", "wool pants", "gray", nil, "winter", "", "")
	allSeason := SnapshotItem("3", "jeans", "blue", nil, "all-season", "", "")

	coldCtx := testCtx(OutfitCasual, 5, "clear")
	assert.InDelta(t, 0.7, SuitabilityScore(summerBottom, coldCtx), 1e-9)
	assert.InDelta(t, 1.0, SuitabilityScore(winterBottom, coldCtx), 1e-9)
	assert.InDelta(t, 1.0, SuitabilityScore(allSeason, coldCtx), 1e-9)

	hotCtx := testCtx(OutfitCasual, 30, "clear")
	assert.InDelta(t, 0.7, SuitabilityScore(winterBottom, hotCtx), 1e-9)
	assert.InDelta(t, 1.0, SuitabilityScore(summerBottom, hotCtx), 1e-9)
}

func TestSuitabilityScoreRain(t *testing.T) {
	rainCtx := testCtx(OutfitCasual, 18, "rain")
	top := SnapshotItem("1", "t-shirt", "blue", nil, "", "", "")
	boots := SnapshotItem("2", "boots", "black", nil, "", "", "")
	coat := SnapshotItem("3", "rain coat", "green", nil, "", "", "")

	// protective categories keep their score, everything else dips
	assert.InDelta(t, 1.1*0.9, SuitabilityScore(top, rainCtx), 1e-9)
	assert.InDelta(t, 1.0, SuitabilityScore(boots, rainCtx), 1e-9)
	assert.InDelta(t, 1.0, SuitabilityScore(coat, rainCtx), 1e-9)
}
