package styling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHarmonyScore(t *testing.T) {
	assert.Equal(t, 0.55, HarmonyScore("unknown", "red"))
	assert.Equal(t, 0.55, HarmonyScore("red", ""))
	assert.Equal(t, 0.7, HarmonyScore("red", "red"))
	assert.Equal(t, 0.85, HarmonyScore("black", "orange"))
	assert.Equal(t, 0.85, HarmonyScore("orange", "black"))
	assert.Equal(t, 0.45, HarmonyScore("red", "green"))
	assert.Equal(t, 0.45, HarmonyScore("orange", "purple"))
}

func TestHarmonyScoreNormalizesAliases(t *testing.T) {
	// navy resolves to blue, which is treated as a neutral
	assert.Equal(t, 0.85, HarmonyScore("Navy", "red"))
	assert.Equal(t, 0.7, HarmonyScore("grey", "gray"))
}

func TestRichHarmonyScore(t *testing.T) {
	assert.Equal(t, 0.6, RichHarmonyScore("unknown", "red"))
	assert.Equal(t, 0.8, RichHarmonyScore("red", "red"))
	assert.Equal(t, 0.9, RichHarmonyScore("black", "white"))
	assert.Equal(t, 0.85, RichHarmonyScore("black", "red"))
	assert.Equal(t, 0.95, RichHarmonyScore("red", "green"))
	assert.Equal(t, 0.95, RichHarmonyScore("blue", "orange"))
	assert.Equal(t, 0.85, RichHarmonyScore("red", "pink"), "analogous")
	assert.Equal(t, 0.8, RichHarmonyScore("pink", "coral"), "same family")
	assert.Equal(t, 0.5, RichHarmonyScore("red", "teal"), "warm against cool clashes")
	assert.Equal(t, 0.7, RichHarmonyScore("mint", "gold"))
}

func TestColorFamily(t *testing.T) {
	assert.Equal(t, "neutral", ColorFamily("beige"))
	assert.Equal(t, "warm", ColorFamily("coral"))
	assert.Equal(t, "cool", ColorFamily("Teal"))
	assert.Equal(t, "jewel", ColorFamily("emerald"))
	assert.Equal(t, "unknown", ColorFamily("chartreuse"))
}

func TestStyleCategory(t *testing.T) {
	assert.Equal(t, "minimal", StyleCategory(nil))
	assert.Equal(t, "minimal", StyleCategory([]string{"something-else"}))
	assert.Equal(t, "streetwear", StyleCategory([]string{"urban", "edgy"}))
	assert.Equal(t, "business", StyleCategory([]string{"professional", "tailored"}))
	assert.Equal(t, "glam", StyleCategory([]string{"sparkly", "evening", "luxurious"}))
}

func TestStyleCompatibility(t *testing.T) {
	assert.Equal(t, 0.7, StyleCompatibility(nil, []string{"urban"}))
	assert.Equal(t, 1.0, StyleCompatibility([]string{"simple"}, []string{"clean"}))
	assert.Equal(t, 0.8, StyleCompatibility([]string{"simple"}, []string{"elegant"}))
	assert.Equal(t, 0.75, StyleCompatibility([]string{"urban"}, []string{"clean"}))
	assert.Equal(t, 0.5, StyleCompatibility([]string{"athletic"}, []string{"professional"}))
	assert.Equal(t, 0.7, StyleCompatibility([]string{"boho"}, []string{"athletic"}))
}

func TestCategorySynergy(t *testing.T) {
	assert.Equal(t, 1.0, CategorySynergy("top", "bottom"))
	assert.Equal(t, 1.0, CategorySynergy("bottom", "top"))
	assert.Equal(t, 1.0, CategorySynergy("shoes", "dress"))
	assert.Equal(t, 0.9, CategorySynergy("outerwear", "top"))
	assert.Equal(t, 0.8, CategorySynergy("accessory", "top"))
	assert.Equal(t, 0.7, CategorySynergy("bottom", "accessory"))
	assert.Equal(t, 0.5, CategorySynergy("shoes", "outerwear"))
	assert.Equal(t, 0.5, CategorySynergy("top", "top"))
}
