package styling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredCategories(t *testing.T) {
	assert.Equal(t, []string{"dress", "shoes", "accessory"}, RequiredCategories(OutfitFormal))
	assert.Equal(t, []string{"top", "bottom", "shoes", "outerwear"}, RequiredCategories(OutfitBusiness))
	assert.Equal(t, []string{"top", "bottom", "shoes"}, RequiredCategories(OutfitCasual))
	assert.Equal(t, []string{"top", "bottom", "shoes"}, RequiredCategories(OutfitParty))
}

func TestSelectBaseItemsFillsRequiredCategories(t *testing.T) {
	byCategory := categorizeItems([]Item{
		SnapshotItem("1", "t-shirt", "blue", nil, "", "", ""),
		SnapshotItem("2", "jeans", "black", nil, "", "", ""),
		SnapshotItem("3", "sneakers", "white", nil, "", "", ""),
	})
	ctx := testCtx(OutfitCasual, 18, "clear")

	base := SelectBaseItems(byCategory, ctx)

	assert.Len(t, base, 3)
	categories := []string{base[0].Category, base[1].Category, base[2].Category}
	assert.Equal(t, []string{"top", "bottom", "shoes"}, categories)
}

func TestSelectBaseItemsFocusItemFirst(t *testing.T) {
	shoes := SnapshotItem("3", "sneakers", "white", nil, "", "", "")
	byCategory := categorizeItems([]Item{
		SnapshotItem("1", "t-shirt", "blue", nil, "", "", ""),
		SnapshotItem("2", "jeans", "black", nil, "", "", ""),
		shoes,
	})
	ctx := testCtx(OutfitCasual, 18, "clear")
	ctx.FocusItem = &shoes

	base := SelectBaseItems(byCategory, ctx)

	assert.Len(t, base, 3)
	assert.Equal(t, "3", base[0].ID)
	// the focus item must never be picked a second time
	for _, item := range base[1:] {
		assert.NotEqual(t, "3", item.ID)
	}
}

func TestSelectBaseItemsAttemptRotation(t *testing.T) {
	byCategory := categorizeItems([]Item{
		SnapshotItem("blue-top", "t-shirt", "blue", nil, "", "", ""),
		SnapshotItem("white-top", "blouse", "white", nil, "", "", ""),
		SnapshotItem("jeans", "jeans", "black", nil, "", "", ""),
	})

	first := testCtx(OutfitCasual, 18, "clear")
	first.Attempt = 0
	second := testCtx(OutfitCasual, 18, "clear")
	second.Attempt = 1

	baseFirst := SelectBaseItems(byCategory, first)
	baseSecond := SelectBaseItems(byCategory, second)

	assert.Equal(t, "blue-top", baseFirst[0].ID)
	assert.Equal(t, "white-top", baseSecond[0].ID)
}

func TestSelectBaseItemsGateRejectsWithoutFallback(t *testing.T) {
	// The top-ranked bottom clashes with the chosen top. The category is
	// skipped entirely instead of falling back to the compatible bottom.
	byCategory := categorizeItems([]Item{
		SnapshotItem("top", "shirt", "white", []string{"professional"}, "", "business", ""),
		SnapshotItem("clashing-bottom", "trousers", "gray", []string{"athletic"}, "", "business", ""),
		SnapshotItem("friendly-bottom", "trousers", "black", []string{"tailored"}, "", "casual", ""),
	})
	ctx := testCtx(OutfitBusiness, 18, "clear")

	base := SelectBaseItems(byCategory, ctx)

	for _, item := range base {
		assert.NotEqual(t, "bottom", item.Category)
	}
}

func TestPassesCompatibilityGate(t *testing.T) {
	top := SnapshotItem("1", "shirt", "white", []string{"professional"}, "", "", "")
	clashing := SnapshotItem("2", "joggers", "gray", []string{"athletic"}, "", "", "")
	friendly := SnapshotItem("3", "trousers", "black", []string{"tailored"}, "", "", "")

	assert.True(t, passesCompatibilityGate(top, nil))
	assert.False(t, passesCompatibilityGate(clashing, []Item{top}))
	assert.True(t, passesCompatibilityGate(friendly, []Item{top}))
}

func TestComplementaryCategories(t *testing.T) {
	mild := testCtx(OutfitCasual, 18, "clear")
	assert.Equal(t, []string{"accessory"}, ComplementaryCategories(mild))

	cold := testCtx(OutfitCasual, 5, "clear")
	assert.Equal(t, []string{"accessory", "outerwear"}, ComplementaryCategories(cold))

	rain := testCtx(OutfitCasual, 18, "rain")
	assert.Equal(t, []string{"accessory", "outerwear"}, ComplementaryCategories(rain))

	party := testCtx(OutfitParty, 18, "clear")
	assert.Equal(t, []string{"accessory", "accessory", "accessory"}, ComplementaryCategories(party))
}

func TestAddComplementaryItemsAccepts(t *testing.T) {
	base := []Item{
		SnapshotItem("1", "t-shirt", "blue", nil, "", "", ""),
		SnapshotItem("2", "jeans", "black", nil, "", "", ""),
	}
	byCategory := categorizeItems([]Item{
		SnapshotItem("3", "watch", "black", nil, "", "", ""),
	})
	ctx := testCtx(OutfitCasual, 18, "clear")

	outfit := AddComplementaryItems(base, byCategory, ctx)

	assert.Len(t, outfit, 3)
	assert.Equal(t, "accessory", outfit[2].Category)
}

func TestAddComplementaryItemsRejectsBelowThreshold(t *testing.T) {
	base := []Item{
		SnapshotItem("1", "shirt", "teal", []string{"professional"}, "", "", ""),
	}
	byCategory := categorizeItems([]Item{
		SnapshotItem("2", "bag", "red", []string{"athletic"}, "", "", ""),
	})
	ctx := testCtx(OutfitCasual, 18, "clear")

	outfit := AddComplementaryItems(base, byCategory, ctx)

	assert.Len(t, outfit, 1)
}

func TestComplementaryScore(t *testing.T) {
	accessory := SnapshotItem("3", "watch", "black", nil, "", "", "")
	outfit := []Item{
		SnapshotItem("1", "t-shirt", "blue", nil, "", "", ""),
		SnapshotItem("2", "jeans", "black", nil, "", "", ""),
	}
	ctx := testCtx(OutfitCasual, 18, "clear")

	// per item: 0.4 color + 0.4 style + 0.2 synergy, averaged
	expected := ((0.85*0.4 + 0.7*0.4 + 0.8*0.2) + (0.8*0.4 + 0.7*0.4 + 0.7*0.2)) / 2
	assert.InDelta(t, expected, ComplementaryScore(accessory, outfit, ctx), 1e-9)
}
