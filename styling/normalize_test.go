package styling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategory(t *testing.T) {
	cases := []struct {
		raw      string
		expected string
	}{
		{"T-Shirt", "top"},
		{"blouse", "top"},
		{"Jeans", "bottom"},
		{"pencil skirt", "bottom"},
		{"Sneakers", "shoes"},
		{"ankle boots", "shoes"},
		{"Summer Dress", "dress"},
		{"leather jacket", "outerwear"},
		{"baseball cap", "accessory"},
		{"", "unknown"},
		{"  ", "unknown"},
		{"poncho", "poncho"}, // unmatched passes through lowercased
		{"PONCHO", "poncho"},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, NormalizeCategory(c.raw), c.raw)
	}
}

func TestNormalizeCategoryPriority(t *testing.T) {
	// footwear words are checked first, dress before outerwear/top
	assert.Equal(t, "shoes", NormalizeCategory("boot cut dress shoes"))
	assert.Equal(t, "dress", NormalizeCategory("sweater dress"))
	assert.Equal(t, "outerwear", NormalizeCategory("sweater"))
}

func TestNormalizeCategoryIdempotent(t *testing.T) {
	for _, raw := range []string{"t-shirt", "jeans", "sneakers", "poncho", ""} {
		once := NormalizeCategory(raw)
		assert.Equal(t, once, NormalizeCategory(once), raw)
	}
}

func TestNormalizeColor(t *testing.T) {
	cases := []struct {
		raw      string
		expected string
	}{
		{"Navy", "blue"},
		{"GREY", "gray"},
		{"ivory", "white"},
		{"offwhite", "white"},
		{"tan", "beige"},
		{"Camel", "beige"},
		{"maroon", "red"},
		{"Teal", "teal"},
		{"", "unknown"},
		{"   ", "unknown"},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, NormalizeColor(c.raw), c.raw)
	}
}

func TestNormalizeColorIdempotent(t *testing.T) {
	for _, raw := range []string{"navy", "grey", "teal", ""} {
		once := NormalizeColor(raw)
		assert.Equal(t, once, NormalizeColor(once), raw)
	}
}
