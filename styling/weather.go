package styling

import (
	"fmt"
	"math"
	"strings"
)

// WeatherInfo is the raw record handed over by the weather collaborator.
// TempC is a pointer because upstream data is allowed to be missing or
// garbage; the profile builder substitutes a sane default.
type WeatherInfo struct {
	City      string   `json:"city"`
	Condition string   `json:"condition"`
	TempC     *float64 `json:"temp_c"`
}

const defaultTempC = 22.0

// WeatherProfile is the discretized weather value derived once per request.
type WeatherProfile struct {
	TempC     float64
	Condition string
	Bucket    string // cold/mild/warm/hot
	Label     string
}

const (
	BucketCold = "cold"
	BucketMild = "mild"
	BucketWarm = "warm"
	BucketHot  = "hot"
)

// BuildWeatherProfile discretizes a raw weather record. Malformed
// temperature falls back to 22°C instead of failing the request.
func BuildWeatherProfile(w WeatherInfo) WeatherProfile {
	t := defaultTempC
	if w.TempC != nil && !math.IsNaN(*w.TempC) && !math.IsInf(*w.TempC, 0) {
		t = *w.TempC
	}
	cond := strings.ToLower(strings.TrimSpace(w.Condition))
	if cond == "" {
		cond = "clear"
	}

	var bucket string
	switch {
	case t <= 12:
		bucket = BucketCold
	case t <= 20:
		bucket = BucketMild
	case t <= 28:
		bucket = BucketWarm
	default:
		bucket = BucketHot
	}

	label := fmt.Sprintf("%.0f°C %s", t, cond)
	if city := strings.TrimSpace(w.City); city != "" {
		label = fmt.Sprintf("%s in %s", label, city)
	}
	return WeatherProfile{TempC: t, Condition: cond, Bucket: bucket, Label: label}
}
