package styling

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tempPtr(f float64) *float64 {
	return &f
}

func TestBuildWeatherProfileBuckets(t *testing.T) {
	cases := []struct {
		temp   float64
		bucket string
	}{
		{-5, BucketCold},
		{12, BucketCold},
		{12.1, BucketMild},
		{20, BucketMild},
		{20.5, BucketWarm},
		{28, BucketWarm},
		{28.1, BucketHot},
		{35, BucketHot},
	}
	for _, c := range cases {
		profile := BuildWeatherProfile(WeatherInfo{TempC: tempPtr(c.temp)})
		assert.Equal(t, c.bucket, profile.Bucket, "temp %v", c.temp)
	}
}

func TestBuildWeatherProfileDefaults(t *testing.T) {
	profile := BuildWeatherProfile(WeatherInfo{})
	assert.Equal(t, 22.0, profile.TempC)
	assert.Equal(t, "clear", profile.Condition)
	assert.Equal(t, BucketWarm, profile.Bucket)
	assert.Equal(t, "22°C clear", profile.Label)
}

func TestBuildWeatherProfileMalformedTemp(t *testing.T) {
	nan := math.NaN()
	profile := BuildWeatherProfile(WeatherInfo{TempC: &nan, Condition: "rain"})
	assert.Equal(t, 22.0, profile.TempC)

	inf := math.Inf(1)
	profile = BuildWeatherProfile(WeatherInfo{TempC: &inf})
	assert.Equal(t, 22.0, profile.TempC)
}

func TestBuildWeatherProfileLabel(t *testing.T) {
	profile := BuildWeatherProfile(WeatherInfo{City: "Baku", TempC: tempPtr(18), Condition: "Clouds"})
	assert.Equal(t, "18°C clouds in Baku", profile.Label)

	profile = BuildWeatherProfile(WeatherInfo{TempC: tempPtr(5), Condition: "rain"})
	assert.Equal(t, "5°C rain", profile.Label)
}
