package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	ristretto_store "github.com/eko/gocache/store/ristretto/v4"

	"vestiapi/styling"
)

// City weather barely moves within this window; generation bursts for the
// same user should not hammer the upstream API.
const weatherCacheExpiration = 15 * time.Minute

type WeatherServiceProvider interface {
	CurrentWeather(ctx context.Context, city string) (styling.WeatherInfo, error)
}

// OpenWeatherService fetches current conditions from OpenWeather. Without an
// OPENWEATHER_API_KEY it degrades to a deterministic stub so local and test
// environments still get plausible weather.
type OpenWeatherService struct {
	cache  *cache.LoadableCache[styling.WeatherInfo]
	apiKey string
}

type openWeatherResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
}

func NewOpenWeatherService() (*OpenWeatherService, error) {
	ristrettoCache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     1 << 20,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ristretto cache: %w", err)
	}

	service := &OpenWeatherService{
		apiKey: GetEnv("OPENWEATHER_API_KEY", ""),
	}

	loadFunction := func(ctx context.Context, key any) (styling.WeatherInfo, []store.Option, error) {
		city, ok := key.(string)
		if !ok {
			return styling.WeatherInfo{}, nil, fmt.Errorf("invalid key type provided to weather cache: expected string, got %T", key)
		}
		info, err := service.fetchCity(ctx, city)
		return info, []store.Option{store.WithExpiration(weatherCacheExpiration)}, err
	}

	service.cache = cache.NewLoadable[styling.WeatherInfo](
		loadFunction,
		cache.New[styling.WeatherInfo](ristretto_store.NewRistretto(ristrettoCache)),
	)
	return service, nil
}

func (s *OpenWeatherService) CurrentWeather(ctx context.Context, city string) (styling.WeatherInfo, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return styling.WeatherInfo{}, nil
	}
	return s.cache.Get(ctx, strings.ToLower(city))
}

func (s *OpenWeatherService) fetchCity(ctx context.Context, city string) (styling.WeatherInfo, error) {
	if s.apiKey == "" {
		log.Printf("[Weather] no API key configured, using stub conditions for %s", city)
		return stubWeather(city), nil
	}

	url := fmt.Sprintf("https://api.openweathermap.org/data/2.5/weather?q=%s&units=metric&appid=%s", city, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return styling.WeatherInfo{}, fmt.Errorf("failed to create weather request: %v", err)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return styling.WeatherInfo{}, fmt.Errorf("weather request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return styling.WeatherInfo{}, fmt.Errorf("weather request for %s failed, status code: %d", city, resp.StatusCode)
	}

	var parsed openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return styling.WeatherInfo{}, fmt.Errorf("failed to decode weather response: %v", err)
	}

	condition := ""
	if len(parsed.Weather) > 0 {
		condition = strings.ToLower(parsed.Weather[0].Main)
	}
	temp := parsed.Main.Temp
	return styling.WeatherInfo{
		City:      city,
		TempC:     &temp,
		Condition: condition,
	}, nil
}

// stubWeather derives stable fake conditions from the city name, so repeated
// calls for one city agree with each other.
func stubWeather(city string) styling.WeatherInfo {
	var sum int
	for _, r := range city {
		sum += int(r)
	}
	temp := float64(5 + sum%25)
	conditions := []string{"clear", "clouds", "rain", "sunny"}
	return styling.WeatherInfo{
		City:      city,
		TempC:     &temp,
		Condition: conditions[sum%len(conditions)],
	}
}
