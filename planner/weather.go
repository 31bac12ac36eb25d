package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/idealwardrobe/backend/config"
)

// weatherBaseURL is a var so tests can point it at a fake server.
var weatherBaseURL = "https://api.open-meteo.com/v1/forecast"

// Weather is the current condition the planner dresses for.
type Weather struct {
	TempC     float64 `json:"temp"`
	Condition string  `json:"condition"`
}

// IsPrecipitating reports whether the condition involves rain.
func (w Weather) IsPrecipitating() bool {
	c := strings.ToLower(w.Condition)
	for _, k := range []string{"rain", "drizzle", "storm", "shower"} {
		if strings.Contains(c, k) {
			return true
		}
	}
	return false
}

// DefaultWeather is used when the live lookup fails; recommendations must
// never block on the forecast service.
func DefaultWeather() Weather {
	return Weather{TempC: 20, Condition: "clear"}
}

type openMeteoResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
}

// FetchWeather queries Open-Meteo for the configured coordinates.
func FetchWeather(ctx context.Context) (Weather, error) {
	url := fmt.Sprintf("%s?latitude=%.4f&longitude=%.4f&current_weather=true",
		weatherBaseURL, config.WeatherLatitude, config.WeatherLongitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return DefaultWeather(), err
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return DefaultWeather(), err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return DefaultWeather(), fmt.Errorf("weather lookup returned status %d", resp.StatusCode)
	}

	var parsed openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return DefaultWeather(), fmt.Errorf("weather lookup returned invalid JSON: %w", err)
	}

	return Weather{
		TempC:     parsed.CurrentWeather.Temperature,
		Condition: conditionFromCode(parsed.CurrentWeather.WeatherCode),
	}, nil
}

// conditionFromCode collapses WMO weather codes into the coarse conditions
// the consistency checks understand.
func conditionFromCode(code int) string {
	switch {
	case code == 0:
		return "clear"
	case code <= 3:
		return "cloudy"
	case code == 45 || code == 48:
		return "fog"
	case code >= 51 && code <= 57:
		return "drizzle"
	case code >= 61 && code <= 67:
		return "rain"
	case code >= 71 && code <= 77:
		return "snow"
	case code >= 80 && code <= 82:
		return "rain showers"
	case code >= 85 && code <= 86:
		return "snow showers"
	case code >= 95:
		return "thunderstorm"
	default:
		return "cloudy"
	}
}
