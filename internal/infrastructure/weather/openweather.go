package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const apiURL = "https://api.openweathermap.org/data/2.5/weather"

// ErrCityNotFound is returned when OpenWeatherMap does not know the city
type ErrCityNotFound struct {
	City string
}

func (e *ErrCityNotFound) Error() string {
	return fmt.Sprintf("city not found: %s", e.City)
}

// Client fetches current weather from OpenWeatherMap
type Client struct {
	apiKey     string
	httpClient *http.Client
}

// NewClient creates an OpenWeatherMap adapter
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type currentWeather struct {
	Cod  json.Number `json:"cod"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Current returns a formatted weather summary for the city
func (c *Client) Current(ctx context.Context, city string) (string, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var data currentWeather
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode weather response: %w", err)
	}

	if data.Cod.String() != "200" {
		return "", &ErrCityNotFound{City: city}
	}

	desc := ""
	if len(data.Weather) > 0 {
		desc = data.Weather[0].Description
	}

	return fmt.Sprintf(
		"🌤 Weather in %s:\n"+
			"• Temperature: %.1f°C\n"+
			"• Condition: %s\n"+
			"• Humidity: %d%%\n"+
			"• Wind Speed: %.1f m/s",
		capitalize(city), data.Main.Temp, desc, data.Main.Humidity, data.Wind.Speed), nil
}

// capitalize uppercases the first letter and lowercases the rest
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
