package services

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"home-monitor/apperrors"
	"home-monitor/utils"
)

const openWeatherAPI = "https://api.openweathermap.org/data/2.5/weather"

// Weather is the subset of OpenWeather data served to clients.
type Weather struct {
	LocationName string  `json:"location_name"`
	TemperatureC float64 `json:"temperature_c"`
	TemperatureF float64 `json:"temperature_f"`
	Humidity     int     `json:"humidity"`
	WeatherIcon  string  `json:"weather_icon"`
}

// WeatherClient fetches current weather by coordinates. Requests are bounded
// by the client timeout; an unbounded third-party call would stall the whole
// server.
type WeatherClient struct {
	appID   string
	baseURL string
	client  *http.Client
}

func NewWeatherClient(appID string) *WeatherClient {
	return &WeatherClient{
		appID:   appID,
		baseURL: openWeatherAPI,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type openWeatherResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Icon string `json:"icon"`
	} `json:"weather"`
}

// Current fetches the current weather at lat/lon localized to lang.
func (w *WeatherClient) Current(lat, lon float64, lang string) (*Weather, error) {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", lat))
	params.Set("lon", fmt.Sprintf("%f", lon))
	params.Set("units", "metric")
	params.Set("appid", w.appID)
	params.Set("lang", lang)

	resp, err := w.client.Get(w.baseURL + "?" + params.Encode())
	if err != nil {
		log.Printf("weather request failed: %v", err)
		return nil, apperrors.ErrUpstreamRequest
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("weather request returned %d", resp.StatusCode)
		return nil, apperrors.ErrUpstreamRequest
	}

	var body openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Printf("weather response decode failed: %v", err)
		return nil, apperrors.ErrUpstreamRequest
	}

	icon := ""
	if len(body.Weather) > 0 {
		icon = body.Weather[0].Icon
	}

	return &Weather{
		LocationName: body.Name,
		TemperatureC: body.Main.Temp,
		TemperatureF: utils.ConvertCelsiusToFahrenheit(body.Main.Temp),
		Humidity:     body.Main.Humidity,
		WeatherIcon:  icon,
	}, nil
}
