package services

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"time"

	"home-monitor/apperrors"
)

const openWeatherGeoAPI = "https://api.openweathermap.org/geo/1.0/zip"

// Geocoder resolves a zip code to coordinates through the OpenWeather
// geocoding endpoint, reusing the weather API credentials.
type Geocoder struct {
	appID   string
	baseURL string
	country string
	client  *http.Client
}

func NewGeocoder(appID string) *Geocoder {
	return &Geocoder{
		appID:   appID,
		baseURL: openWeatherGeoAPI,
		country: "JP",
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type geoResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Lookup resolves zipCode to (latitude, longitude).
func (g *Geocoder) Lookup(zipCode string) (float64, float64, error) {
	params := url.Values{}
	params.Set("zip", zipCode+","+g.country)
	params.Set("appid", g.appID)

	resp, err := g.client.Get(g.baseURL + "?" + params.Encode())
	if err != nil {
		log.Printf("geocode request failed: %v", err)
		return 0, 0, apperrors.ErrUpstreamRequest
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("geocode request returned %d", resp.StatusCode)
		return 0, 0, apperrors.ErrUpstreamRequest
	}

	var body geoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Printf("geocode response decode failed: %v", err)
		return 0, 0, apperrors.ErrUpstreamRequest
	}
	return body.Lat, body.Lon, nil
}
