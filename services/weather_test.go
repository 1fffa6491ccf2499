package services

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"home-monitor/apperrors"
)

func TestWeatherClientCurrent(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"lat":   r.URL.Query().Get("lat"),
			"lon":   r.URL.Query().Get("lon"),
			"units": r.URL.Query().Get("units"),
			"appid": r.URL.Query().Get("appid"),
			"lang":  r.URL.Query().Get("lang"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"Shinjuku","main":{"temp":20.4,"humidity":61},"weather":[{"icon":"04d"}]}`))
	}))
	defer srv.Close()

	client := NewWeatherClient("test-appid")
	client.baseURL = srv.URL

	weather, err := client.Current(35.68, 139.76, "ja")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}

	if gotQuery["units"] != "metric" || gotQuery["appid"] != "test-appid" || gotQuery["lang"] != "ja" {
		t.Errorf("query = %v", gotQuery)
	}
	if weather.LocationName != "Shinjuku" {
		t.Errorf("LocationName = %q", weather.LocationName)
	}
	if weather.TemperatureC != 20.4 {
		t.Errorf("TemperatureC = %v, want 20.4", weather.TemperatureC)
	}
	if weather.TemperatureF != 68.72 {
		t.Errorf("TemperatureF = %v, want 68.72", weather.TemperatureF)
	}
	if weather.Humidity != 61 || weather.WeatherIcon != "04d" {
		t.Errorf("weather = %+v", weather)
	}
}

func TestWeatherClientUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewWeatherClient("bad-appid")
	client.baseURL = srv.URL

	if _, err := client.Current(35.68, 139.76, "en"); !errors.Is(err, apperrors.ErrUpstreamRequest) {
		t.Fatalf("Current error = %v, want ErrUpstreamRequest", err)
	}
}

func TestGeocoderLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("zip"); got != "1600022,JP" {
			t.Errorf("zip = %q, want 1600022,JP", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"zip":"1600022","name":"Shinjuku","lat":35.6938,"lon":139.7034,"country":"JP"}`))
	}))
	defer srv.Close()

	geo := NewGeocoder("test-appid")
	geo.baseURL = srv.URL

	lat, lon, err := geo.Lookup("1600022")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if lat != 35.6938 || lon != 139.7034 {
		t.Errorf("Lookup = (%v, %v)", lat, lon)
	}
}

func TestGeocoderUnknownZip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	geo := NewGeocoder("test-appid")
	geo.baseURL = srv.URL

	if _, _, err := geo.Lookup("0000000"); !errors.Is(err, apperrors.ErrUpstreamRequest) {
		t.Fatalf("Lookup error = %v, want ErrUpstreamRequest", err)
	}
}
