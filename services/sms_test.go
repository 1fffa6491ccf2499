package services

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"home-monitor/apperrors"
)

func TestSMSClientSend(t *testing.T) {
	var gotForm map[string]string
	var gotUser, gotPass string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, _ = r.BasicAuth()
		r.ParseForm()
		gotForm = map[string]string{
			"Body": r.PostFormValue("Body"),
			"From": r.PostFormValue("From"),
			"To":   r.PostFormValue("To"),
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"status":"queued"}`))
	}))
	defer srv.Close()

	client := NewSMSClient("AC123", "secret-token", "+15005550006", "+818012345678")
	client.baseURL = srv.URL

	if err := client.Send("Alarm triggered"); err != nil {
		t.Fatalf("Send: %v", err)
	}

	if gotUser != "AC123" || gotPass != "secret-token" {
		t.Errorf("basic auth = %q/%q", gotUser, gotPass)
	}
	if gotForm["Body"] != "Alarm triggered" || gotForm["From"] != "+15005550006" || gotForm["To"] != "+818012345678" {
		t.Errorf("form = %v", gotForm)
	}
}

func TestSMSClientUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":21211}`))
	}))
	defer srv.Close()

	client := NewSMSClient("AC123", "secret-token", "+15005550006", "+818012345678")
	client.baseURL = srv.URL

	if err := client.Send("Alarm triggered"); !errors.Is(err, apperrors.ErrUpstreamRequest) {
		t.Fatalf("Send error = %v, want ErrUpstreamRequest", err)
	}
}
