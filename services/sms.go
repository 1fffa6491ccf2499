package services

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"home-monitor/apperrors"
)

const twilioAPI = "https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json"

// SMSClient sends alert texts through the Twilio Messages endpoint. The
// destination is a fixed operator number from configuration, not the owning
// user's phone.
type SMSClient struct {
	sid     string
	token   string
	from    string
	to      string
	baseURL string
	client  *http.Client
}

func NewSMSClient(sid, token, from, to string) *SMSClient {
	return &SMSClient{
		sid:     sid,
		token:   token,
		from:    from,
		to:      to,
		baseURL: fmt.Sprintf(twilioAPI, sid),
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// Send delivers one message to the configured operator number.
func (s *SMSClient) Send(body string) error {
	form := url.Values{}
	form.Set("Body", body)
	form.Set("From", s.from)
	form.Set("To", s.to)

	req, err := http.NewRequest(http.MethodPost, s.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return apperrors.ErrUpstreamRequest
	}
	req.SetBasicAuth(s.sid, s.token)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("sms request failed: %v", err)
		return apperrors.ErrUpstreamRequest
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		payload, _ := io.ReadAll(resp.Body)
		log.Printf("sms request returned %d: %s", resp.StatusCode, string(payload))
		return apperrors.ErrUpstreamRequest
	}
	return nil
}
