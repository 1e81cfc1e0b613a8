package alert

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TwilioSender delivers alerts as WhatsApp messages through the Twilio
// Messages API.
type TwilioSender struct {
	baseURL    string
	accountSID string
	authToken  string
	from       string // including the "whatsapp:" prefix
	to         string
	httpClient *http.Client
}

func NewTwilioSender(baseURL, accountSID, authToken, from, to string, timeout time.Duration) *TwilioSender {
	return &TwilioSender{
		baseURL:    strings.TrimRight(baseURL, "/"),
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		to:         to,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type twilioMessageResponse struct {
	SID string `json:"sid"`
}

// Send posts one message and returns an error unless Twilio accepted it.
func (s *TwilioSender) Send(body string) error {
	form := url.Values{}
	form.Set("From", s.from)
	form.Set("To", "whatsapp:"+s.to)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", s.baseURL, s.accountSID)
	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create twilio request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(s.accountSID, s.authToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("twilio request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed reading twilio response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("twilio non-success status=%d body=%s", resp.StatusCode, truncate(string(respBody), 400))
	}

	var parsed twilioMessageResponse
	_ = json.Unmarshal(respBody, &parsed)
	if parsed.SID == "" {
		return fmt.Errorf("twilio response missing message sid: %s", truncate(string(respBody), 400))
	}
	return nil
}

func truncate(s string, maxChars int) string {
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return string(runes[:maxChars])
}
