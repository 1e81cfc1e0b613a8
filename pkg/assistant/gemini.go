package assistant

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"chequetrack/models"
)

// fallbackResponse is returned when the provider answers without usable text.
const fallbackResponse = "I couldn't generate a response. Please try again."

// Client is a minimal Gemini generateContent client. It holds no
// conversation state; every call is a single request/response.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient creates a Gemini client. An empty apiKey yields a client whose
// calls all fail with ErrNotConfigured.
func NewClient(apiKey, baseURL, model string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Available reports whether an API key is configured.
func (c *Client) Available() bool {
	return c.apiKey != ""
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	SystemInstruction *content  `json:"system_instruction,omitempty"`
	Contents          []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// QueryCheques sends the user's question together with a summary of the full
// cheque set and returns the model's answer verbatim.
func (c *Client) QueryCheques(question string, cheques []models.Cheque) (string, error) {
	if !c.Available() {
		return "", ErrNotConfigured
	}

	userText := fmt.Sprintf("Here is the current cheque data:\n\n%s\n\nUser question: %s",
		SummarizeCheques(cheques), question)

	reqBody := generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction}}},
		Contents:          []content{{Role: "user", Parts: []part{{Text: userText}}}},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal gemini request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed reading gemini response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("gemini non-success status=%d body=%s", resp.StatusCode, truncate(string(body), 400))
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse gemini response: %s", truncate(string(body), 400))
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return fallbackResponse, nil
	}
	var texts []string
	for _, p := range parsed.Candidates[0].Content.Parts {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	answer := strings.TrimSpace(strings.Join(texts, ""))
	if answer == "" {
		return fallbackResponse, nil
	}
	return answer, nil
}

func truncate(s string, maxChars int) string {
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return string(runes[:maxChars])
}
