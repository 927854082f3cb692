package lms

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client provisions student accounts on the university's LMS platform.
// When no base URL is configured it runs in dummy mode and generates
// credentials locally, which keeps local and test environments self-contained.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

type ProvisionResult struct {
	Username      string `json:"username"`
	ActivationKey string `json:"activation_key"`
	Platform      string `json:"platform"`
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

// ProvisionAccount creates an LMS account for the given student email.
// Endpoint: POST /v1/accounts
func (c *Client) ProvisionAccount(ctx context.Context, email string) (*ProvisionResult, error) {
	if email == "" {
		return nil, errors.New("missing student email")
	}

	if c.baseURL == "" {
		return dummyProvision(email)
	}
	if c.apiKey == "" {
		return nil, errors.New("missing lms api key")
	}

	body, err := json.Marshal(map[string]string{"email": email})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/accounts", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("lms provisioning failed: status %d", resp.StatusCode)
	}

	var result ProvisionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if result.Username == "" {
		result.Username = usernameFromEmail(email)
	}
	if result.Platform == "" {
		result.Platform = "Moodle"
	}
	return &result, nil
}

func dummyProvision(email string) (*ProvisionResult, error) {
	key, err := randomKey(6)
	if err != nil {
		return nil, err
	}
	return &ProvisionResult{
		Username:      usernameFromEmail(email),
		ActivationKey: "LMS-" + key,
		Platform:      "Moodle",
	}, nil
}

func usernameFromEmail(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}

func randomKey(n int) (string, error) {
	const chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = chars[int(b[i])%len(chars)]
	}
	return string(b), nil
}
