// Package botverify validates bot tokens against the messaging platform.
//
// Verification is a single GET to the platform's getMe endpoint. It is the
// only network-bound step in the core, so it is always bounded by a
// timeout; a timeout counts as an invalid credential.
package botverify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"smmhub/pkg/server/store"
)

// DefaultBaseURL is the production bot API endpoint.
const DefaultBaseURL = "https://api.telegram.org"

// Verifier checks bot tokens against the external bot-identity API.
type Verifier struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
}

// New creates a Verifier. An empty baseURL selects the production API; a
// zero timeout defaults to five seconds.
func New(baseURL string, timeout time.Duration) *Verifier {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &Verifier{
		client:  &http.Client{},
		baseURL: baseURL,
		timeout: timeout,
	}
}

// Verify checks the token with the platform. Any non-2xx response, network
// failure, or timeout yields store.ErrInvalidCredential.
func (v *Verifier) Verify(ctx context.Context, token string) error {
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/bot%s/getMe", v.baseURL, token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidCredential, err)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidCredential, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", store.ErrInvalidCredential, resp.StatusCode)
	}
	return nil
}
