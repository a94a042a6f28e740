package requests

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
	"wallet/src/utils"
)

// ExternalAPIService wraps the HTTP client shared by the quote providers.
type ExternalAPIService struct {
	Client    *http.Client
	UserAgent string
}

// NewExternalAPIService creates a new instance of ExternalAPIService
func NewExternalAPIService(timeout time.Duration, userAgent string) *ExternalAPIService {
	return &ExternalAPIService{
		Client:    &http.Client{Timeout: timeout},
		UserAgent: userAgent,
	}
}

// makeRequest is a helper function to make HTTP requests, supporting optional query parameters
func (s *ExternalAPIService) makeRequest(ctx context.Context, method, endpoint string, params url.Values) (*http.Response, error) {
	if params != nil {
		endpoint = endpoint + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if s.UserAgent != "" {
		req.Header.Set("User-Agent", s.UserAgent)
	}

	return s.Client.Do(req)
}

// Get makes a GET request to the external service, accepting optional query parameters
func (s *ExternalAPIService) Get(ctx context.Context, endpoint string, params url.Values) (*http.Response, error) {
	return s.makeRequest(ctx, http.MethodGet, endpoint, params)
}

// GetJSON performs a GET and decodes a 2xx JSON body into out. Other status
// codes are returned as utils.HTTPError.
func (s *ExternalAPIService) GetJSON(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	resp, err := s.Get(ctx, endpoint, params)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return utils.NewHTTPError(resp.StatusCode, fmt.Sprintf("%s: %s", endpoint, resp.Status))
	}

	if err := json.Unmarshal(responseBody, out); err != nil {
		return fmt.Errorf("decode %s: %w", endpoint, err)
	}
	return nil
}
