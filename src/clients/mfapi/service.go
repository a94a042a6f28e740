package mfapi

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"wallet/src/config"
	"wallet/src/utils/requests"
)

var ErrNoData = errors.New("no NAV data")

type MFAPIServiceClientI interface {
	GetScheme(ctx context.Context, code string) (*SchemeResponse, error)
	GetNAV(ctx context.Context, code string) (float64, error)
	GetSchemeName(ctx context.Context, code string) (string, error)
}

type MFAPIServiceClient struct {
	API     *requests.ExternalAPIService
	BaseURL string
}

// NewClient creates a new instance of MFAPIServiceClient
func NewClient(cfg *config.Config) *MFAPIServiceClient {
	return &MFAPIServiceClient{
		API:     requests.NewExternalAPIService(cfg.ExternalClients.Timeout, cfg.ExternalClients.UserAgent),
		BaseURL: strings.TrimRight(cfg.ExternalClients.MFAPI.BaseURL, "/"),
	}
}

// GetScheme fetches the scheme metadata and its NAV history, newest first.
func (c *MFAPIServiceClient) GetScheme(ctx context.Context, code string) (*SchemeResponse, error) {
	endpoint := fmt.Sprintf("%s/mf/%s", c.BaseURL, url.PathEscape(strings.TrimSpace(code)))

	var scheme SchemeResponse
	if err := c.API.GetJSON(ctx, endpoint, nil, &scheme); err != nil {
		return nil, err
	}
	return &scheme, nil
}

// GetNAV returns the latest NAV of a scheme.
func (c *MFAPIServiceClient) GetNAV(ctx context.Context, code string) (float64, error) {
	scheme, err := c.GetScheme(ctx, code)
	if err != nil {
		return 0, err
	}
	if len(scheme.Data) == 0 {
		return 0, fmt.Errorf("scheme %s: %w", code, ErrNoData)
	}
	nav := scheme.Data[0].NAV.InexactFloat64()
	if nav <= 0 {
		return 0, fmt.Errorf("scheme %s: non-positive NAV %s", code, scheme.Data[0].NAV)
	}
	return nav, nil
}

func (c *MFAPIServiceClient) GetSchemeName(ctx context.Context, code string) (string, error) {
	scheme, err := c.GetScheme(ctx, code)
	if err != nil {
		return "", err
	}
	if scheme.Meta.SchemeName == "" {
		return "", fmt.Errorf("scheme %s: %w", code, ErrNoData)
	}
	return scheme.Meta.SchemeName, nil
}
