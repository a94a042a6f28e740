package mfapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"wallet/src/clients/mfapi"
	"wallet/src/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMFAPIServiceClient(t *testing.T) {
	files := map[string]string{
		"/mf/119598": "testdata/scheme_119598.json",
		"/mf/118955": "testdata/scheme_numeric_nav.json",
		"/mf/100000": "testdata/scheme_empty.json",
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, ok := files[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		body, err := os.ReadFile(file)
		require.NoError(t, err)
		_, _ = w.Write(body)
	}))
	defer server.Close()

	cfg := config.Default()
	cfg.ExternalClients.MFAPI.BaseURL = server.URL + "/"
	client := mfapi.NewClient(cfg)
	ctx := context.Background()

	t.Run("quoted NAV decodes", func(t *testing.T) {
		nav, err := client.GetNAV(ctx, "119598")
		require.NoError(t, err)
		assert.InDelta(t, 91.4321, nav, 1e-9)
	})

	t.Run("numeric NAV decodes", func(t *testing.T) {
		nav, err := client.GetNAV(ctx, "118955")
		require.NoError(t, err)
		assert.Equal(t, 1789.5, nav)
	})

	t.Run("scheme metadata", func(t *testing.T) {
		scheme, err := client.GetScheme(ctx, "119598")
		require.NoError(t, err)
		assert.Equal(t, "SBI Mutual Fund", scheme.Meta.FundHouse)
		assert.Equal(t, int64(119598), scheme.Meta.SchemeCode)
		assert.Len(t, scheme.Data, 2)

		name, err := client.GetSchemeName(ctx, "119598")
		require.NoError(t, err)
		assert.Equal(t, "SBI Blue Chip Fund-Direct Plan-Growth", name)
	})

	t.Run("empty data is an error", func(t *testing.T) {
		_, err := client.GetNAV(ctx, "100000")
		assert.ErrorIs(t, err, mfapi.ErrNoData)
	})

	t.Run("server error is an error", func(t *testing.T) {
		_, err := client.GetNAV(ctx, "999999")
		assert.ErrorContains(t, err, "500")
	})
}
