package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mvelasco/cryptofolio/internal/config"
	"github.com/mvelasco/cryptofolio/internal/crypto"
	"github.com/mvelasco/cryptofolio/internal/logger"
	"github.com/mvelasco/cryptofolio/internal/mock"
	"github.com/mvelasco/cryptofolio/internal/service"
	"github.com/mvelasco/cryptofolio/internal/store"
	"github.com/mvelasco/cryptofolio/models"
)

// newTestServer assembles the full stack over in-memory stores and a mocked
// market adapter, and returns an httptest server running the real router.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockAdapter := mock.NewMockMarketAdapter(ctrl)
	mockAdapter.EXPECT().ListInstruments(gomock.Any()).Return([]models.Instrument{
		{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin", CurrentPrice: 60000},
		{ID: "ethereum", Symbol: "eth", Name: "Ethereum", CurrentPrice: 3000},
		{ID: "tether", Symbol: "usdt", Name: "Tether", CurrentPrice: 1},
	}, nil).AnyTimes()
	mockAdapter.EXPECT().MarketChart(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.MarketChart{Prices: [][]float64{{1, 60000}}}, nil).AnyTimes()

	log := logger.Nop()
	keychain := crypto.NewKeyChainService()

	session := store.NewMemoryStore()
	storages := &store.Storages{
		Session:   session,
		Users:     store.NewUserDirectory(session, keychain, log),
		Vault:     store.NewSessionVault(session, log),
		Magic:     store.NewMagicTokens(session, log),
		Attempts:  store.NewAttemptLog(session, log),
		Portfolio: store.NewPortfolioRepository(session, log),
		Settings:  store.NewSettingsRepository(store.NewMemoryStore(), log),
	}

	cfg := config.StructuredConfig{
		App: config.App{MagicTokenTTL: 10 * time.Minute, QuoteTTL: 15 * time.Second},
	}

	services := service.NewServices(storages, keychain, mockAdapter, cfg, log)
	server := httptest.NewServer(NewHandler(services, log).Init())
	t.Cleanup(server.Close)

	return server
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, payload
}

func registerAndLogin(t *testing.T, baseURL, email, password string) string {
	t.Helper()

	creds := models.CredentialsRequest{Email: email, Password: password}

	resp, _ := doJSON(t, http.MethodPost, baseURL+"/api/auth/register", "", creds)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, http.MethodPost, baseURL+"/api/auth/login", "", creds)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result models.TokenResponse
	require.NoError(t, json.Unmarshal(body, &result))
	require.NotEmpty(t, result.Token)

	return result.Token
}
