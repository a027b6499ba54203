//go:build integration

package e2e

// End-to-end tests against real MongoDB + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcMongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"

	"restopanel/internal/bus"
	"restopanel/internal/config"
	"restopanel/internal/datamode"
	"restopanel/internal/infra"
	"restopanel/internal/repository"
	"restopanel/internal/router"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Suite setup ──────────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	tokens map[string]string // role → JWT
}

func (e *testEnv) token(role string) string { return e.tokens[role] }

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	mongoC, err := tcMongo.RunContainer(ctx, testcontainers.WithImage("mongo:7"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = mongoC.Terminate(ctx) })
	mongoURL, err := mongoC.ConnectionString(ctx)
	require.NoError(t, err)

	redisC, err := tcRedis.RunContainer(ctx, testcontainers.WithImage("redis:7-alpine"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = redisC.Terminate(ctx) })
	redisURL, err := redisC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		MongoURI:           mongoURL,
		MongoDatabase:      "restopanel_test",
		RedisURL:           redisURL,
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		WorkerPoolSize:     1,
		PDFStoragePath:     t.TempDir(),
	}

	db, err := infra.NewMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	require.NoError(t, err)
	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	// Remote mode is exercised with the same demo dataset mock mode ships.
	require.NoError(t, repository.SeedFixtures(repository.NewMongoBundle(db)))

	b := bus.New()
	modes := datamode.NewStore(rdb, b, true)
	relayCtx, cancel := context.WithCancel(ctx)
	t.Cleanup(cancel)
	go modes.Listen(relayCtx)

	srv := httptest.NewServer(router.New(cfg, db, rdb, b, modes))
	t.Cleanup(srv.Close)

	env := &testEnv{server: srv, tokens: map[string]string{}}
	for role, password := range map[string]string{
		"owner":  "owner123",
		"host":   "host123",
		"server": "server123",
	} {
		resp := do(t, srv, "POST", "/v1/auth/signin",
			jsonBody(t, map[string]string{"email": role + "@restaurant.com", "password": password}), "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body struct {
			AccessToken string `json:"access_token"`
		}
		decodeJSON(t, resp, &body)
		require.NotEmpty(t, body.AccessToken)
		env.tokens[role] = body.AccessToken
	}
	return env
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_ModeSwitchServesRemoteData(t *testing.T) {
	env := setupTestEnv(t)

	// default mode is mock
	resp := do(t, env.server, "GET", "/v1/datamode", nil, env.token("owner"))
	var mode struct {
		Mode             string `json:"mode"`
		RemoteConfigured bool   `json:"remoteConfigured"`
	}
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &mode)
	assert.Equal(t, "mock", mode.Mode)
	assert.True(t, mode.RemoteConfigured)

	// flip to remote; the seeded dataset is served from mongo now
	resp = do(t, env.server, "PUT", "/v1/datamode", jsonBody(t, map[string]string{"mode": "remote"}), env.token("owner"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, env.server, "GET", "/v1/tables?restaurantId="+repository.FixtureRestaurantID, nil, env.token("owner"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var tables []map[string]any
	decodeJSON(t, resp, &tables)
	assert.Len(t, tables, 6)
}

func TestE2E_ReservationLifecycleOverHTTP(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, "POST", "/v1/reservations", jsonBody(t, map[string]any{
		"restaurantId": repository.FixtureRestaurantID,
		"customerName": "Greta Halvorsen",
		"partySize":    2,
		"dateTime":     time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339),
	}), env.token("host"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var res struct {
		ID                 string `json:"id"`
		Status             string `json:"status"`
		ConfirmationNumber string `json:"confirmationNumber"`
	}
	decodeJSON(t, resp, &res)
	assert.Equal(t, "pending", res.Status)
	require.NotEmpty(t, res.ConfirmationNumber)

	resp = do(t, env.server, "POST", "/v1/reservations/"+res.ID+"/confirm", nil, env.token("host"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// seated → completed is fine; pending → completed was already rejected
	resp = do(t, env.server, "POST", "/v1/reservations/"+res.ID+"/complete", nil, env.token("host"))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, env.server, "GET", "/v1/reservations/lookup?confirmation="+res.ConfirmationNumber, nil, env.token("host"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var found struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decodeJSON(t, resp, &found)
	assert.Equal(t, res.ID, found.ID)
	assert.Equal(t, "confirmed", found.Status)
}

func TestE2E_CapabilitiesGateRoutes(t *testing.T) {
	env := setupTestEnv(t)

	// a server may not manage reservations
	resp := do(t, env.server, "GET", "/v1/reservations?restaurantId="+repository.FixtureRestaurantID, nil, env.token("server"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// but POS is theirs
	resp = do(t, env.server, "GET", "/v1/orders?restaurantId="+repository.FixtureRestaurantID, nil, env.token("server"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// a host gets the opposite treatment
	resp = do(t, env.server, "GET", "/v1/orders?restaurantId="+repository.FixtureRestaurantID, nil, env.token("host"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// billing stays with the owner
	resp = do(t, env.server, "GET", "/v1/orders/billing-summary?restaurantId="+repository.FixtureRestaurantID, nil, env.token("server"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
	resp = do(t, env.server, "GET", "/v1/orders/billing-summary?restaurantId="+repository.FixtureRestaurantID, nil, env.token("owner"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestE2E_UnauthenticatedIsRejected(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, "GET", "/v1/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
