package routes

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cardvault/internal/client/internalcall"
	"cardvault/internal/config"
	"cardvault/internal/handlers"
	"cardvault/internal/middleware"
	"cardvault/internal/models"
	"cardvault/internal/repositories"
	"cardvault/internal/services/creditcard"
	"cardvault/internal/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreds = middleware.Credentials{Username: "test_user", Password: "test_password"}

type noFetcher struct{}

func (noFetcher) Fetch(context.Context, models.CardCriteria, pagination.PageRequest) (pagination.Page[models.CardView], error) {
	return pagination.Page[models.CardView]{}, nil
}

func newTestApp(t *testing.T, fetcher handlers.CardFetcher, rateLimit int) (*fiber.App, creditcard.Service) {
	t.Helper()

	repo := repositories.NewMemoryCreditCardRepository()
	svc := creditcard.NewService(repo, nil)

	app := NewApp()
	SetupRoutes(app, Options{
		Cards:                 handlers.NewCreditCardHandler(svc),
		InternalCall:          handlers.NewInternalCallHandler(fetcher),
		Health:                handlers.NewHealthHandler(repo, nil),
		Credentials:           testCreds,
		InternalCallRateLimit: rateLimit,
	})
	return app, svc
}

func authed(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Basic "+base64.StdEncoding.EncodeToString([]byte("test_user:test_password")))
	return req
}

func TestHealthIsPublic(t *testing.T) {
	app, _ := newTestApp(t, noFetcher{}, 0)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCardRoutesRequireCredentials(t *testing.T) {
	app, _ := newTestApp(t, noFetcher{}, 0)

	for _, target := range []string{"/credit-cards?customer_id=cust1", "/credit-cards/some-id", "/internal-credit-cards?customer_id=cust1"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, target)
	}

	resp, err := app.Test(authed(http.MethodGet, "/credit-cards?customer_id=cust1", ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestInternalCallRateLimit(t *testing.T) {
	app, _ := newTestApp(t, noFetcher{}, 1)

	resp, err := app.Test(authed(http.MethodGet, "/internal-credit-cards?customer_id=cust1", ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(authed(http.MethodGet, "/internal-credit-cards?customer_id=cust1", ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

// A caller instance delegates listing to a peer instance over real HTTP.
func TestInternalCallAgainstPeer(t *testing.T) {
	ctx := context.Background()

	peerApp, peerService := newTestApp(t, noFetcher{}, 0)
	for i, number := range []int64{5000000000000001, 5000000000000002, 5000000000000003, 5000000000000004, 5000000000000005} {
		card, err := peerService.Create(ctx, models.CardInput{Customer: "CUSTOMER_TEST_ID", Number: number, Brand: models.BrandVisa})
		require.NoError(t, err)
		if i == 1 {
			_, err = peerService.Deactivate(ctx, card.ID)
			require.NoError(t, err)
		}
	}
	_, err := peerService.Create(ctx, models.CardInput{Customer: "OTHER", Number: 5000000000000009, Brand: models.BrandVisa})
	require.NoError(t, err)

	peer := httptest.NewServer(adaptor.FiberApp(peerApp))
	defer peer.Close()

	client := internalcall.New(config.InternalCallConfig{
		URL:      peer.URL,
		Username: testCreds.Username,
		Password: testCreds.Password,
		Timeout:  5 * time.Second,
	}, nil)
	callerApp, _ := newTestApp(t, client, 0)

	resp, err := callerApp.Test(authed(http.MethodGet,
		"/internal-credit-cards?customer_id=CUSTOMER_TEST_ID&status=ACTIVE&page=1&size=3&sort=number,desc", ""), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var page pagination.WirePage[models.CardView]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Equal(t, int64(4), page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 3, page.Size)
	require.Len(t, page.Content, 1)
	assert.Equal(t, int64(5000000000000001), page.Content[0].Number)
}

func TestInternalCallPeerRejectsCredentials(t *testing.T) {
	peerApp, _ := newTestApp(t, noFetcher{}, 0)
	peer := httptest.NewServer(adaptor.FiberApp(peerApp))
	defer peer.Close()

	client := internalcall.New(config.InternalCallConfig{URL: peer.URL, Username: "test_user", Password: "wrong", Timeout: time.Second}, nil)
	callerApp, _ := newTestApp(t, client, 0)

	resp, err := callerApp.Test(authed(http.MethodGet, "/internal-credit-cards?customer_id=cust1", ""), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"external_client"`)
}
