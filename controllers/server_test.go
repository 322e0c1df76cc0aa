package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"smartcloset/services"
	"smartcloset/session"
	"smartcloset/test"
	"smartcloset/wardrobe"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const pngBase64 = "iVBORw0KGgo="

// newTestDeps wires a seeded wardrobe and in-memory session storage around
// the given stylist.
func newTestDeps(stylist services.StylistProvider) Dependencies {
	return Dependencies{
		Wardrobe:     wardrobe.NewSeededStore(),
		Inspirations: wardrobe.NewInspirationBoard(),
		Session:      session.NewStore(test.NewMemoryKV(), 0),
		Chat:         session.NewChatHistory(test.NewMemoryKV()),
		Stylist:      stylist,
		Weather:      services.NewMockWeather(),
	}
}

func newTestServer(t *testing.T, stylist services.StylistProvider) (*echo.Echo, Dependencies) {
	t.Helper()
	deps := newTestDeps(stylist)
	return SetupServer(deps), deps
}

func offlineStylist(t *testing.T) services.StylistProvider {
	return services.NewStylistGateway("", test.FailIfCalledInvoker{T: t}, nil)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
}
