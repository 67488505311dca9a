package http_test

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"lunchbox/backend/internal/calendar"
	"lunchbox/backend/internal/db"
	"lunchbox/backend/internal/handler"
	transport "lunchbox/backend/internal/http"
	"lunchbox/backend/internal/repository"
	"lunchbox/backend/internal/repository/testutil"
	"lunchbox/backend/internal/service"

	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()
	conn := testutil.NewTestDB(t)
	ids := testutil.NewIDs(t)
	dates, err := calendar.NewNormalizer("Europe/Moscow")
	require.NoError(t, err)

	orders := service.NewOrderService(repository.NewOrderRepository(conn, db.SQLite, ids), dates, nil)
	settings := service.NewSettingsService(repository.NewSettingsRepository(conn, db.SQLite, ids))

	return transport.NewRouter(handler.NewWebhookHandler(orders, settings), transport.RouterOptions{
		WebhookPath: "/exec",
		CORSOrigins: []string{"*"},
	})
}

func call(t *testing.T, e *echo.Echo, method, target, body string) map[string]any {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, "text/plain")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())
	require.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "success", payload["status"])
	return payload
}

func TestRouter_OrderWriteThenRead(t *testing.T) {
	e := newTestRouter(t)
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)
	today := time.Now().In(loc).Format(calendar.DateLayout)

	call(t, e, nethttp.MethodPost, "/exec",
		`{"date":"`+today+`","user":"alice","menu":"Bibimbap","time":"11:02","isGuest":false}`)
	call(t, e, nethttp.MethodPost, "/",
		`{"date":"`+today+`","user":"alice","menu":"Ramen","time":"11:09","isGuest":true}`)

	payload := call(t, e, nethttp.MethodGet, "/exec", "")
	orders := payload["orders"].([]any)
	require.Len(t, orders, 1)
	require.Equal(t, map[string]any{
		"date": today, "user": "alice", "menu": "Ramen", "time": "11:09", "isGuest": true,
	}, orders[0])
}

func TestRouter_SettingsRoundTrip(t *testing.T) {
	e := newTestRouter(t)

	call(t, e, nethttp.MethodPost, "/exec", `{"action":"saveSettings","settings":{
		"deadline":"10:30","reminderMinutes":10,
		"menuList":["Kimbap","Bulgogi"],"sideMenuList":["Miso"],
		"employees":["alice","bob"],"googleSheetUrl":"https://docs.example.com/sheet"}}`)

	payload := call(t, e, nethttp.MethodGet, "/exec?action=getSettings", "")
	require.Equal(t, map[string]any{
		"deadline":        "10:30",
		"reminderMinutes": float64(10),
		"menuList":        []any{"Kimbap", "Bulgogi"},
		"sideMenuList":    []any{"Miso"},
		"employees":       []any{"alice", "bob"},
		"googleSheetUrl":  "https://docs.example.com/sheet",
	}, payload["settings"])
}

func TestRouter_Health(t *testing.T) {
	e := newTestRouter(t)
	call(t, e, nethttp.MethodGet, "/healthz", "")
}
