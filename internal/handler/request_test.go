package handler

import (
	"strings"
	"testing"

	"lunchbox/backend/internal/model"
	"lunchbox/backend/internal/service"

	"github.com/stretchr/testify/require"
)

func TestParseWriteRequest_Order(t *testing.T) {
	req, err := parseWriteRequest(strings.NewReader(`{"date":"2024-01-10","user":"alice","menu":"Bibimbap + Miso","time":"11:02","isGuest":true}`))
	require.NoError(t, err)
	require.Equal(t, KindSaveOrder, req.Kind)
	require.Equal(t, model.Order{Date: "2024-01-10", User: "alice", Menu: "Bibimbap + Miso", Time: "11:02", IsGuest: true}, req.Order)
	require.Nil(t, req.Settings)
}

func TestParseWriteRequest_Settings(t *testing.T) {
	req, err := parseWriteRequest(strings.NewReader(`{"action":"saveSettings","settings":{"deadline":"10:30","menuList":["A","B"]}}`))
	require.NoError(t, err)
	require.Equal(t, KindSaveSettings, req.Kind)
	require.Equal(t, "10:30", *req.Settings.Deadline)
	require.Equal(t, []string{"A", "B"}, *req.Settings.MenuList)
	require.Nil(t, req.Settings.Employees)
}

func TestParseWriteRequest_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty":            ``,
		"malformed":        `{"user":`,
		"unknown action":   `{"action":"dropTables"}`,
		"missing settings": `{"action":"saveSettings"}`,
		"wrong type":       `{"user":"alice","isGuest":"yes"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseWriteRequest(strings.NewReader(body))
			require.ErrorIs(t, err, service.ErrInvalid)
		})
	}
}

func TestParseReadKind(t *testing.T) {
	require.Equal(t, KindGetSettings, parseReadKind("getSettings"))
	require.Equal(t, KindTodayOrders, parseReadKind(""))
	require.Equal(t, KindTodayOrders, parseReadKind("getOrders"))
	require.Equal(t, "saveSettings", KindSaveSettings.String())
}
