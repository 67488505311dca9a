package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"lunchbox/backend/internal/model"
	"lunchbox/backend/internal/service"
)

// RequestKind is the explicit discriminator for webhook calls.
type RequestKind int

const (
	KindSaveOrder RequestKind = iota + 1
	KindSaveSettings
	KindTodayOrders
	KindGetSettings
)

func (k RequestKind) String() string {
	switch k {
	case KindSaveOrder:
		return "saveOrder"
	case KindSaveSettings:
		return ActionSaveSettings
	case KindTodayOrders:
		return "getOrders"
	case KindGetSettings:
		return ActionGetSettings
	default:
		return "unknown"
	}
}

// Action values accepted on the wire.
const (
	ActionSaveSettings = "saveSettings"
	ActionGetSettings  = "getSettings"
)

// maxBodyBytes bounds a POST body; real payloads are a few hundred bytes.
const maxBodyBytes = 64 << 10

// writeEnvelope is the raw POST body. Without an action it is an order.
type writeEnvelope struct {
	Action   string          `json:"action"`
	Settings *model.Settings `json:"settings"`
	Date     string          `json:"date"`
	User     string          `json:"user"`
	Menu     string          `json:"menu"`
	Time     string          `json:"time"`
	IsGuest  bool            `json:"isGuest"`
}

// writeRequest is a validated POST: exactly one of Order or Settings is set
// according to Kind.
type writeRequest struct {
	Kind     RequestKind
	Order    model.Order
	Settings *model.Settings
}

// parseWriteRequest decodes a POST body into a tagged request. Every failure
// wraps service.ErrInvalid.
func parseWriteRequest(body io.Reader) (writeRequest, error) {
	var env writeEnvelope
	dec := json.NewDecoder(io.LimitReader(body, maxBodyBytes))
	if err := dec.Decode(&env); err != nil {
		if errors.Is(err, io.EOF) {
			return writeRequest{}, fmt.Errorf("%w: empty body", service.ErrInvalid)
		}
		return writeRequest{}, fmt.Errorf("%w: malformed JSON: %v", service.ErrInvalid, err)
	}

	switch env.Action {
	case "":
		return writeRequest{
			Kind: KindSaveOrder,
			Order: model.Order{
				Date:    env.Date,
				User:    env.User,
				Menu:    env.Menu,
				Time:    env.Time,
				IsGuest: env.IsGuest,
			},
		}, nil
	case ActionSaveSettings:
		if env.Settings == nil {
			return writeRequest{}, fmt.Errorf("%w: settings object is required", service.ErrInvalid)
		}
		return writeRequest{Kind: KindSaveSettings, Settings: env.Settings}, nil
	default:
		return writeRequest{}, fmt.Errorf("%w: unknown action %q", service.ErrInvalid, env.Action)
	}
}

// parseReadKind picks the GET variant. Anything but getSettings reads orders.
func parseReadKind(action string) RequestKind {
	if action == ActionGetSettings {
		return KindGetSettings
	}
	return KindTodayOrders
}
