package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"lunchbox/backend/internal/logger"
	"lunchbox/backend/internal/model"
	"lunchbox/backend/internal/repository"
)

//go:generate mockgen -source=settings_service.go -destination=mock/mock_settings_service.go -package=mock

// SettingsService reads and replaces the singleton settings record.
type SettingsService interface {
	// Get decodes the stored settings. Keys that are not stored stay nil.
	Get(ctx context.Context) (*model.Settings, error)
	// Save replaces the stored record. Nil fields are not written.
	Save(ctx context.Context, settings *model.Settings) error
}

type settingsService struct {
	repo repository.SettingsRepository
}

// NewSettingsService creates a new settings service.
func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

func (s *settingsService) Get(ctx context.Context) (*model.Settings, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}

	settings := &model.Settings{}
	for _, row := range rows {
		switch row.Key {
		case model.SettingDeadline:
			settings.Deadline = stringPtr(row.Value)
		case model.SettingGoogleSheetURL:
			settings.GoogleSheetURL = stringPtr(row.Value)
		case model.SettingReminderMinutes:
			minutes, err := strconv.Atoi(strings.TrimSpace(row.Value))
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", row.Key, err)
			}
			settings.ReminderMinutes = &minutes
		case model.SettingMenuList:
			if settings.MenuList, err = decodeList(row); err != nil {
				return nil, err
			}
		case model.SettingSideMenuList:
			if settings.SideMenuList, err = decodeList(row); err != nil {
				return nil, err
			}
		case model.SettingEmployees:
			if settings.Employees, err = decodeList(row); err != nil {
				return nil, err
			}
		default:
			logger.Debug("unknown setting skipped", "module", "service", "action", "fetch", "resource", "settings", "result", "ok", "key", row.Key)
		}
	}
	return settings, nil
}

func (s *settingsService) Save(ctx context.Context, settings *model.Settings) error {
	if settings == nil {
		return invalidf("settings are required")
	}

	var rows []model.Setting
	if settings.Deadline != nil {
		rows = append(rows, model.Setting{Key: model.SettingDeadline, Value: *settings.Deadline})
	}
	if settings.ReminderMinutes != nil {
		rows = append(rows, model.Setting{Key: model.SettingReminderMinutes, Value: strconv.Itoa(*settings.ReminderMinutes)})
	}
	for _, list := range []struct {
		key   string
		value *[]string
	}{
		{model.SettingMenuList, settings.MenuList},
		{model.SettingSideMenuList, settings.SideMenuList},
		{model.SettingEmployees, settings.Employees},
	} {
		if list.value == nil {
			continue
		}
		encoded, err := encodeList(*list.value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", list.key, err)
		}
		rows = append(rows, model.Setting{Key: list.key, Value: encoded})
	}
	if settings.GoogleSheetURL != nil {
		rows = append(rows, model.Setting{Key: model.SettingGoogleSheetURL, Value: *settings.GoogleSheetURL})
	}

	if err := s.repo.Replace(ctx, rows); err != nil {
		return fmt.Errorf("replace settings: %w", err)
	}
	logger.Info("settings saved", "module", "service", "action", "update", "resource", "settings", "result", "ok", "keys", len(rows))
	return nil
}

// encodeList stores a nil list as "[]" so it reads back as an empty list.
func encodeList(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeList(row model.Setting) (*[]string, error) {
	list := []string{}
	if err := json.Unmarshal([]byte(row.Value), &list); err != nil {
		return nil, fmt.Errorf("decode %s: %w", row.Key, err)
	}
	return &list, nil
}

func stringPtr(s string) *string {
	return &s
}
