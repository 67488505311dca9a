package service_test

import (
	"context"
	"errors"
	"testing"

	"lunchbox/backend/internal/db"
	"lunchbox/backend/internal/model"
	"lunchbox/backend/internal/repository"
	"lunchbox/backend/internal/repository/mock"
	"lunchbox/backend/internal/repository/testutil"
	"lunchbox/backend/internal/service"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSettingsService_Save_WritesFixedKeyOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockSettingsRepository(ctrl)
	svc := service.NewSettingsService(mockRepo)
	ctx := context.Background()

	mockRepo.EXPECT().Replace(ctx, []model.Setting{
		{Key: model.SettingDeadline, Value: "10:30"},
		{Key: model.SettingReminderMinutes, Value: "15"},
		{Key: model.SettingMenuList, Value: `["Bibimbap","Ramen"]`},
		{Key: model.SettingSideMenuList, Value: `[]`},
		{Key: model.SettingEmployees, Value: `["alice","bob"]`},
		{Key: model.SettingGoogleSheetURL, Value: "https://docs.example.com/sheet"},
	}).Return(nil)

	err := svc.Save(ctx, &model.Settings{
		Deadline:        stringPtr("10:30"),
		ReminderMinutes: intPtr(15),
		MenuList:        listPtr("Bibimbap", "Ramen"),
		SideMenuList:    listPtr(),
		Employees:       listPtr("alice", "bob"),
		GoogleSheetURL:  stringPtr("https://docs.example.com/sheet"),
	})
	require.NoError(t, err)
}

func TestSettingsService_Save_PartialPayloadDropsOmittedKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockSettingsRepository(ctrl)
	svc := service.NewSettingsService(mockRepo)
	ctx := context.Background()

	mockRepo.EXPECT().Replace(ctx, []model.Setting{
		{Key: model.SettingDeadline, Value: "11:00"},
	}).Return(nil)

	require.NoError(t, svc.Save(ctx, &model.Settings{Deadline: stringPtr("11:00")}))
}

func TestSettingsService_Save_Nil(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewSettingsService(mock.NewMockSettingsRepository(ctrl))
	err := svc.Save(context.Background(), nil)
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestSettingsService_Get_DecodesKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockSettingsRepository(ctrl)
	svc := service.NewSettingsService(mockRepo)
	ctx := context.Background()

	mockRepo.EXPECT().List(ctx).Return([]model.Setting{
		{Key: model.SettingDeadline, Value: "10:30"},
		{Key: model.SettingReminderMinutes, Value: " 20 "},
		{Key: model.SettingMenuList, Value: `["A","B"]`},
		{Key: "legacyKey", Value: "ignored"},
		{Key: model.SettingDeadline, Value: "11:15"},
	}, nil)

	settings, err := svc.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "11:15", *settings.Deadline)
	require.Equal(t, 20, *settings.ReminderMinutes)
	require.Equal(t, []string{"A", "B"}, *settings.MenuList)
	require.Nil(t, settings.SideMenuList)
	require.Nil(t, settings.Employees)
	require.Nil(t, settings.GoogleSheetURL)
}

func TestSettingsService_Get_Failures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockSettingsRepository(ctrl)
	svc := service.NewSettingsService(mockRepo)
	ctx := context.Background()

	mockRepo.EXPECT().List(ctx).Return([]model.Setting{{Key: model.SettingReminderMinutes, Value: "soon"}}, nil)
	_, err := svc.Get(ctx)
	require.ErrorContains(t, err, "reminderMinutes")

	mockRepo.EXPECT().List(ctx).Return([]model.Setting{{Key: model.SettingEmployees, Value: "alice,bob"}}, nil)
	_, err = svc.Get(ctx)
	require.ErrorContains(t, err, "decode employees")

	dbErr := errors.New("no such table: settings")
	mockRepo.EXPECT().List(ctx).Return(nil, dbErr)
	_, err = svc.Get(ctx)
	require.ErrorIs(t, err, dbErr)
}

func TestSettingsService_RoundTrip(t *testing.T) {
	conn := testutil.NewTestDB(t)
	svc := service.NewSettingsService(repository.NewSettingsRepository(conn, db.SQLite, testutil.NewIDs(t)))
	ctx := context.Background()

	want := &model.Settings{
		Deadline:        stringPtr("10:45"),
		ReminderMinutes: intPtr(10),
		MenuList:        listPtr("Kimbap", "Bulgogi", "Bibimbap"),
		SideMenuList:    listPtr("Miso", "Kimchi"),
		Employees:       listPtr("alice", "bob", "carol"),
		GoogleSheetURL:  stringPtr("https://docs.example.com/sheet"),
	}
	require.NoError(t, svc.Save(ctx, want))

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)

	// A second save fully replaces the first.
	require.NoError(t, svc.Save(ctx, &model.Settings{Employees: listPtr("dave")}))
	got, err = svc.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, &model.Settings{Employees: listPtr("dave")}, got)
}
