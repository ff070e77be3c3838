package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/incident_alert_system/internal/models"
	"github.com/shenikar/incident_alert_system/internal/service"
	"github.com/shenikar/incident_alert_system/internal/service/mocks"
	"github.com/shenikar/incident_alert_system/pkg/e"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestLocationService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestLocationService(t *testing.T) (service.LocationService, *mocks.MockUserLocationRepository, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	locationsMock := mocks.NewMockUserLocationRepository(ctrl)
	usersMock := mocks.NewMockUserRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return service.NewLocationService(locationsMock, usersMock, logger), locationsMock, usersMock
}

func TestUpdateLocation_Success(t *testing.T) {
	// Подготовка
	svc, locationsMock, usersMock := newTestLocationService(t)
	ctx := context.Background()
	userID := uuid.New()
	in := service.LocationInput{Latitude: 55.75, Longitude: 37.61, AccuracyMeters: 12}

	// Ожидания
	usersMock.EXPECT().
		GetByID(ctx, userID).
		Return(&models.User{ID: userID, LocationSharingEnabled: true}, nil).
		Times(1)

	locationsMock.EXPECT().
		ReplaceActive(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, loc *models.UserLocation) (int64, error) {
			assert.Equal(t, userID, loc.UserID)
			assert.True(t, loc.IsActive)
			assert.Equal(t, 55.75, loc.Latitude)
			loc.ID = uuid.New()
			return 1, nil
		}).Times(1)

	usersMock.EXPECT().
		TouchLastActive(ctx, userID, gomock.Any()).
		Return(nil).
		Times(1)

	// Действие
	location, err := svc.UpdateLocation(ctx, userID, in)

	// Проверки
	require.NoError(t, err)
	assert.True(t, location.IsActive)
	assert.Equal(t, userID, location.UserID)
}

func TestUpdateLocation_SharingDisabled(t *testing.T) {
	// Подготовка
	svc, locationsMock, usersMock := newTestLocationService(t)
	ctx := context.Background()
	userID := uuid.New()
	in := service.LocationInput{Latitude: 55.75, Longitude: 37.61}

	// Ожидания
	usersMock.EXPECT().
		GetByID(ctx, userID).
		Return(&models.User{ID: userID, LocationSharingEnabled: false}, nil).
		Times(1)

	locationsMock.EXPECT().ReplaceActive(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := svc.UpdateLocation(ctx, userID, in)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrValidation)
}

func TestUpdateLocation_InvalidCoordinates(t *testing.T) {
	svc, locationsMock, usersMock := newTestLocationService(t)
	in := service.LocationInput{Latitude: 55.75, Longitude: 200}

	usersMock.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)
	locationsMock.EXPECT().ReplaceActive(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateLocation(context.Background(), uuid.New(), in)
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrValidation)
}

func TestUpdateLocation_UserNotFound(t *testing.T) {
	// Подготовка
	svc, _, usersMock := newTestLocationService(t)
	ctx := context.Background()
	userID := uuid.New()
	in := service.LocationInput{Latitude: 55.75, Longitude: 37.61}

	// Ожидания
	usersMock.EXPECT().
		GetByID(ctx, userID).
		Return(nil, e.ErrNotFound).
		Times(1)

	// Действие
	_, err := svc.UpdateLocation(ctx, userID, in)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestCurrentLocation_Success(t *testing.T) {
	// Подготовка
	svc, locationsMock, _ := newTestLocationService(t)
	ctx := context.Background()
	userID := uuid.New()
	expected := &models.UserLocation{ID: uuid.New(), UserID: userID, IsActive: true}

	// Ожидания
	locationsMock.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(expected, nil).
		Times(1)

	// Действие
	location, err := svc.CurrentLocation(ctx, userID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, location)
}

func TestCurrentLocation_NotFound(t *testing.T) {
	// Подготовка
	svc, locationsMock, _ := newTestLocationService(t)
	ctx := context.Background()
	userID := uuid.New()

	// Ожидания
	locationsMock.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(nil, e.ErrNotFound).
		Times(1)

	// Действие
	_, err := svc.CurrentLocation(ctx, userID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrNotFound)
}
