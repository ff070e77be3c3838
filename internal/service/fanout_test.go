package service_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/incident_alert_system/internal/models"
	"github.com/shenikar/incident_alert_system/internal/push"
	push_mocks "github.com/shenikar/incident_alert_system/internal/push/mocks"
	"github.com/shenikar/incident_alert_system/internal/service"
	"github.com/shenikar/incident_alert_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fanoutServiceMocks struct {
	incidents     *mocks.MockIncidentRepository
	locations     *mocks.MockUserLocationRepository
	notifications *mocks.MockNotificationRepository
	publisher     *push_mocks.MockPublisher
}

// newTestFanoutService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestFanoutService(t *testing.T) (service.FanoutService, fanoutServiceMocks) {
	ctrl := gomock.NewController(t)
	m := fanoutServiceMocks{
		incidents:     mocks.NewMockIncidentRepository(ctrl),
		locations:     mocks.NewMockUserLocationRepository(ctrl),
		notifications: mocks.NewMockNotificationRepository(ctrl),
		publisher:     push_mocks.NewMockPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	svc := service.NewFanoutService(m.incidents, m.locations, m.notifications, m.publisher, logger)
	return svc, m
}

func eligibleUser(token string) *models.User {
	return &models.User{
		ID:                   uuid.New(),
		NotificationsEnabled: true,
		PushToken:            token,
	}
}

func TestNotifyNewIncident_FiltersIneligibleUsers(t *testing.T) {
	// Подготовка
	svc, m := newTestFanoutService(t)
	ctx := context.Background()
	reporterID := uuid.New()

	incident := &models.Incident{
		ID:           uuid.New(),
		ReporterID:   reporterID,
		Title:        "Авария на мосту",
		Latitude:     55.75,
		Longitude:    37.61,
		RadiusMeters: 500,
	}

	eligible := eligibleUser("token-eligible")
	reporter := &models.User{ID: reporterID, NotificationsEnabled: true, PushToken: "token-reporter"}
	disabled := &models.User{ID: uuid.New(), NotificationsEnabled: false, PushToken: "token-disabled"}
	noToken := &models.User{ID: uuid.New(), NotificationsEnabled: true, PushToken: ""}

	// Ожидания
	m.locations.EXPECT().
		FindDistinctUsersWithinRadius(ctx, incident.Latitude, incident.Longitude, incident.RadiusMeters).
		Return([]*models.User{eligible, reporter, disabled, noToken}, nil).
		Times(1)

	// Запись уведомления создается только для подходящего пользователя
	m.notifications.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.Notification) error {
			assert.Equal(t, eligible.ID, n.UserID)
			assert.Equal(t, models.NotificationNewIncident, n.Type)
			assert.Equal(t, models.NotificationPending, n.Status)
			require.NotNil(t, n.IncidentID)
			assert.Equal(t, incident.ID, *n.IncidentID)
			n.ID = uuid.New()
			return nil
		}).Times(1)

	m.incidents.EXPECT().
		AddNotifications(ctx, incident.ID, 1).
		Return(nil).
		Times(1)

	m.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, job push.BatchJob) error {
			assert.Equal(t, incident.ID, job.IncidentID)
			assert.Equal(t, string(models.NotificationNewIncident), job.Kind)
			require.Len(t, job.Targets, 1)
			assert.Equal(t, eligible.ID, job.Targets[0].UserID)
			assert.Equal(t, "token-eligible", job.Targets[0].Token)
			assert.Equal(t, "confirm_incident", job.Data["action"])
			return nil
		}).Times(1)

	// Действие
	count, err := svc.NotifyNewIncident(ctx, incident)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNotifyIncidentUpdate_ExcludesVoters(t *testing.T) {
	// Подготовка
	svc, m := newTestFanoutService(t)
	ctx := context.Background()

	incident := &models.Incident{
		ID:           uuid.New(),
		ReporterID:   uuid.New(),
		Title:        "Пожар на складе",
		Latitude:     55.75,
		Longitude:    37.61,
		RadiusMeters: 1000,
	}

	voter := eligibleUser("token-voter")
	bystander := eligibleUser("token-bystander")

	// Ожидания
	m.locations.EXPECT().
		FindDistinctUsersWithinRadius(ctx, incident.Latitude, incident.Longitude, incident.RadiusMeters).
		Return([]*models.User{voter, bystander}, nil).
		Times(1)

	m.notifications.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.Notification) error {
			assert.Equal(t, bystander.ID, n.UserID)
			assert.Equal(t, models.NotificationIncidentUpdate, n.Type)
			n.ID = uuid.New()
			return nil
		}).Times(1)

	// Счетчик уведомлений инцидента растет только при первичной рассылке
	m.incidents.EXPECT().AddNotifications(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	m.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, job push.BatchJob) error {
			require.Len(t, job.Targets, 1)
			assert.Equal(t, bystander.ID, job.Targets[0].UserID)
			assert.Equal(t, "view_incident", job.Data["action"])
			return nil
		}).Times(1)

	// Действие
	count, err := svc.NotifyIncidentUpdate(ctx, incident, []uuid.UUID{voter.ID})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNotifyNewIncident_NoEligibleUsers(t *testing.T) {
	// Подготовка
	svc, m := newTestFanoutService(t)
	ctx := context.Background()
	incident := &models.Incident{
		ID:           uuid.New(),
		ReporterID:   uuid.New(),
		Title:        "Тихий район",
		Latitude:     55.75,
		Longitude:    37.61,
		RadiusMeters: 300,
	}

	// Ожидания
	m.locations.EXPECT().
		FindDistinctUsersWithinRadius(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*models.User{}, nil).
		Times(1)

	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)
	m.incidents.EXPECT().AddNotifications(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	count, err := svc.NotifyNewIncident(ctx, incident)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestNotifyNewIncident_PublishFailureKeepsNotificationsPending(t *testing.T) {
	// Подготовка
	svc, m := newTestFanoutService(t)
	ctx := context.Background()
	incident := &models.Incident{
		ID:           uuid.New(),
		ReporterID:   uuid.New(),
		Title:        "Прорыв трубы",
		Latitude:     55.75,
		Longitude:    37.61,
		RadiusMeters: 400,
	}
	user := eligibleUser("token-1")

	// Ожидания
	m.locations.EXPECT().
		FindDistinctUsersWithinRadius(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*models.User{user}, nil).
		Times(1)
	m.notifications.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	m.incidents.EXPECT().AddNotifications(ctx, incident.ID, 1).Return(nil).Times(1)
	m.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(fmt.Errorf("redis: connection refused")).
		Times(1)

	// Действие: сбой очереди не считается ошибкой рассылки,
	// записи остаются PENDING до ретрай-свипа
	count, err := svc.NotifyNewIncident(ctx, incident)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNotifyNewIncident_NotificationCreateFailureSkipsTarget(t *testing.T) {
	// Подготовка
	svc, m := newTestFanoutService(t)
	ctx := context.Background()
	incident := &models.Incident{
		ID:           uuid.New(),
		ReporterID:   uuid.New(),
		Title:        "ДТП",
		Latitude:     55.75,
		Longitude:    37.61,
		RadiusMeters: 800,
	}
	broken := eligibleUser("token-broken")
	healthy := eligibleUser("token-healthy")

	// Ожидания
	m.locations.EXPECT().
		FindDistinctUsersWithinRadius(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*models.User{broken, healthy}, nil).
		Times(1)

	m.notifications.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.Notification) error {
			if n.UserID == broken.ID {
				return fmt.Errorf("insert failed")
			}
			n.ID = uuid.New()
			return nil
		}).Times(2)

	m.incidents.EXPECT().AddNotifications(ctx, incident.ID, 1).Return(nil).Times(1)
	m.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, job push.BatchJob) error {
			require.Len(t, job.Targets, 1)
			assert.Equal(t, healthy.ID, job.Targets[0].UserID)
			return nil
		}).Times(1)

	// Действие
	count, err := svc.NotifyNewIncident(ctx, incident)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
