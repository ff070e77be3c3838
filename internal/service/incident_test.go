package service_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

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

type incidentServiceMocks struct {
	repo      *mocks.MockIncidentRepository
	users     *mocks.MockUserRepository
	locations *mocks.MockUserLocationRepository
	ledger    *mocks.MockConfirmationLedger
	fanout    *mocks.MockFanoutService
}

// newTestIncidentService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (service.IncidentService, incidentServiceMocks) {
	ctrl := gomock.NewController(t)
	m := incidentServiceMocks{
		repo:      mocks.NewMockIncidentRepository(ctrl),
		users:     mocks.NewMockUserRepository(ctrl),
		locations: mocks.NewMockUserLocationRepository(ctrl),
		ledger:    mocks.NewMockConfirmationLedger(ctrl),
		fanout:    mocks.NewMockFanoutService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	svc := service.NewIncidentService(m.repo, m.users, m.locations, m.ledger, m.fanout, logger)
	return svc, m
}

func validTestIncident(reporterID uuid.UUID) *models.Incident {
	return &models.Incident{
		ReporterID:   reporterID,
		Title:        "Пожар в жилом доме",
		Description:  "Дым на третьем этаже",
		Severity:     models.SeverityHigh,
		Category:     models.CategoryFire,
		Latitude:     55.7558,
		Longitude:    37.6173,
		RadiusMeters: 1000,
	}
}

func TestCreateIncident_Success(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	reporterID := uuid.New()
	incident := validTestIncident(reporterID)

	// Ожидания
	m.repo.EXPECT().
		Create(ctx, incident).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			inc.ID = uuid.New()
			return nil
		}).Times(1)

	m.users.EXPECT().
		IncrementIncidentsReported(ctx, reporterID).
		Return(nil).
		Times(1)

	m.fanout.EXPECT().
		NotifyNewIncident(ctx, incident).
		Return(3, nil).
		Times(1)

	// Действие
	err := svc.CreateIncident(ctx, incident)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.IncidentActive, incident.Status)
	assert.WithinDuration(t, time.Now().Add(models.IncidentTTL), incident.ExpiresAt, time.Minute)
}

func TestCreateIncident_FanoutFailureDoesNotRollBack(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	incident := validTestIncident(uuid.New())

	// Ожидания
	m.repo.EXPECT().Create(ctx, incident).Return(nil).Times(1)
	m.users.EXPECT().IncrementIncidentsReported(ctx, gomock.Any()).Return(nil).Times(1)
	m.fanout.EXPECT().
		NotifyNewIncident(ctx, incident).
		Return(0, fmt.Errorf("queue unavailable")).
		Times(1)

	// Действие
	err := svc.CreateIncident(ctx, incident)

	// Проверки: сбой рассылки не откатывает создание
	require.NoError(t, err)
}

func TestCreateIncident_ValidationError(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	incident := validTestIncident(uuid.New())
	incident.Latitude = 120 // Недопустимая широта

	// Ожидания: репозиторий не должен вызываться
	m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := svc.CreateIncident(ctx, incident)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrValidation)
}

func TestCreateIncident_UnknownSeverity(t *testing.T) {
	svc, m := newTestIncidentService(t)
	incident := validTestIncident(uuid.New())
	incident.Severity = "EXTREME"

	m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	err := svc.CreateIncident(context.Background(), incident)
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrValidation)
}

func TestGetIncident_WithDistanceAndVote(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	userID := uuid.New()

	incident := &models.Incident{
		ID:        incidentID,
		Title:     "Авария на перекрестке",
		Latitude:  55.7558,
		Longitude: 37.6173,
	}

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, incidentID).Return(incident, nil).Times(1)
	m.repo.EXPECT().
		GetVote(ctx, incidentID, userID).
		Return(&models.ConfirmationRecord{Action: models.ActionConfirmed}, nil).
		Times(1)
	m.locations.EXPECT().
		FindActiveByUser(ctx, userID).
		Return(&models.UserLocation{Latitude: 55.76, Longitude: 37.62}, nil).
		Times(1)

	// Действие
	details, err := svc.GetIncident(ctx, incidentID, userID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, incident, details.Incident)
	assert.True(t, details.UserHasVoted)
	require.NotNil(t, details.Distance)
	assert.Greater(t, *details.Distance, 0.0)
}

func TestGetIncident_NotFound(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	userID := uuid.New()

	// Ожидания
	m.repo.EXPECT().
		GetByID(ctx, incidentID).
		Return(nil, e.ErrNotFound).
		Times(1)

	// Действие
	details, err := svc.GetIncident(ctx, incidentID, userID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrNotFound)
	assert.Nil(t, details)
}

func TestConfirmIncident_BelowThreshold(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	userID := uuid.New()
	now := time.Now()
	vote := service.VoteInput{Action: models.ActionConfirmed, Latitude: 55.75, Longitude: 37.61, Confidence: 4}

	existing := &models.Incident{ID: incidentID, Status: models.IncidentActive, ConfirmationCount: 1}
	updated := &models.Incident{
		ID:                 incidentID,
		Status:             models.IncidentActive,
		ConfirmationCount:  2,
		LastConfirmationAt: &now,
	}

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, incidentID).Return(existing, nil).Times(1)
	m.ledger.EXPECT().
		ApplyVote(ctx, incidentID, userID, vote).
		Return(&service.VoteResult{Incident: updated, DeltaConfirms: 1}, nil).
		Times(1)
	m.repo.EXPECT().UpdateIntensity(ctx, incidentID, gomock.Any()).Return(nil).Times(1)

	// Порог не достигнут - рассылки быть не должно
	m.fanout.EXPECT().NotifyIncidentUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := svc.ConfirmIncident(ctx, incidentID, userID, vote)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.IncidentActive, result.Status)
	assert.InDelta(t, 40.0, result.IntensityLevel, 1.0)
}

func TestConfirmIncident_SignificantThresholdFiresOnce(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	userID := uuid.New()
	now := time.Now()
	voters := []uuid.UUID{uuid.New(), uuid.New(), userID}
	vote := service.VoteInput{Action: models.ActionConfirmed, Latitude: 55.75, Longitude: 37.61, Confidence: 5}

	existing := &models.Incident{ID: incidentID, Status: models.IncidentActive, ConfirmationCount: 4}
	updated := &models.Incident{
		ID:                 incidentID,
		Status:             models.IncidentActive,
		ConfirmationCount:  5,
		DenialCount:        1,
		LastConfirmationAt: &now,
	}

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, incidentID).Return(existing, nil).Times(1)
	m.ledger.EXPECT().
		ApplyVote(ctx, incidentID, userID, vote).
		Return(&service.VoteResult{Incident: updated, DeltaConfirms: 1}, nil).
		Times(1)
	m.repo.EXPECT().UpdateIntensity(ctx, incidentID, gomock.Any()).Return(nil).Times(1)
	m.repo.EXPECT().ListVoterIDs(ctx, incidentID).Return(voters, nil).Times(1)
	m.fanout.EXPECT().NotifyIncidentUpdate(ctx, updated, voters).Return(7, nil).Times(1)

	// Действие
	result, err := svc.ConfirmIncident(ctx, incidentID, userID, vote)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 5, result.ConfirmationCount)
}

func TestConfirmIncident_ConcurrentVotesFanOutOnce(t *testing.T) {
	// Подготовка: два голоса стартуют с одного устаревшего снимка
	// (оба видят 4 подтверждения), транзакции сериализуются в 5 и 6.
	// Пересечение порога определяется по дельтам, рассылка одна
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	firstVoter := uuid.New()
	secondVoter := uuid.New()
	now := time.Now()
	voters := []uuid.UUID{uuid.New(), firstVoter}
	vote := service.VoteInput{Action: models.ActionConfirmed, Latitude: 55.75, Longitude: 37.61, Confidence: 4}

	stale := &models.Incident{ID: incidentID, Status: models.IncidentActive, ConfirmationCount: 4}
	afterFirst := &models.Incident{
		ID:                 incidentID,
		Status:             models.IncidentActive,
		ConfirmationCount:  5,
		LastConfirmationAt: &now,
	}
	afterSecond := &models.Incident{
		ID:                 incidentID,
		Status:             models.IncidentActive,
		ConfirmationCount:  6,
		LastConfirmationAt: &now,
	}

	// Ожидания: оба предварительных чтения возвращают один и тот же снимок
	m.repo.EXPECT().GetByID(ctx, incidentID).Return(stale, nil).Times(2)
	m.ledger.EXPECT().
		ApplyVote(ctx, incidentID, firstVoter, vote).
		Return(&service.VoteResult{Incident: afterFirst, DeltaConfirms: 1}, nil).
		Times(1)
	m.ledger.EXPECT().
		ApplyVote(ctx, incidentID, secondVoter, vote).
		Return(&service.VoteResult{Incident: afterSecond, DeltaConfirms: 1}, nil).
		Times(1)
	m.repo.EXPECT().UpdateIntensity(ctx, incidentID, gomock.Any()).Return(nil).Times(2)

	// Ровно одна рассылка - на голосе, пересекшем порог
	m.repo.EXPECT().ListVoterIDs(ctx, incidentID).Return(voters, nil).Times(1)
	m.fanout.EXPECT().NotifyIncidentUpdate(ctx, afterFirst, voters).Return(4, nil).Times(1)

	// Действие
	_, err := svc.ConfirmIncident(ctx, incidentID, firstVoter, vote)
	require.NoError(t, err)
	_, err = svc.ConfirmIncident(ctx, incidentID, secondVoter, vote)

	// Проверки
	require.NoError(t, err)
}

func TestConfirmIncident_ThresholdAlreadyCrossed(t *testing.T) {
	// Подготовка: порог был достигнут раньше, повторная рассылка не нужна
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	userID := uuid.New()
	now := time.Now()
	vote := service.VoteInput{Action: models.ActionConfirmed, Latitude: 55.75, Longitude: 37.61, Confidence: 3}

	existing := &models.Incident{ID: incidentID, Status: models.IncidentActive, ConfirmationCount: 5}
	updated := &models.Incident{
		ID:                 incidentID,
		Status:             models.IncidentActive,
		ConfirmationCount:  6,
		LastConfirmationAt: &now,
	}

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, incidentID).Return(existing, nil).Times(1)
	m.ledger.EXPECT().
		ApplyVote(ctx, incidentID, userID, vote).
		Return(&service.VoteResult{Incident: updated, DeltaConfirms: 1}, nil).
		Times(1)
	m.repo.EXPECT().UpdateIntensity(ctx, incidentID, gomock.Any()).Return(nil).Times(1)
	m.fanout.EXPECT().NotifyIncidentUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := svc.ConfirmIncident(ctx, incidentID, userID, vote)

	// Проверки
	require.NoError(t, err)
}

func TestConfirmIncident_RepeatVoteDoesNotRefireFanout(t *testing.T) {
	// Подготовка: повторный голос того же пользователя не меняет счетчик
	// подтверждений на пороге и не запускает рассылку заново
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	userID := uuid.New()
	now := time.Now()
	vote := service.VoteInput{Action: models.ActionConfirmed, Latitude: 55.75, Longitude: 37.61, Confidence: 5}

	existing := &models.Incident{ID: incidentID, Status: models.IncidentActive, ConfirmationCount: 5}
	updated := &models.Incident{
		ID:                 incidentID,
		Status:             models.IncidentActive,
		ConfirmationCount:  5,
		LastConfirmationAt: &now,
	}

	// Ожидания: дельты нулевые - голос лишь перезаписан
	m.repo.EXPECT().GetByID(ctx, incidentID).Return(existing, nil).Times(1)
	m.ledger.EXPECT().
		ApplyVote(ctx, incidentID, userID, vote).
		Return(&service.VoteResult{Incident: updated}, nil).
		Times(1)
	m.repo.EXPECT().UpdateIntensity(ctx, incidentID, gomock.Any()).Return(nil).Times(1)
	m.fanout.EXPECT().NotifyIncidentUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := svc.ConfirmIncident(ctx, incidentID, userID, vote)

	// Проверки
	require.NoError(t, err)
}

func TestConfirmIncident_TooManyDenialsBlockFanout(t *testing.T) {
	// Подготовка: порог достигнут, но отрицаний больше трети
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	userID := uuid.New()
	now := time.Now()
	vote := service.VoteInput{Action: models.ActionConfirmed, Latitude: 55.75, Longitude: 37.61, Confidence: 3}

	existing := &models.Incident{ID: incidentID, Status: models.IncidentActive, ConfirmationCount: 4, DenialCount: 3}
	updated := &models.Incident{
		ID:                 incidentID,
		Status:             models.IncidentActive,
		ConfirmationCount:  5,
		DenialCount:        3,
		LastConfirmationAt: &now,
	}

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, incidentID).Return(existing, nil).Times(1)
	m.ledger.EXPECT().
		ApplyVote(ctx, incidentID, userID, vote).
		Return(&service.VoteResult{Incident: updated, DeltaConfirms: 1}, nil).
		Times(1)
	m.repo.EXPECT().UpdateIntensity(ctx, incidentID, gomock.Any()).Return(nil).Times(1)
	m.fanout.EXPECT().NotifyIncidentUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := svc.ConfirmIncident(ctx, incidentID, userID, vote)

	// Проверки
	require.NoError(t, err)
}

func TestConfirmIncident_TransitionToDisputed(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	userID := uuid.New()
	now := time.Now()
	vote := service.VoteInput{Action: models.ActionDenied, Latitude: 55.75, Longitude: 37.61, Confidence: 5}

	existing := &models.Incident{ID: incidentID, Status: models.IncidentActive, ConfirmationCount: 3, DenialCount: 9}
	updated := &models.Incident{
		ID:                 incidentID,
		Status:             models.IncidentActive,
		ConfirmationCount:  3,
		DenialCount:        10,
		LastConfirmationAt: &now,
	}

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, incidentID).Return(existing, nil).Times(1)
	m.ledger.EXPECT().
		ApplyVote(ctx, incidentID, userID, vote).
		Return(&service.VoteResult{Incident: updated, DeltaDenials: 1}, nil).
		Times(1)
	m.repo.EXPECT().UpdateIntensity(ctx, incidentID, gomock.Any()).Return(nil).Times(1)
	m.repo.EXPECT().UpdateStatus(ctx, incidentID, models.IncidentDisputed).Return(nil).Times(1)

	// Действие
	result, err := svc.ConfirmIncident(ctx, incidentID, userID, vote)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.IncidentDisputed, result.Status)
}

func TestConfirmIncident_DenialsWithoutMajorityStayActive(t *testing.T) {
	// Подготовка: отрицаний много, но нет двукратного перевеса
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	userID := uuid.New()
	now := time.Now()
	vote := service.VoteInput{Action: models.ActionDenied, Latitude: 55.75, Longitude: 37.61, Confidence: 2}

	existing := &models.Incident{ID: incidentID, Status: models.IncidentActive, ConfirmationCount: 6, DenialCount: 9}
	updated := &models.Incident{
		ID:                 incidentID,
		Status:             models.IncidentActive,
		ConfirmationCount:  6,
		DenialCount:        10,
		LastConfirmationAt: &now,
	}

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, incidentID).Return(existing, nil).Times(1)
	m.ledger.EXPECT().
		ApplyVote(ctx, incidentID, userID, vote).
		Return(&service.VoteResult{Incident: updated, DeltaDenials: 1}, nil).
		Times(1)
	m.repo.EXPECT().UpdateIntensity(ctx, incidentID, gomock.Any()).Return(nil).Times(1)
	m.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := svc.ConfirmIncident(ctx, incidentID, userID, vote)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.IncidentActive, result.Status)
}

func TestConfirmIncident_InactiveIncidentRecordsVoteOnly(t *testing.T) {
	// Подготовка: по неактивному инциденту голос пишется, но переходов нет
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	userID := uuid.New()
	now := time.Now()
	vote := service.VoteInput{Action: models.ActionConfirmed, Latitude: 55.75, Longitude: 37.61, Confidence: 4}

	existing := &models.Incident{ID: incidentID, Status: models.IncidentExpired, ConfirmationCount: 4}
	updated := &models.Incident{
		ID:                 incidentID,
		Status:             models.IncidentExpired,
		ConfirmationCount:  5,
		LastConfirmationAt: &now,
	}

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, incidentID).Return(existing, nil).Times(1)
	m.ledger.EXPECT().
		ApplyVote(ctx, incidentID, userID, vote).
		Return(&service.VoteResult{Incident: updated, DeltaConfirms: 1}, nil).
		Times(1)
	m.repo.EXPECT().UpdateIntensity(ctx, incidentID, gomock.Any()).Return(nil).Times(1)
	m.fanout.EXPECT().NotifyIncidentUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := svc.ConfirmIncident(ctx, incidentID, userID, vote)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.IncidentExpired, result.Status)
}

func TestConfirmIncident_IncidentNotFound(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	userID := uuid.New()
	vote := service.VoteInput{Action: models.ActionConfirmed, Latitude: 55.75, Longitude: 37.61, Confidence: 4}

	// Ожидания
	m.repo.EXPECT().GetByID(ctx, incidentID).Return(nil, e.ErrNotFound).Times(1)
	m.ledger.EXPECT().ApplyVote(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := svc.ConfirmIncident(ctx, incidentID, userID, vote)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestNearbyIncidents_Success(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	userID := uuid.New()
	expected := []*models.NearbyIncident{
		{Incident: models.Incident{ID: uuid.New(), Title: "Близкий"}, DistanceMeters: 120},
		{Incident: models.Incident{ID: uuid.New(), Title: "Дальний"}, DistanceMeters: 900},
	}

	// Ожидания
	m.repo.EXPECT().
		FindNearby(ctx, 55.75, 37.61, 5000.0, userID).
		Return(expected, nil).
		Times(1)

	// Действие
	incidents, err := svc.NearbyIncidents(ctx, 55.75, 37.61, 5000, userID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, incidents)
}

func TestNearbyIncidents_InvalidRadius(t *testing.T) {
	svc, m := newTestIncidentService(t)

	m.repo.EXPECT().FindNearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.NearbyIncidents(context.Background(), 55.75, 37.61, 0, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrValidation)
}

func TestNearbyIncidentsPaged_NormalizesPagination(t *testing.T) {
	// Подготовка
	svc, m := newTestIncidentService(t)
	ctx := context.Background()
	userID := uuid.New()

	// Ожидания: некорректная страница и размер заменяются дефолтами
	m.repo.EXPECT().
		FindNearbyPaged(ctx, 55.75, 37.61, 5000.0, userID, 1, 20).
		Return([]*models.NearbyIncident{}, nil).
		Times(1)

	// Действие
	_, err := svc.NearbyIncidentsPaged(ctx, 55.75, 37.61, 5000, userID, 0, 500)

	// Проверки
	require.NoError(t, err)
}
