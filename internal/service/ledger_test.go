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

// newTestLedger - вспомогательная функция для создания журнала с моками.
func newTestLedger(t *testing.T) (service.ConfirmationLedger, *mocks.MockIncidentRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return service.NewConfirmationLedger(repoMock, logger), repoMock
}

func TestApplyVote_Success(t *testing.T) {
	// Подготовка
	ledger, repoMock := newTestLedger(t)
	ctx := context.Background()
	incidentID := uuid.New()
	userID := uuid.New()
	in := service.VoteInput{
		Action:     models.ActionConfirmed,
		Latitude:   55.75,
		Longitude:  37.61,
		Comment:    "Вижу дым",
		Confidence: 4,
		DeviceType: "android",
	}
	expected := &service.VoteResult{
		Incident:      &models.Incident{ID: incidentID, ConfirmationCount: 3},
		DeltaConfirms: 1,
	}

	// Ожидания
	repoMock.EXPECT().
		ApplyVote(ctx, incidentID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, record *models.ConfirmationRecord) (*service.VoteResult, error) {
			assert.Equal(t, incidentID, record.IncidentID)
			assert.Equal(t, userID, record.UserID)
			assert.Equal(t, models.ActionConfirmed, record.Action)
			assert.Equal(t, 4, record.Confidence)
			assert.Equal(t, "Вижу дым", record.Comment)
			return expected, nil
		}).Times(1)

	// Действие
	result, err := ledger.ApplyVote(ctx, incidentID, userID, in)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, result)
	assert.Equal(t, 1, result.DeltaConfirms)
}

func TestApplyVote_UnknownAction(t *testing.T) {
	ledger, repoMock := newTestLedger(t)
	in := service.VoteInput{Action: "MAYBE", Latitude: 55.75, Longitude: 37.61, Confidence: 3}

	repoMock.EXPECT().ApplyVote(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := ledger.ApplyVote(context.Background(), uuid.New(), uuid.New(), in)
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrValidation)
}

func TestApplyVote_ConfidenceOutOfRange(t *testing.T) {
	ledger, repoMock := newTestLedger(t)

	repoMock.EXPECT().ApplyVote(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	for _, confidence := range []int{0, 6, -1} {
		in := service.VoteInput{Action: models.ActionDenied, Latitude: 55.75, Longitude: 37.61, Confidence: confidence}
		_, err := ledger.ApplyVote(context.Background(), uuid.New(), uuid.New(), in)
		require.Error(t, err, "confidence %d must be rejected", confidence)
		assert.ErrorIs(t, err, e.ErrValidation)
	}
}

func TestApplyVote_CoordinatesOutOfRange(t *testing.T) {
	ledger, repoMock := newTestLedger(t)
	in := service.VoteInput{Action: models.ActionConfirmed, Latitude: 95, Longitude: 37.61, Confidence: 3}

	repoMock.EXPECT().ApplyVote(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := ledger.ApplyVote(context.Background(), uuid.New(), uuid.New(), in)
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrValidation)
}

func TestApplyVote_RepositoryError(t *testing.T) {
	// Подготовка
	ledger, repoMock := newTestLedger(t)
	ctx := context.Background()
	in := service.VoteInput{Action: models.ActionConfirmed, Latitude: 55.75, Longitude: 37.61, Confidence: 5}

	// Ожидания
	repoMock.EXPECT().
		ApplyVote(ctx, gomock.Any(), gomock.Any()).
		Return(nil, e.ErrNotFound).
		Times(1)

	// Действие
	_, err := ledger.ApplyVote(ctx, uuid.New(), uuid.New(), in)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrNotFound)
}
