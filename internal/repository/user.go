package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/incident_alert_system/internal/models"
	"github.com/shenikar/incident_alert_system/internal/service"
	"github.com/shenikar/incident_alert_system/pkg/e"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) service.UserRepository {
	return &UserRepository{db: db}
}

// GetByID возвращает пользователя по его UUID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT
			id,
			email,
			notifications_enabled,
			location_sharing_enabled,
			notification_radius_meters,
			COALESCE(push_token, ''),
			total_incidents_reported,
			total_confirmations,
			created_at,
			last_active_at
		FROM users
		WHERE id = $1;
	`
	user := &models.User{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.NotificationsEnabled,
		&user.LocationSharingEnabled,
		&user.NotificationRadiusMeters,
		&user.PushToken,
		&user.TotalIncidentsReported,
		&user.TotalConfirmations,
		&user.CreatedAt,
		&user.LastActiveAt,
	)
	if err != nil {
		return nil, e.WrapDB("get user by id", err)
	}
	return user, nil
}

// IncrementIncidentsReported увеличивает пожизненный счетчик созданных инцидентов
func (r *UserRepository) IncrementIncidentsReported(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET total_incidents_reported = total_incidents_reported + 1 WHERE id = $1;`
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return e.WrapDB("increment incidents reported", err)
	}
	return nil
}

// TouchLastActive обновляет время последней активности пользователя
func (r *UserRepository) TouchLastActive(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `UPDATE users SET last_active_at = $1 WHERE id = $2;`
	if _, err := r.db.Exec(ctx, query, at, id); err != nil {
		return e.WrapDB("touch last active", err)
	}
	return nil
}

// ClearPushToken сбрасывает недействительный push-токен у его владельца
func (r *UserRepository) ClearPushToken(ctx context.Context, token string) error {
	query := `UPDATE users SET push_token = NULL WHERE push_token = $1;`
	if _, err := r.db.Exec(ctx, query, token); err != nil {
		return e.WrapDB("clear push token", err)
	}
	return nil
}
