package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/incident_alert_system/internal/models"
	"github.com/shenikar/incident_alert_system/internal/service"
	"github.com/shenikar/incident_alert_system/pkg/e"
)

type UserLocationRepository struct {
	db *pgxpool.Pool
}

func NewUserLocationRepository(db *pgxpool.Pool) service.UserLocationRepository {
	return &UserLocationRepository{db: db}
}

// FindDistinctUsersWithinRadius возвращает пользователей с активной локацией
// в радиусе от точки
func (r *UserLocationRepository) FindDistinctUsersWithinRadius(ctx context.Context, lat, lon, radiusMeters float64) ([]*models.User, error) {
	query := `
		SELECT DISTINCT
			u.id,
			u.email,
			u.notifications_enabled,
			u.location_sharing_enabled,
			u.notification_radius_meters,
			COALESCE(u.push_token, ''),
			u.total_incidents_reported,
			u.total_confirmations,
			u.created_at,
			u.last_active_at
		FROM users u
		JOIN user_locations ul ON ul.user_id = u.id
		WHERE
			ul.is_active = TRUE
			AND ST_DWithin(
				ul.location,
				ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography,
				$3
			);
	`
	rows, err := r.db.Query(ctx, query, lat, lon, radiusMeters)
	if err != nil {
		return nil, e.WrapDB("find users within radius", err)
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		user := &models.User{}
		err := rows.Scan(
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
			return nil, fmt.Errorf("failed to scan nearby user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error nearby users iteration: %w", err)
	}
	return users, nil
}

// FindActiveByUser возвращает активную локацию пользователя
func (r *UserLocationRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*models.UserLocation, error) {
	query := `
		SELECT id, user_id, latitude, longitude, accuracy_meters, "timestamp", is_active
		FROM user_locations
		WHERE user_id = $1 AND is_active = TRUE;
	`
	location := &models.UserLocation{}
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&location.ID,
		&location.UserID,
		&location.Latitude,
		&location.Longitude,
		&location.AccuracyMeters,
		&location.Timestamp,
		&location.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("active location for user %s: %w", userID, e.ErrNotFound)
		}
		return nil, e.WrapDB("find active location", err)
	}
	return location, nil
}

// ReplaceActive одной транзакцией деактивирует прежнюю активную локацию
// пользователя и вставляет новую: активной остается ровно одна
func (r *UserLocationRepository) ReplaceActive(ctx context.Context, location *models.UserLocation) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, e.WrapDB("begin location tx", err)
	}
	defer tx.Rollback(ctx)

	cmdTag, err := tx.Exec(ctx,
		`UPDATE user_locations SET is_active = FALSE WHERE user_id = $1 AND is_active = TRUE;`,
		location.UserID,
	)
	if err != nil {
		return 0, e.WrapDB("deactivate previous location", err)
	}
	deactivated := cmdTag.RowsAffected()

	err = tx.QueryRow(ctx, `
		INSERT INTO user_locations (user_id, latitude, longitude, location, accuracy_meters, "timestamp", is_active)
		VALUES ($1, $2, $3, ST_SetSRID(ST_MakePoint($3, $2), 4326)::geography, $4, $5, TRUE)
		RETURNING id;
	`,
		location.UserID,
		location.Latitude,
		location.Longitude,
		location.AccuracyMeters,
		location.Timestamp,
	).Scan(&location.ID)
	if err != nil {
		return 0, e.WrapDB("insert location", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, e.WrapDB("commit location tx", err)
	}
	return deactivated, nil
}

// DeleteOlderThan удаляет локации старше порога ретеншна
func (r *UserLocationRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM user_locations WHERE "timestamp" < $1;`, cutoff)
	if err != nil {
		return 0, e.WrapDB("delete old locations", err)
	}
	return cmdTag.RowsAffected(), nil
}
