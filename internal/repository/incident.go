package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/incident_alert_system/internal/models"
	"github.com/shenikar/incident_alert_system/internal/service"
	"github.com/shenikar/incident_alert_system/pkg/e"
)

const incidentCacheTTL = 5 * time.Minute

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

const incidentColumns = `
	id,
	reporter_id,
	title,
	description,
	address,
	severity,
	category,
	latitude,
	longitude,
	radius_meters,
	status,
	confirmation_count,
	denial_count,
	intensity_level,
	last_confirmation_at,
	total_notifications,
	created_at,
	updated_at,
	expires_at`

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.ReporterID,
		&incident.Title,
		&incident.Description,
		&incident.Address,
		&incident.Severity,
		&incident.Category,
		&incident.Latitude,
		&incident.Longitude,
		&incident.RadiusMeters,
		&incident.Status,
		&incident.ConfirmationCount,
		&incident.DenialCount,
		&incident.IntensityLevel,
		&incident.LastConfirmationAt,
		&incident.TotalNotifications,
		&incident.CreatedAt,
		&incident.UpdatedAt,
		&incident.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}
	return incident, nil
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (
			reporter_id, title, description, address, severity, category,
			latitude, longitude, location, radius_meters, status, expires_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8,
			ST_SetSRID(ST_MakePoint($8, $7), 4326)::geography, $9, $10, $11)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.ReporterID,
		incident.Title,
		incident.Description,
		incident.Address,
		incident.Severity,
		incident.Category,
		incident.Latitude,
		incident.Longitude,
		incident.RadiusMeters,
		incident.Status,
		incident.ExpiresAt,
	).Scan(&incident.ID, &incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		return e.WrapDB("create incident", err)
	}
	return nil
}

// GetByID возвращает инцидент по его UUID, сначала пробуя кэш Redis
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	if cached, err := r.getIncidentFromCache(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1;`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, e.WrapDB("get incident by id", err)
	}

	// Кэш best-effort: его сбой не влияет на ответ
	_ = r.setIncidentCache(ctx, incident)
	return incident, nil
}

// FindNearby находит активные инциденты в радиусе от точки, по возрастанию
// расстояния, с признаком участия пользователя в голосовании
func (r *IncidentRepository) FindNearby(ctx context.Context, lat, lon, radiusMeters float64, userID uuid.UUID) ([]*models.NearbyIncident, error) {
	query := `
		SELECT ` + incidentColumns + `,
			ST_Distance(location, ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography) AS distance_meters,
			EXISTS (
				SELECT 1 FROM incident_confirmations c
				WHERE c.incident_id = incidents.id AND c.user_id = $4
			) AS user_has_voted
		FROM incidents
		WHERE
			status = 'ACTIVE'
			AND ST_DWithin(
				location,
				ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography,
				$3
			)
		ORDER BY distance_meters ASC;
	`
	return r.queryNearby(ctx, query, lat, lon, radiusMeters, userID)
}

// FindNearbyPaged - страничный вариант FindNearby
func (r *IncidentRepository) FindNearbyPaged(ctx context.Context, lat, lon, radiusMeters float64, userID uuid.UUID, page, pageSize int) ([]*models.NearbyIncident, error) {
	offset := (page - 1) * pageSize
	query := `
		SELECT ` + incidentColumns + `,
			ST_Distance(location, ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography) AS distance_meters,
			EXISTS (
				SELECT 1 FROM incident_confirmations c
				WHERE c.incident_id = incidents.id AND c.user_id = $4
			) AS user_has_voted
		FROM incidents
		WHERE
			status = 'ACTIVE'
			AND ST_DWithin(
				location,
				ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography,
				$3
			)
		ORDER BY distance_meters ASC
		LIMIT $5 OFFSET $6;
	`
	return r.queryNearby(ctx, query, lat, lon, radiusMeters, userID, pageSize, offset)
}

func (r *IncidentRepository) queryNearby(ctx context.Context, query string, lat, lon, radiusMeters float64, userID uuid.UUID, extra ...any) ([]*models.NearbyIncident, error) {
	args := append([]any{lat, lon, radiusMeters, userID}, extra...)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, e.WrapDB("find nearby incidents", err)
	}
	defer rows.Close()

	incidents := make([]*models.NearbyIncident, 0)
	for rows.Next() {
		incident := &models.NearbyIncident{}
		err := rows.Scan(
			&incident.ID,
			&incident.ReporterID,
			&incident.Title,
			&incident.Description,
			&incident.Address,
			&incident.Severity,
			&incident.Category,
			&incident.Latitude,
			&incident.Longitude,
			&incident.RadiusMeters,
			&incident.Status,
			&incident.ConfirmationCount,
			&incident.DenialCount,
			&incident.IntensityLevel,
			&incident.LastConfirmationAt,
			&incident.TotalNotifications,
			&incident.CreatedAt,
			&incident.UpdatedAt,
			&incident.ExpiresAt,
			&incident.DistanceMeters,
			&incident.UserHasVoted,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan nearby incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error nearby incidents iteration: %w", err)
	}
	return incidents, nil
}

// FindByStatus возвращает инциденты с указанным статусом, новые первыми
func (r *IncidentRepository) FindByStatus(ctx context.Context, status models.IncidentStatus) ([]*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE status = $1 ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		return nil, e.WrapDB("find incidents by status", err)
	}
	defer rows.Close()
	return collectIncidents(rows)
}

// FindExpired возвращает активные инциденты с истекшим сроком жизни
func (r *IncidentRepository) FindExpired(ctx context.Context, now time.Time) ([]*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE status = 'ACTIVE' AND expires_at < $1;`
	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		return nil, e.WrapDB("find expired incidents", err)
	}
	defer rows.Close()
	return collectIncidents(rows)
}

func collectIncidents(rows pgx.Rows) ([]*models.Incident, error) {
	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error incidents iteration: %w", err)
	}
	return incidents, nil
}

// UpdateStatus меняет статус инцидента
func (r *IncidentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.IncidentStatus) error {
	query := `UPDATE incidents SET status = $1, updated_at = NOW() WHERE id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return e.WrapDB("update incident status", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("update incident status: %w", e.ErrNotFound)
	}
	_ = r.invalidateIncidentCache(ctx, id)
	return nil
}

// UpdateIntensity записывает пересчитанную интенсивность
func (r *IncidentRepository) UpdateIntensity(ctx context.Context, id uuid.UUID, level float64) error {
	query := `UPDATE incidents SET intensity_level = $1, updated_at = NOW() WHERE id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, level, id)
	if err != nil {
		return e.WrapDB("update incident intensity", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("update incident intensity: %w", e.ErrNotFound)
	}
	_ = r.invalidateIncidentCache(ctx, id)
	return nil
}

// AddNotifications увеличивает счетчик разосланных уведомлений
func (r *IncidentRepository) AddNotifications(ctx context.Context, id uuid.UUID, count int) error {
	query := `UPDATE incidents SET total_notifications = total_notifications + $1, updated_at = NOW() WHERE id = $2;`
	if _, err := r.db.Exec(ctx, query, count, id); err != nil {
		return e.WrapDB("add incident notifications", err)
	}
	_ = r.invalidateIncidentCache(ctx, id)
	return nil
}

// ApplyVote применяет голос одной транзакцией: блокировка строки инцидента
// сериализует конкурентные голоса, уникальный индекс (incident_id, user_id)
// закрывает гонку двух первых голосов одного пользователя
func (r *IncidentRepository) ApplyVote(ctx context.Context, incidentID uuid.UUID, record *models.ConfirmationRecord) (*service.VoteResult, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, e.WrapDB("begin vote tx", err)
	}
	defer tx.Rollback(ctx)

	lockQuery := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1 FOR UPDATE;`
	if _, err := scanIncident(tx.QueryRow(ctx, lockQuery, incidentID)); err != nil {
		return nil, e.WrapDB("lock incident for vote", err)
	}

	var prev *models.ConfirmationAction
	var prevAction models.ConfirmationAction
	err = tx.QueryRow(ctx,
		`SELECT action FROM incident_confirmations WHERE incident_id = $1 AND user_id = $2 FOR UPDATE;`,
		incidentID, record.UserID,
	).Scan(&prevAction)
	switch {
	case err == nil:
		prev = &prevAction
	case errors.Is(err, pgx.ErrNoRows):
		// Первый голос пользователя
	default:
		return nil, e.WrapDB("load existing vote", err)
	}

	upsert := `
		INSERT INTO incident_confirmations (
			incident_id, user_id, action, user_latitude, user_longitude,
			comment, confidence, notification_delay_ms, device_type
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (incident_id, user_id) DO UPDATE SET
			action = EXCLUDED.action,
			"timestamp" = NOW(),
			user_latitude = EXCLUDED.user_latitude,
			user_longitude = EXCLUDED.user_longitude,
			comment = EXCLUDED.comment,
			confidence = EXCLUDED.confidence,
			notification_delay_ms = EXCLUDED.notification_delay_ms,
			device_type = EXCLUDED.device_type
		RETURNING id, "timestamp";
	`
	err = tx.QueryRow(ctx, upsert,
		incidentID,
		record.UserID,
		record.Action,
		record.UserLatitude,
		record.UserLongitude,
		record.Comment,
		record.Confidence,
		record.NotificationDelayMS,
		record.DeviceType,
	).Scan(&record.ID, &record.Timestamp)
	if err != nil {
		return nil, e.WrapDB("upsert vote", err)
	}

	dConfirm, dDeny := models.VoteDeltas(prev, record.Action)
	update := `
		UPDATE incidents SET
			confirmation_count = confirmation_count + $1,
			denial_count = denial_count + $2,
			last_confirmation_at = CASE WHEN $3 THEN NOW() ELSE last_confirmation_at END,
			updated_at = NOW()
		WHERE id = $4
		RETURNING ` + incidentColumns + `;
	`
	incident, err := scanIncident(tx.QueryRow(ctx, update,
		dConfirm, dDeny, record.Action == models.ActionConfirmed, incidentID))
	if err != nil {
		return nil, e.WrapDB("update incident counters", err)
	}

	// Первое подтверждение пользователя идет в его пожизненную статистику
	if prev == nil && record.Action == models.ActionConfirmed {
		if _, err := tx.Exec(ctx,
			`UPDATE users SET total_confirmations = total_confirmations + 1 WHERE id = $1;`,
			record.UserID,
		); err != nil {
			return nil, e.WrapDB("update user confirmation stats", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, e.WrapDB("commit vote tx", err)
	}

	_ = r.invalidateIncidentCache(ctx, incidentID)
	return &service.VoteResult{
		Incident:      incident,
		DeltaConfirms: dConfirm,
		DeltaDenials:  dDeny,
	}, nil
}

// GetVote возвращает голос пользователя по инциденту
func (r *IncidentRepository) GetVote(ctx context.Context, incidentID, userID uuid.UUID) (*models.ConfirmationRecord, error) {
	query := `
		SELECT id, incident_id, user_id, action, "timestamp",
			user_latitude, user_longitude, comment, confidence,
			notification_delay_ms, device_type
		FROM incident_confirmations
		WHERE incident_id = $1 AND user_id = $2;
	`
	record := &models.ConfirmationRecord{}
	err := r.db.QueryRow(ctx, query, incidentID, userID).Scan(
		&record.ID,
		&record.IncidentID,
		&record.UserID,
		&record.Action,
		&record.Timestamp,
		&record.UserLatitude,
		&record.UserLongitude,
		&record.Comment,
		&record.Confidence,
		&record.NotificationDelayMS,
		&record.DeviceType,
	)
	if err != nil {
		return nil, e.WrapDB("get vote", err)
	}
	return record, nil
}

// ListVoterIDs возвращает идентификаторы всех проголосовавших по инциденту
func (r *IncidentRepository) ListVoterIDs(ctx context.Context, incidentID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id FROM incident_confirmations WHERE incident_id = $1;`, incidentID)
	if err != nil {
		return nil, e.WrapDB("list voter ids", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan voter id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error voter ids iteration: %w", err)
	}
	return ids, nil
}

// getIncidentFromCache пытается получить инцидент из Redis
func (r *IncidentRepository) getIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	key := incidentCacheKey(id)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// setIncidentCache сохраняет инцидент в Redis
func (r *IncidentRepository) setIncidentCache(ctx context.Context, incident *models.Incident) error {
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, incidentCacheKey(incident.ID), val, incidentCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// invalidateIncidentCache удаляет инцидент из Redis кэша
func (r *IncidentRepository) invalidateIncidentCache(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, incidentCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}

func incidentCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("incident:%s", id.String())
}
