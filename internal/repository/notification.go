package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/incident_alert_system/internal/models"
	"github.com/shenikar/incident_alert_system/internal/service"
	"github.com/shenikar/incident_alert_system/pkg/e"
)

type NotificationRepository struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) service.NotificationRepository {
	return &NotificationRepository{db: db}
}

const notificationColumns = `
	id,
	user_id,
	incident_id,
	title,
	message,
	type,
	status,
	push_sent,
	attempts,
	created_at,
	delivered_at,
	read_at`

// Create создает запись уведомления со статусом PENDING
func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	query := `
		INSERT INTO notifications (user_id, incident_id, title, message, type, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		notification.UserID,
		notification.IncidentID,
		notification.Title,
		notification.Message,
		notification.Type,
		notification.Status,
	).Scan(&notification.ID, &notification.CreatedAt)
	if err != nil {
		return e.WrapDB("create notification", err)
	}
	return nil
}

// GetByID возвращает уведомление по его UUID
func (r *NotificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1;`
	notification, err := scanNotification(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, e.WrapDB("get notification by id", err)
	}
	return notification, nil
}

// ListByUser возвращает уведомления пользователя с пагинацией, новые первыми
func (r *NotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]*models.Notification, error) {
	offset := (page - 1) * pageSize
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, userID, pageSize, offset)
	if err != nil {
		return nil, e.WrapDB("list notifications", err)
	}
	defer rows.Close()

	notifications := make([]*models.Notification, 0)
	for rows.Next() {
		notification, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, notification)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error notifications iteration: %w", err)
	}
	return notifications, nil
}

// MarkRead помечает уведомление прочитанным, статус не откатывается назад
func (r *NotificationRepository) MarkRead(ctx context.Context, id uuid.UUID, readAt time.Time) error {
	query := `
		UPDATE notifications SET status = 'READ', read_at = $1
		WHERE id = $2 AND status IN ('PENDING', 'DELIVERED');
	`
	if _, err := r.db.Exec(ctx, query, readAt, id); err != nil {
		return e.WrapDB("mark notification read", err)
	}
	return nil
}

// MarkDelivered помечает уведомление доставленным. pushSent=false означает
// административное закрытие без реальной отправки
func (r *NotificationRepository) MarkDelivered(ctx context.Context, id uuid.UUID, pushSent bool, deliveredAt time.Time) error {
	query := `
		UPDATE notifications SET status = 'DELIVERED', push_sent = $1, delivered_at = $2
		WHERE id = $3 AND status = 'PENDING';
	`
	if _, err := r.db.Exec(ctx, query, pushSent, deliveredAt, id); err != nil {
		return e.WrapDB("mark notification delivered", err)
	}
	return nil
}

// FindPendingUnsent возвращает уведомления, ожидающие push-отправки
func (r *NotificationRepository) FindPendingUnsent(ctx context.Context, limit int) ([]*models.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE status = 'PENDING' AND push_sent = FALSE
		ORDER BY created_at ASC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, e.WrapDB("find pending notifications", err)
	}
	defer rows.Close()

	notifications := make([]*models.Notification, 0)
	for rows.Next() {
		notification, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pending notification row: %w", err)
		}
		notifications = append(notifications, notification)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error pending notifications iteration: %w", err)
	}
	return notifications, nil
}

// IncrementAttempts увеличивает счетчик попыток отправки
func (r *NotificationRepository) IncrementAttempts(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE notifications SET attempts = attempts + 1 WHERE id = ANY($1);`
	if _, err := r.db.Exec(ctx, query, ids); err != nil {
		return e.WrapDB("increment notification attempts", err)
	}
	return nil
}

func scanNotification(row interface{ Scan(dest ...any) error }) (*models.Notification, error) {
	notification := &models.Notification{}
	err := row.Scan(
		&notification.ID,
		&notification.UserID,
		&notification.IncidentID,
		&notification.Title,
		&notification.Message,
		&notification.Type,
		&notification.Status,
		&notification.PushSent,
		&notification.Attempts,
		&notification.CreatedAt,
		&notification.DeliveredAt,
		&notification.ReadAt,
	)
	if err != nil {
		return nil, err
	}
	return notification, nil
}
