package repository

import (
	"context"
	"time"

	"carhire-booking/internal/domain/notification"
	"carhire-booking/internal/infra"
	sqlc "carhire-booking/internal/infra/sqlc/generated"
	"carhire-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationWriteQueries interface {
	CreateNotification(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationParams) error
	MarkNotificationRead(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationReadParams) (int64, error)
	MarkAllNotificationsRead(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
	DeleteNotification(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteNotificationParams) (int64, error)
	DeleteReadNotificationsBefore(ctx context.Context, db sqlc.DBTX, createdAt pgtype.Timestamptz) (int64, error)
}

// NotificationRepository writes outside any booking transaction.
type NotificationRepository struct {
	queries NotificationWriteQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationWriteQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	err := r.queries.CreateNotification(ctx, r.db, sqlc.CreateNotificationParams{
		ID:        n.ID(),
		UserID:    n.UserID(),
		Category:  n.Category().String(),
		Title:     n.Title(),
		Message:   n.Message(),
		Link:      pgconv.StringPtrToPgtype(n.Link()),
		CreatedAt: pgconv.TimeToPgtype(n.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create notification", err)
	}
	return nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	n, err := r.queries.MarkNotificationRead(ctx, r.db, sqlc.MarkNotificationReadParams{ID: id, UserID: userID})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification read", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := r.queries.MarkAllNotificationsRead(ctx, r.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark notifications read", err)
	}
	return n, nil
}

func (r *NotificationRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	n, err := r.queries.DeleteNotification(ctx, r.db, sqlc.DeleteNotificationParams{ID: id, UserID: userID})
	if err != nil {
		return infra.WrapRepoErr("failed to delete notification", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *NotificationRepository) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	n, err := r.queries.DeleteReadNotificationsBefore(ctx, r.db, pgconv.TimeToPgtype(cutoff))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to purge read notifications", err)
	}
	return n, nil
}
