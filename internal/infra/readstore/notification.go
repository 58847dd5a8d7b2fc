package readstore

import (
	"context"

	"carhire-booking/internal/infra"
	sqlc "carhire-booking/internal/infra/sqlc/generated"
	"carhire-booking/internal/pkg/pgconv"
	"carhire-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationReadQueries interface {
	ListNotificationsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListNotificationsByUserParams) ([]sqlc.Notifications, error)
	CountUnreadNotifications(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
}

type NotificationReadStore struct {
	queries NotificationReadQueries
	db      sqlc.DBTX
}

func NewNotificationReadStore(queries NotificationReadQueries, db sqlc.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *NotificationReadStore) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int32) ([]*queries.NotificationView, error) {
	rows, err := s.queries.ListNotificationsByUser(ctx, s.db, sqlc.ListNotificationsByUserParams{
		UserID:     userID,
		UnreadOnly: unreadOnly,
		RowLimit:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}

	result := make([]*queries.NotificationView, len(rows))
	for i, row := range rows {
		result[i] = toNotificationViewFromRow(row)
	}
	return result, nil
}

func (s *NotificationReadStore) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := s.queries.CountUnreadNotifications(ctx, s.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count unread notifications", err)
	}
	return n, nil
}

func toNotificationViewFromRow(row sqlc.Notifications) *queries.NotificationView {
	return &queries.NotificationView{
		ID:        row.ID,
		Category:  row.Category,
		Title:     row.Title,
		Message:   row.Message,
		Link:      pgconv.StringPtrFromPgtype(row.Link),
		IsRead:    row.IsRead,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
