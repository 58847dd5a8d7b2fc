package queries

import (
	"context"
	"time"

	"carhire-booking/internal/domain/user"
	"carhire-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNotificationAccess = errs.Mark(errs.New("sign in to view notifications"), errs.ErrAuthorization)

type NotificationView struct {
	ID        uuid.UUID `json:"id"`
	Category  string    `json:"category"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Link      *string   `json:"link,omitempty"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NotificationList struct {
	Items  []*NotificationView
	Unread int64
}

type NotificationReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int32) ([]*NotificationView, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}

type NotificationQueries interface {
	List(ctx context.Context, actor user.Actor, unreadOnly bool, limit int) (*NotificationList, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) List(ctx context.Context, actor user.Actor, unreadOnly bool, limit int) (*NotificationList, error) {
	if actor.IsAnonymous() {
		return nil, ErrNotificationAccess
	}

	items, err := q.store.ListByUser(ctx, actor.UserID, unreadOnly, int32(ValidateLimit(limit)))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrExternalDependency)
	}
	unread, err := q.store.CountUnread(ctx, actor.UserID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrExternalDependency)
	}
	return &NotificationList{Items: items, Unread: unread}, nil
}
