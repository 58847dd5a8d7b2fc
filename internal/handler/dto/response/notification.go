package response

import (
	"time"

	"carhire-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Category  string    `json:"category"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Link      *string   `json:"link,omitempty"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type NotificationListResponse struct {
	Items       []NotificationResponse `json:"items"`
	UnreadCount int64                  `json:"unreadCount"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

func FromNotificationList(list *queries.NotificationList) (*NotificationListResponse, error) {
	resp := &NotificationListResponse{
		Items:       make([]NotificationResponse, 0, len(list.Items)),
		UnreadCount: list.Unread,
	}
	// field names line up with the view, so copier does the whole slice
	if err := copier.Copy(&resp.Items, &list.Items); err != nil {
		return nil, err
	}
	return resp, nil
}
