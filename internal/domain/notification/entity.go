package notification

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrRecipientRequired = errors.New("notification recipient is required")
	ErrTitleRequired     = errors.New("notification title is required")
	ErrInvalidCategory   = errors.New("invalid notification category")
)

type Category string

const (
	CategoryBooking   Category = "booking"
	CategoryPayment   Category = "payment"
	CategoryAgreement Category = "agreement"
	CategoryDamage    Category = "damage"
	CategoryDeposit   Category = "deposit"
	CategoryPCN       Category = "pcn"
	CategorySystem    Category = "system"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryBooking, CategoryPayment, CategoryAgreement, CategoryDamage,
		CategoryDeposit, CategoryPCN, CategorySystem:
		return true
	default:
		return false
	}
}

func (c Category) String() string {
	return string(c)
}

type Notification struct {
	id        uuid.UUID
	userID    uuid.UUID
	category  Category
	title     string
	message   string
	link      *string
	isRead    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewNotification(userID uuid.UUID, category Category, title, message string, link *string, now time.Time) (*Notification, error) {
	if userID == uuid.Nil {
		return nil, ErrRecipientRequired
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	return &Notification{
		id:        uuid.New(),
		userID:    userID,
		category:  category,
		title:     title,
		message:   strings.TrimSpace(message),
		link:      link,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(id, userID uuid.UUID, category Category, title, message string, link *string, isRead bool, createdAt, updatedAt time.Time) *Notification {
	return &Notification{
		id:        id,
		userID:    userID,
		category:  category,
		title:     title,
		message:   message,
		link:      link,
		isRead:    isRead,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (n *Notification) ID() uuid.UUID        { return n.id }
func (n *Notification) UserID() uuid.UUID    { return n.userID }
func (n *Notification) Category() Category   { return n.category }
func (n *Notification) Title() string        { return n.title }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) Link() *string        { return n.link }
func (n *Notification) IsRead() bool         { return n.isRead }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }
func (n *Notification) UpdatedAt() time.Time { return n.updatedAt }
