//go:build unit

package queries_test

import (
	"context"
	"testing"

	"carhire-booking/internal/domain/user"
	"carhire-booking/internal/pkg/errs"
	"carhire-booking/internal/usecase/queries"
	queriesmock "carhire-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationList(t *testing.T) {
	ctx := context.Background()
	actor := user.NewActor(uuid.New(), user.RoleCustomer)

	t.Run("items with unread count", func(t *testing.T) {
		store := queriesmock.NewMockNotificationReadStore(gomock.NewController(t))
		items := []*queries.NotificationView{{ID: uuid.New(), Title: "Payment received"}}
		store.EXPECT().ListByUser(gomock.Any(), actor.UserID, true, int32(queries.MaxListLimit)).Return(items, nil)
		store.EXPECT().CountUnread(gomock.Any(), actor.UserID).Return(int64(4), nil)

		got, err := queries.NewNotificationQueries(store).List(ctx, actor, true, 500)
		require.NoError(t, err)
		assert.Equal(t, items, got.Items)
		assert.Equal(t, int64(4), got.Unread)
	})

	t.Run("anonymous", func(t *testing.T) {
		store := queriesmock.NewMockNotificationReadStore(gomock.NewController(t))
		_, err := queries.NewNotificationQueries(store).List(ctx, user.Actor{}, false, 10)
		assert.True(t, errs.Is(err, errs.ErrAuthorization), "got %v", err)
	})

	t.Run("store failure", func(t *testing.T) {
		store := queriesmock.NewMockNotificationReadStore(gomock.NewController(t))
		store.EXPECT().ListByUser(gomock.Any(), gomock.Any(), false, gomock.Any()).Return(nil, errs.New("boom"))

		_, err := queries.NewNotificationQueries(store).List(ctx, actor, false, 10)
		assert.True(t, errs.Is(err, errs.ErrExternalDependency), "got %v", err)
	})
}
