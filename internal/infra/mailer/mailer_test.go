//go:build unit

package mailer

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"carhire-booking/internal/pkg/config"
	"carhire-booking/internal/pkg/errs"
	"carhire-booking/internal/usecase/shared"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error) {
	args := m.Called(ctx, email)
	if resp := args.Get(0); resp != nil {
		return resp.(*rest.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

var confirmation = shared.Mail{
	ToName:  "Sam Carter",
	ToEmail: "sam@example.com",
	Subject: "Booking CH-AB12CD34 confirmed",
	Body:    "Your van is ready.\n\nPickup: Heathrow T5\n09:00 <sharp>",
}

func TestSendGridMailerSend(t *testing.T) {
	ctx := context.Background()

	t.Run("builds a single email with text and html parts", func(t *testing.T) {
		sender := new(mockSender)
		m := newSendGridMailer(sender, "bookings@example.com", "Bookings")

		sender.On("SendWithContext", ctx, mock.MatchedBy(func(e *mail.SGMailV3) bool {
			return e.From.Address == "bookings@example.com" &&
				e.Subject == confirmation.Subject &&
				len(e.Personalizations) == 1 &&
				e.Personalizations[0].To[0].Address == "sam@example.com" &&
				e.Personalizations[0].To[0].Name == "Sam Carter"
		})).Return(&rest.Response{StatusCode: http.StatusAccepted}, nil).Once()

		require.NoError(t, m.Send(ctx, confirmation))
		sender.AssertExpectations(t)

		sent := sender.Calls[0].Arguments.Get(1).(*mail.SGMailV3)
		require.Len(t, sent.Content, 2)
		assert.Equal(t, "text/plain", sent.Content[0].Type)
		assert.Equal(t, confirmation.Body, sent.Content[0].Value)
		assert.Equal(t, "text/html", sent.Content[1].Type)
		assert.Equal(t, "<p>Your van is ready.</p><p>Pickup: Heathrow T5<br>09:00 &lt;sharp&gt;</p>", sent.Content[1].Value)
	})

	t.Run("transport error is an external dependency failure", func(t *testing.T) {
		sender := new(mockSender)
		m := newSendGridMailer(sender, "bookings@example.com", "Bookings")
		sender.On("SendWithContext", ctx, mock.Anything).Return(nil, errors.New("dial tcp: timeout")).Once()

		err := m.Send(ctx, confirmation)
		require.Error(t, err)
		assert.True(t, errs.Is(err, ErrSendFailed))
		assert.True(t, errs.Is(err, errs.ErrExternalDependency))
	})

	t.Run("provider rejection is a failure", func(t *testing.T) {
		sender := new(mockSender)
		m := newSendGridMailer(sender, "bookings@example.com", "Bookings")
		sender.On("SendWithContext", ctx, mock.Anything).
			Return(&rest.Response{StatusCode: http.StatusUnauthorized, Body: `{"errors":[{"message":"bad key"}]}`}, nil).Once()

		err := m.Send(ctx, confirmation)
		require.Error(t, err)
		assert.True(t, errs.Is(err, ErrSendFailed))
		assert.Contains(t, err.Error(), "status 401")
	})
}

func TestNew(t *testing.T) {
	assert.IsType(t, LogMailer{}, New(config.MailConfig{}))
	assert.IsType(t, &SendGridMailer{}, New(config.MailConfig{SendGridAPIKey: "SG.key", FromAddress: "bookings@example.com"}))
	assert.NoError(t, LogMailer{}.Send(context.Background(), confirmation))
}
