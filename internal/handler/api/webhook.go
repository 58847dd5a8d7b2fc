package api

import (
	"io"
	"log/slog"
	"net/http"

	"carhire-booking/internal/domain/payment"
	"carhire-booking/internal/handler/httperr"
	"carhire-booking/internal/pkg/errs"
	"carhire-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	stripeSignatureHeader = "Stripe-Signature"
	// Stripe documents 64KiB as the upper bound for event payloads.
	maxWebhookBodyBytes = 65536
)

// PaymentEventDecoder verifies a provider webhook and extracts the payment fact.
type PaymentEventDecoder interface {
	Decode(payload []byte, signatureHeader string) (payment.Event, error)
}

type WebhookHandler struct {
	decoder  PaymentEventDecoder
	payments commands.PaymentCommands
}

func NewWebhookHandler(decoder PaymentEventDecoder, payments commands.PaymentCommands) *WebhookHandler {
	return &WebhookHandler{decoder: decoder, payments: payments}
}

type webhookAck struct {
	Received bool   `json:"received"`
	Outcome  string `json:"outcome"`
}

// @Summary Stripe webhook
// @Description Verified provider events. Any non-2xx response makes the provider retry.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Provider signature"
// @Success 200 {object} webhookAck
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /webhooks/stripe [post]
func (h *WebhookHandler) Stripe(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrMalformedEvent), "Unreadable payload", nil)
		return
	}

	ev, err := h.decoder.Decode(payload, c.GetHeader(stripeSignatureHeader))
	if err != nil {
		slog.Warn("rejected stripe webhook", "error", err)
		switch {
		case errs.Is(err, errs.ErrWebhookSignature):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid signature", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Malformed event", nil)
		}
		return
	}

	result, err := h.payments.Apply(c.Request.Context(), ev)
	if err != nil {
		// 500 so the provider redelivers.
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Event could not be applied", nil)
		return
	}
	c.JSON(http.StatusOK, webhookAck{Received: true, Outcome: string(result.Outcome)})
}
