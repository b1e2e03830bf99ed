package v1

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v72"
	"go.uber.org/zap"

	"github.com/wishwell/wishwell-api/internal/api/handler/v1/response"
	"github.com/wishwell/wishwell-api/internal/payments"
	"github.com/wishwell/wishwell-api/internal/ws"
)

type WebhookVerifier interface {
	VerifyWebhook(payload []byte, sigHeader string) (stripe.Event, error)
}

type WebhookPayoutService interface {
	SyncAccountStatus(ctx context.Context, account *stripe.Account) error
}

type WebhookRecorder interface {
	Record(ctx context.Context, eventID, eventType, payload string, processErr error) error
}

type WebhookHandler struct {
	verifier WebhookVerifier
	payouts  WebhookPayoutService
	recorder WebhookRecorder
	hub      *ws.Hub
}

func NewWebhookHandler(verifier WebhookVerifier, payouts WebhookPayoutService, recorder WebhookRecorder, hub *ws.Hub) *WebhookHandler {
	return &WebhookHandler{
		verifier: verifier,
		payouts:  payouts,
		recorder: recorder,
		hub:      hub,
	}
}

// HandleWebhook godoc
// @Summary      Receive processor events
// @Tags         webhook
// @Produce      json
// @Success      200
// @Failure      400      {object}   response.Err
// @Router       /stripe/webhook [post]
//
// Once the signature checks out we always answer 200; a non-2xx makes the
// processor re-deliver the same event on a backoff schedule, and a
// processing failure here would not be fixed by a retry. Failures are
// logged and recorded on the stored event row instead.
func (h *WebhookHandler) HandleWebhook(ctx *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(ctx.Writer, ctx.Request.Body, 1<<20))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	event, err := h.verifier.VerifyWebhook(payload, ctx.GetHeader("Stripe-Signature"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	processErr := h.process(ctx.Request.Context(), event)
	if processErr != nil {
		zap.L().Error("webhook processing failed",
			zap.String("event_id", event.ID),
			zap.String("event_type", event.Type),
			zap.Error(processErr),
		)
	}

	if err = h.recorder.Record(ctx.Request.Context(), event.ID, event.Type, string(event.Data.Raw), processErr); err != nil {
		zap.L().Error("failed to record webhook event",
			zap.String("event_id", event.ID),
			zap.Error(err),
		)
	}

	response.OK(ctx, http.StatusOK, gin.H{"received": true})
}

func (h *WebhookHandler) process(ctx context.Context, event stripe.Event) error {
	switch event.Type {
	case "account.updated":
		var account stripe.Account
		if err := json.Unmarshal(event.Data.Raw, &account); err != nil {
			return fmt.Errorf("json.Unmarshal -> %w", err)
		}

		return h.payouts.SyncAccountStatus(ctx, &account)

	case "payment_intent.succeeded":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return fmt.Errorf("json.Unmarshal -> %w", err)
		}

		eventID, _ := strconv.ParseUint(intent.Metadata[payments.MetaEventID], 10, 64)
		wishID, _ := strconv.ParseUint(intent.Metadata[payments.MetaWishID], 10, 64)
		if eventID == 0 {
			// Not one of ours; another product on the same platform key.
			return nil
		}

		h.hub.Broadcast(ws.ContributionAlert{
			EventID:    uint(eventID),
			WishID:     uint(wishID),
			SenderName: intent.Metadata[payments.MetaSenderName],
			Amount:     float64(intent.Amount) / 100,
			Currency:   string(intent.Currency),
		})

		return nil

	default:
		// Unhandled event types are stored but otherwise ignored.
		return nil
	}
}
