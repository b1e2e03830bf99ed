package v1_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v72"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/wishwell/wishwell-api/internal/api/handler/v1"
	"github.com/wishwell/wishwell-api/internal/ws"
)

type stubVerifier struct {
	event stripe.Event
	err   error
}

func (s *stubVerifier) VerifyWebhook(_ []byte, _ string) (stripe.Event, error) {
	return s.event, s.err
}

type stubPayoutSync struct {
	synced *stripe.Account
}

func (s *stubPayoutSync) SyncAccountStatus(_ context.Context, account *stripe.Account) error {
	s.synced = account
	return nil
}

type stubRecorder struct {
	eventID    string
	processErr error
}

func (s *stubRecorder) Record(_ context.Context, eventID, _, _ string, processErr error) error {
	s.eventID = eventID
	s.processErr = processErr
	return nil
}

func postWebhook(t *testing.T, handler *v1.WebhookHandler) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/api/v1/stripe/webhook", handler.HandleWebhook)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/stripe/webhook", strings.NewReader("{}"))
	req.Header.Set("Stripe-Signature", "t=1,v1=sig")
	router.ServeHTTP(w, req)

	return w
}

func runningHub() *ws.Hub {
	hub := ws.NewHub()
	go hub.Run()

	return hub
}

func TestHandleWebhook(t *testing.T) {
	t.Run("bad signature is rejected", func(t *testing.T) {
		handler := v1.NewWebhookHandler(
			&stubVerifier{err: errors.New("bad signature")},
			&stubPayoutSync{}, &stubRecorder{}, runningHub(),
		)

		w := postWebhook(t, handler)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("account.updated syncs onboarding flags", func(t *testing.T) {
		raw, err := json.Marshal(map[string]interface{}{
			"id":                "acct_123",
			"details_submitted": true,
			"charges_enabled":   true,
			"payouts_enabled":   true,
		})
		require.NoError(t, err)

		payouts := &stubPayoutSync{}
		recorder := &stubRecorder{}
		handler := v1.NewWebhookHandler(
			&stubVerifier{event: stripe.Event{
				ID:   "evt_1",
				Type: "account.updated",
				Data: &stripe.EventData{Raw: raw},
			}},
			payouts, recorder, runningHub(),
		)

		w := postWebhook(t, handler)

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, payouts.synced)
		assert.Equal(t, "acct_123", payouts.synced.ID)
		assert.True(t, payouts.synced.ChargesEnabled)
		assert.Equal(t, "evt_1", recorder.eventID)
		assert.NoError(t, recorder.processErr)
	})

	t.Run("payment_intent.succeeded is acknowledged and recorded", func(t *testing.T) {
		raw, err := json.Marshal(map[string]interface{}{
			"id":       "pi_1",
			"amount":   2500,
			"currency": "usd",
			"metadata": map[string]string{
				"event_id":    "1",
				"wish_id":     "10",
				"sender_name": "Alice",
			},
		})
		require.NoError(t, err)

		recorder := &stubRecorder{}
		handler := v1.NewWebhookHandler(
			&stubVerifier{event: stripe.Event{
				ID:   "evt_2",
				Type: "payment_intent.succeeded",
				Data: &stripe.EventData{Raw: raw},
			}},
			&stubPayoutSync{}, recorder, runningHub(),
		)

		w := postWebhook(t, handler)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "evt_2", recorder.eventID)
	})

	t.Run("unhandled event types still get 200", func(t *testing.T) {
		handler := v1.NewWebhookHandler(
			&stubVerifier{event: stripe.Event{
				ID:   "evt_3",
				Type: "charge.refunded",
				Data: &stripe.EventData{Raw: []byte("{}")},
			}},
			&stubPayoutSync{}, &stubRecorder{}, runningHub(),
		)

		w := postWebhook(t, handler)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
