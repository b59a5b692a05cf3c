package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/pollwin/internal/domain/error"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/external"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/api/middleware"
	mockusecase "github.com/amirhossein-jamali/pollwin/mocks/port/usecase"
)

func newVoteRouter(t *testing.T) (*gin.Engine, *mockusecase.MockVoteUseCase) {
	gin.SetMode(gin.TestMode)
	votes := mockusecase.NewMockVoteUseCase(t)
	h := NewVoteHandler(votes, quietLogger())

	router := gin.New()
	router.POST("/polls/:id/purchase", middleware.RequireUser(), h.Purchase)
	router.POST("/polls/:id/vote", middleware.RequireUser(), h.Vote)
	router.POST("/payments/webhook", h.Webhook)
	return router, votes
}

func post(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderUserID, "user_1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestVoteHandler_PendingStatus(t *testing.T) {
	pending := &entity.VoteReceipt{
		OrderID:          "order_1",
		Status:           entity.IntentPending,
		PaymentSessionID: "sess_1",
		Amount:           entity.Rupees(20),
	}

	testCases := []struct {
		name     string
		path     string
		expected int
	}{
		{"PurchaseReturnsSession", "/polls/poll_1/purchase", http.StatusOK},
		{"VoteIsAccepted", "/polls/poll_1/vote", http.StatusAccepted},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router, votes := newVoteRouter(t)
			votes.EXPECT().PurchaseAndVote(mock.Anything, usecase.PurchaseRequest{
				UserID:    "user_1",
				PollID:    "poll_1",
				OptionID:  "opt_a",
				VoteCount: 2,
			}).Return(pending, nil)

			rec := post(router, tc.path, `{"option_id":"opt_a","vote_count":2}`)

			assert.Equal(t, tc.expected, rec.Code)
			assert.Contains(t, rec.Body.String(), `"payment_session_id":"sess_1"`)
			assert.Contains(t, rec.Body.String(), `"amount":20.00`)
		})
	}
}

func TestVoteHandler_GatewayTimeoutKeepsOrder(t *testing.T) {
	router, votes := newVoteRouter(t)
	receipt := &entity.VoteReceipt{OrderID: "order_9", Status: entity.IntentPending, Amount: entity.Rupees(10)}
	votes.EXPECT().PurchaseAndVote(mock.Anything, mock.Anything).Return(receipt,
		domainerr.NewPaymentError("order_9", "10.00", "no answer within 5s", domainerr.ErrPaymentTimeout))

	rec := post(router, "/polls/poll_1/vote", `{"option_id":"opt_a","vote_count":1}`)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Contains(t, rec.Body.String(), `"order_id":"order_9"`)
}

func TestVoteHandler_Declined(t *testing.T) {
	router, votes := newVoteRouter(t)
	votes.EXPECT().PurchaseAndVote(mock.Anything, mock.Anything).Return(nil,
		domainerr.NewPaymentError("order_2", "10.00", "card blocked", domainerr.ErrPaymentDeclined))

	rec := post(router, "/polls/poll_1/vote", `{"option_id":"opt_a","vote_count":1}`)

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":4020`)
}

func TestVoteHandler_Webhook(t *testing.T) {
	testCases := []struct {
		name   string
		body   string
		status external.OrderStatus
		reason string
	}{
		{"Success", `{"type":"PAYMENT_SUCCESS_WEBHOOK","data":{"order":{"order_id":"order_1"}}}`, external.OrderConfirmed, ""},
		{"Failed", `{"type":"PAYMENT_FAILED_WEBHOOK","data":{"order":{"order_id":"order_1"},"payment":{"payment_message":"insufficient funds"}}}`, external.OrderDeclined, "insufficient funds"},
		{"Dropped", `{"type":"PAYMENT_USER_DROPPED_WEBHOOK","data":{"order":{"order_id":"order_1"}}}`, external.OrderDeclined, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router, votes := newVoteRouter(t)
			votes.EXPECT().HandleWebhook(mock.Anything, usecase.WebhookEvent{
				OrderID: "order_1",
				Status:  tc.status,
				Reason:  tc.reason,
			}).Return(&entity.VoteReceipt{OrderID: "order_1", Status: entity.IntentConfirmed}, nil)

			rec := post(router, "/payments/webhook", tc.body)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}

	t.Run("MissingOrder", func(t *testing.T) {
		router, _ := newVoteRouter(t)

		rec := post(router, "/payments/webhook", `{"type":"PAYMENT_SUCCESS_WEBHOOK","data":{}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
