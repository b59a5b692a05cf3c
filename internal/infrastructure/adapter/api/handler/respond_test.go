package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	domainerr "github.com/amirhossein-jamali/pollwin/internal/domain/error"
)

func TestStatusFor(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Validation", domainerr.ErrInvalidVoteCount, http.StatusBadRequest},
		{"InsufficientBalance", domainerr.NewInsufficientBalanceError("user_1", "10.00", "5.00"), http.StatusBadRequest},
		{"WrappedInsufficient", &domainerr.LedgerError{Operation: "debit", Err: domainerr.ErrInsufficientBalance}, http.StatusBadRequest},
		{"Unauthorized", domainerr.ErrUnauthorized, http.StatusUnauthorized},
		{"NotFound", fmt.Errorf("lookup: %w", domainerr.ErrPollNotFound), http.StatusNotFound},
		{"Conflict", domainerr.ErrPollAlreadyClosed, http.StatusConflict},
		{"SettlementConflict", &domainerr.SettlementError{Phase: "freeze", Err: domainerr.ErrSettlementMismatch}, http.StatusConflict},
		{"Declined", domainerr.NewPaymentError("order_1", "10.00", "card blocked", domainerr.ErrPaymentDeclined), http.StatusPaymentRequired},
		{"Timeout", domainerr.NewPaymentError("order_1", "10.00", "no answer", domainerr.ErrPaymentTimeout), http.StatusGatewayTimeout},
		{"Deadline", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"Unknown", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StatusFor(tc.err))
		})
	}
}

func TestRespondError_HidesInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/wallet", nil)

	respondError(c, quietLogger(), "get_wallet", errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"code":5000,"message":"Internal server error"}`, rec.Body.String())
}

func TestPageFrom(t *testing.T) {
	testCases := []struct {
		query          string
		expectedLimit  int
		expectedOffset int
	}{
		{"", defaultPageLimit, 0},
		{"?limit=10&offset=20", 10, 20},
		{"?limit=5000", maxPageLimit, 0},
		{"?limit=-1&offset=abc", defaultPageLimit, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/api/polls"+tc.query, nil)

			page := pageFrom(c)

			assert.Equal(t, tc.expectedLimit, page.Limit)
			assert.Equal(t, tc.expectedOffset, page.Offset)
		})
	}
}
