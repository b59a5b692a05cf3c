package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/external"
	adminUseCase "github.com/amirhossein-jamali/pollwin/internal/domain/usecase/admin"
	"github.com/amirhossein-jamali/pollwin/internal/domain/usecase/ledger"
	pollUseCase "github.com/amirhossein-jamali/pollwin/internal/domain/usecase/poll"
	settlementUseCase "github.com/amirhossein-jamali/pollwin/internal/domain/usecase/settlement"
	userUseCase "github.com/amirhossein-jamali/pollwin/internal/domain/usecase/user"
	voteUseCase "github.com/amirhossein-jamali/pollwin/internal/domain/usecase/vote"
	withdrawalUseCase "github.com/amirhossein-jamali/pollwin/internal/domain/usecase/withdrawal"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/notifier"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/payment"
)

const (
	testAdminKey      = "admin-secret"
	testWebhookSecret = "webhook-secret"
)

type testServer struct {
	router *gin.Engine
	db     *database.TestDBManager
}

type serverOptions struct {
	mode    string
	funding entity.Funding
	events  external.Notifier
}

// recordingNotifier keeps every operator notification it is handed
type recordingNotifier struct {
	mu    sync.Mutex
	notes []external.Notification
}

func (n *recordingNotifier) Notify(_ context.Context, note external.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notes = append(n.notes, note)
	return nil
}

func (n *recordingNotifier) count(kind external.EventKind) int {
	n.mu.Lock()
	defer n.mu.Unlock()

	total := 0
	for _, note := range n.notes {
		if note.Kind == kind {
			total++
		}
	}
	return total
}

func newTestServer(t *testing.T, opts serverOptions) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tdb := database.NewTestDBManager(t)
	log := tdb.Logger
	tp := tdb.TimeProvider
	ids := idgen.NewUUIDGenerator()

	uow := tdb.Manager.CreateUnitOfWork()
	manager := ledger.NewManager(log, tp, 0, time.Minute)
	t.Cleanup(manager.Shutdown)
	poster := ledger.NewPoster(uow, ids, tp, log)

	gateway, err := payment.NewGateway(opts.mode, 5*time.Second, ids, log)
	require.NoError(t, err)
	events := opts.events
	if events == nil {
		events = notifier.NewLogNotifier(log)
	}

	adminKeyHash, err := bcrypt.GenerateFromPassword([]byte(testAdminKey), bcrypt.MinCost)
	require.NoError(t, err)

	polls := pollUseCase.NewPollUseCase(uow, manager, ids, tp, log)
	settlements := settlementUseCase.NewSettlementUseCase(uow, manager, poster, events, tp, log)

	router := gin.New()
	routes.SetupMiddlewares(router, log, ids, tp, []string{"http://localhost:3000"})
	handlers := routes.Handlers{
		User:       handler.NewUserHandler(userUseCase.NewUserUseCase(uow, ids, tp, log), log),
		Poll:       handler.NewPollHandler(polls, settlements, log),
		Vote:       handler.NewVoteHandler(voteUseCase.NewVoteUseCase(uow, manager, poster, gateway, events, ids, tp, log, opts.funding), log),
		Withdrawal: handler.NewWithdrawalHandler(withdrawalUseCase.NewWithdrawalUseCase(uow, manager, poster, events, ids, tp, log, 1000), log),
		Admin:      handler.NewAdminHandler(adminUseCase.NewAdminUseCase(uow, poster, log), log),
		Health:     handler.NewHealthHandler(tdb.Manager, tp, log),
	}
	if sandbox, ok := payment.SandboxOf(gateway); ok {
		handlers.Sandbox = handler.NewSandboxHandler(sandbox, log)
	}
	routes.SetupRoutes(router, handlers, routes.Security{
		AdminKeyHash:  string(adminKeyHash),
		WebhookSecret: testWebhookSecret,
	}, tp, log)

	return &testServer{router: router, db: tdb}
}

func (s *testServer) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) asUser(t *testing.T, userID, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return s.do(t, method, path, body, map[string]string{middleware.HeaderUserID: userID})
}

func (s *testServer) asAdmin(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return s.do(t, method, path, body, map[string]string{middleware.HeaderAdminKey: testAdminKey})
}

func (s *testServer) webhook(t *testing.T, eventType, orderID string) *httptest.ResponseRecorder {
	t.Helper()
	return s.webhookAt(t, eventType, orderID, time.Now())
}

// webhookAt sends a callback signed with the given timestamp
func (s *testServer) webhookAt(t *testing.T, eventType, orderID string, sentAt time.Time) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(map[string]any{
		"type": eventType,
		"data": map[string]any{"order": map[string]any{"order_id": orderID}},
	})
	require.NoError(t, err)
	timestamp := strconv.FormatInt(sentAt.Unix(), 10)

	req := httptest.NewRequest(http.MethodPost, "/api/payments/webhook", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderWebhookTimestamp, timestamp)
	req.Header.Set(middleware.HeaderWebhookSignature, middleware.SignWebhook(testWebhookSecret, timestamp, payload))

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

// register creates an account and returns its user ID
func (s *testServer) register(t *testing.T, name string) string {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Email: name + "@example.com",
		Name:  name,
		UPIID: name + "@upi",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[dto.ProfileResponse](t, rec).User.ID
}

// createPoll creates a ₹10 poll and returns it
func (s *testServer) createPoll(t *testing.T, options ...string) dto.PollResponse {
	t.Helper()

	rec := s.asAdmin(t, http.MethodPost, "/api/admin/polls", dto.CreatePollRequest{
		Title:        "Who wins the final?",
		PricePerVote: entity.Rupees(10),
		Options:      options,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[dto.PollResponse](t, rec)
}

func (s *testServer) buy(t *testing.T, userID, pollID, optionID string, votes int64) *httptest.ResponseRecorder {
	t.Helper()
	return s.asUser(t, userID, http.MethodPost, "/api/polls/"+pollID+"/vote", dto.PurchaseRequest{
		OptionID:  optionID,
		VoteCount: votes,
	})
}

func (s *testServer) balance(t *testing.T, userID string) entity.Money {
	t.Helper()

	rec := s.asUser(t, userID, http.MethodGet, "/api/wallet", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[dto.WalletResponse](t, rec).Balance
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}
