package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/pollwin/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/pollwin/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// PollHandler handles poll browsing, poll management and result requests
type PollHandler struct {
	pollUseCase       usecase.PollUseCase
	settlementUseCase usecase.SettlementUseCase
	logger            coreport.Logger
}

// NewPollHandler creates a new poll handler instance
func NewPollHandler(
	pollUseCase usecase.PollUseCase,
	settlementUseCase usecase.SettlementUseCase,
	logger coreport.Logger,
) *PollHandler {
	return &PollHandler{
		pollUseCase:       pollUseCase,
		settlementUseCase: settlementUseCase,
		logger:            logger,
	}
}

// ListPolls handles GET /api/polls and GET /api/admin/polls
func (h *PollHandler) ListPolls(c *gin.Context) {
	filter := persistence.PollFilter{Status: entity.PollStatus(c.Query("status"))}

	polls, err := h.pollUseCase.ListPolls(c.Request.Context(), filter, pageFrom(c))
	if err != nil {
		respondError(c, h.logger, "list_polls", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPollResponses(polls))
}

// GetPoll handles GET /api/polls/:id
func (h *PollHandler) GetPoll(c *gin.Context) {
	poll, err := h.pollUseCase.GetPoll(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "get_poll", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPollResponse(poll))
}

// CreatePoll handles POST /api/admin/polls
func (h *PollHandler) CreatePoll(c *gin.Context) {
	var req dto.CreatePollRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	poll, err := h.pollUseCase.CreatePoll(c.Request.Context(), req.ToCreatePoll())
	if err != nil {
		respondError(c, h.logger, "create_poll", err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewPollResponse(poll))
}

// UpdatePoll handles PUT /api/admin/polls/:id
func (h *PollHandler) UpdatePoll(c *gin.Context) {
	var req dto.UpdatePollRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	poll, err := h.pollUseCase.UpdatePoll(c.Request.Context(), c.Param("id"), req.ToUpdatePoll())
	if err != nil {
		respondError(c, h.logger, "update_poll", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPollResponse(poll))
}

// DeletePoll handles DELETE /api/admin/polls/:id
func (h *PollHandler) DeletePoll(c *gin.Context) {
	if err := h.pollUseCase.DeletePoll(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, "delete_poll", err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Poll deleted"})
}

// DeclareResult handles POST /api/admin/polls/:id/result
func (h *PollHandler) DeclareResult(c *gin.Context) {
	var req dto.DeclareResultRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	report, err := h.settlementUseCase.DeclareResult(c.Request.Context(), c.Param("id"), req.WinningOptionID)
	if err != nil {
		respondError(c, h.logger, "declare_result", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSettlementResponse(report))
}

// GetResults handles GET /api/polls/:id/results
func (h *PollHandler) GetResults(c *gin.Context) {
	results, err := h.settlementUseCase.GetResults(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, "get_results", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPollResultsResponse(results))
}

// GetMyResult handles GET /api/polls/:id/my-result
func (h *PollHandler) GetMyResult(c *gin.Context) {
	result, err := h.settlementUseCase.GetMyResult(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		respondError(c, h.logger, "get_my_result", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMyResultResponse(result))
}
