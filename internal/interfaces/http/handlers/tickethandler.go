package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aster/internal/application/ticket/usecases"
	"aster/internal/interfaces/http/dto"
	"aster/internal/interfaces/http/middleware"
	"aster/internal/shared/errors"
	"aster/internal/shared/logger"
	"aster/internal/shared/utils"
)

type TicketHandler struct {
	createTicket usecases.CreateTicketExecutor
	replyTicket  usecases.ReplyTicketExecutor
	listTickets  usecases.ListTicketsExecutor
	getTicket    usecases.GetTicketExecutor
	logger       logger.Interface
}

func NewTicketHandler(
	createTicket usecases.CreateTicketExecutor,
	replyTicket usecases.ReplyTicketExecutor,
	listTickets usecases.ListTicketsExecutor,
	getTicket usecases.GetTicketExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicket: createTicket,
		replyTicket:  replyTicket,
		listTickets:  listTickets,
		getTicket:    getTicket,
		logger:       logger,
	}
}

// CreateTicket opens a new ticket with its opening comment.
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	callerID, ok := middleware.CallerID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewForbiddenError("missing caller identity"))
		return
	}

	result, err := h.createTicket.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		OwnerID:    callerID,
		AuthorName: middleware.CallerName(c),
		Title:      req.Title,
		Category:   req.Category,
		Comment:    req.Comment,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// ReplyTicket appends a comment to an open ticket owned by the caller.
func (h *TicketHandler) ReplyTicket(c *gin.Context) {
	ticketID, err := dto.ParseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.ReplyTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for reply ticket", "ticket_id", ticketID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	callerID, ok := middleware.CallerID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewForbiddenError("missing caller identity"))
		return
	}

	result, err := h.replyTicket.Execute(c.Request.Context(), usecases.ReplyTicketCommand{
		TicketID:   ticketID,
		OwnerID:    callerID,
		AuthorName: middleware.CallerName(c),
		Comment:    req.Comment,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Reply added successfully", result)
}

// ListTickets returns the caller's tickets, newest first.
func (h *TicketHandler) ListTickets(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewForbiddenError("missing caller identity"))
		return
	}

	result, err := h.listTickets.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		OwnerID: callerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total)
}

// GetTicket returns one of the caller's tickets with its full conversation.
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := dto.ParseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	callerID, ok := middleware.CallerID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewForbiddenError("missing caller identity"))
		return
	}

	result, err := h.getTicket.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID: ticketID,
		OwnerID:  callerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
