package api

import (
	"net/http"

	reqdto "loyalty-ledger/internal/handler/dto/request"
	resdto "loyalty-ledger/internal/handler/dto/response"
	"loyalty-ledger/internal/handler/httperr"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RaffleHandler struct {
	cmds commands.RaffleCommands
	q    queries.RaffleQueries
}

func NewRaffleHandler(cmds commands.RaffleCommands, q queries.RaffleQueries) *RaffleHandler {
	return &RaffleHandler{cmds: cmds, q: q}
}

// @Summary List raffles
// @Tags raffles
// @Security BearerAuth
// @Produce json
// @Param businessId path string true "Business ID"
// @Success 200 {object} resdto.RaffleListResponse
// @Router /businesses/{businessId}/raffles [get]
func (h *RaffleHandler) List(c *gin.Context) {
	businessID, ok := uuidParam(c, "businessId")
	if !ok {
		return
	}
	views, err := h.q.ListRaffles(c.Request.Context(), businessID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRaffleViews(views))
}

// @Summary Get raffle
// @Description Customers also get their own ticket count.
// @Tags raffles
// @Security BearerAuth
// @Produce json
// @Param id path string true "Raffle ID"
// @Success 200 {object} resdto.RaffleResponse
// @Failure 404 {object} httperr.Response
// @Router /raffles/{id} [get]
func (h *RaffleHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	raffleID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var viewer *uuid.UUID
	if actor.IsCustomer() {
		viewer = &actor.UserID
	}
	view, err := h.q.GetRaffle(c.Request.Context(), raffleID, viewer)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRaffleView(view))
}

// @Summary Create raffle
// @Tags raffles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRaffleRequest true "Raffle"
// @Success 201 {object} resdto.RaffleResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /raffles [post]
func (h *RaffleHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateRaffleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateRaffle(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	view, err := h.q.GetRaffle(c.Request.Context(), result.RaffleID, nil)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRaffleView(view))
}

// @Summary Buy ticket
// @Tags raffles
// @Security BearerAuth
// @Produce json
// @Param id path string true "Raffle ID"
// @Param Idempotency-Key header string false "UUID; replays return the stored result"
// @Success 201 {object} resdto.TicketResponse
// @Success 200 {object} resdto.TicketResponse "replayed"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /raffles/{id}/tickets [post]
func (h *RaffleHandler) BuyTicket(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	raffleID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	key, ok := idempotencyKeyFor(c, commands.EndpointBuyTicket, raffleID)
	if !ok {
		return
	}
	result, err := h.cmds.BuyTicket(c.Request.Context(), actor.UserID, raffleID, key)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(replied(c, result.IsReplayed), resdto.FromBuyTicketResult(result))
}

// @Summary Return tickets
// @Description Refunds every ticket the caller holds. Holding none returns zero counts.
// @Tags raffles
// @Security BearerAuth
// @Produce json
// @Param id path string true "Raffle ID"
// @Success 200 {object} resdto.ReturnTicketsResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /raffles/{id}/tickets [delete]
func (h *RaffleHandler) ReturnTickets(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	raffleID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	result, err := h.cmds.ReturnTickets(c.Request.Context(), actor.UserID, raffleID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReturnTicketsResult(result))
}

// @Summary Close raffle
// @Description Stops ticket sales. Closing twice is a no-op.
// @Tags raffles
// @Security BearerAuth
// @Produce json
// @Param id path string true "Raffle ID"
// @Success 200 {object} resdto.RaffleResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /raffles/{id}/close [post]
func (h *RaffleHandler) Close(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	raffleID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.CloseRaffle(c.Request.Context(), actor, raffleID); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	view, err := h.q.GetRaffle(c.Request.Context(), raffleID, nil)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRaffleView(view))
}

// @Summary Draw winner
// @Description Picks one ticket uniformly at random and completes the raffle.
// @Tags raffles
// @Security BearerAuth
// @Produce json
// @Param id path string true "Raffle ID"
// @Success 200 {object} resdto.DrawResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /raffles/{id}/draw [post]
func (h *RaffleHandler) Draw(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	raffleID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	result, err := h.cmds.SelectWinner(c.Request.Context(), actor, raffleID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDrawResult(result))
}
