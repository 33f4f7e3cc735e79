package api

import (
	"net/http"

	reqdto "loyalty-ledger/internal/handler/dto/request"
	resdto "loyalty-ledger/internal/handler/dto/response"
	"loyalty-ledger/internal/handler/httperr"
	"loyalty-ledger/internal/pkg/errs"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	cmds commands.LedgerCommands
	q    queries.AccountQueries
}

func NewAccountHandler(cmds commands.LedgerCommands, q queries.AccountQueries) *AccountHandler {
	return &AccountHandler{cmds: cmds, q: q}
}

// @Summary List balances
// @Description Balances of the current customer at every business
// @Tags accounts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.BalanceListResponse
// @Failure 401 {object} httperr.Response
// @Router /accounts [get]
func (h *AccountHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	views, err := h.q.ListBalances(c.Request.Context(), actor.UserID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccountViews(views))
}

// @Summary Get balance
// @Tags accounts
// @Security BearerAuth
// @Produce json
// @Param businessId path string true "Business ID"
// @Success 200 {object} resdto.BalanceResponse
// @Failure 404 {object} httperr.Response
// @Router /accounts/{businessId} [get]
func (h *AccountHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	businessID, ok := uuidParam(c, "businessId")
	if !ok {
		return
	}
	view, err := h.q.GetBalance(c.Request.Context(), actor.UserID, businessID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAccountView(view))
}

// @Summary Ledger history
// @Description Newest entries first. Pass next_cursor back as after to page.
// @Tags accounts
// @Security BearerAuth
// @Produce json
// @Param businessId path string true "Business ID"
// @Param after query string false "Cursor"
// @Param limit query int false "Page size (1-200)"
// @Success 200 {object} resdto.HistoryResponse
// @Failure 400 {object} httperr.Response
// @Router /accounts/{businessId}/history [get]
func (h *AccountHandler) History(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	businessID, ok := uuidParam(c, "businessId")
	if !ok {
		return
	}
	var query reqdto.HistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	var cursor *queries.Cursor
	if query.After != "" {
		cursor = &queries.Cursor{After: query.After}
	}
	entries, next, err := h.q.History(c.Request.Context(), actor.UserID, businessID, cursor, query.Limit)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHistory(entries, next))
}

// @Summary Accrue points for a purchase
// @Tags accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.AccrualRequest true "Purchase"
// @Success 201 {object} resdto.LedgerEntryResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /accounts/accruals [post]
func (h *AccountHandler) Accrue(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.AccrualRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Accrue(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromLedgerResult(result))
}

// @Summary Adjust a balance
// @Description Signed manual correction. A debit below zero is rejected.
// @Tags accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.AdjustmentRequest true "Adjustment"
// @Success 201 {object} resdto.LedgerEntryResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /accounts/adjustments [post]
func (h *AccountHandler) Adjust(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.AdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Adjust(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromLedgerResult(result))
}
