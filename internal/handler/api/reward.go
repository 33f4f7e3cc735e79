package api

import (
	"net/http"

	reqdto "loyalty-ledger/internal/handler/dto/request"
	resdto "loyalty-ledger/internal/handler/dto/response"
	"loyalty-ledger/internal/handler/httperr"
	"loyalty-ledger/internal/usecase/commands"
	"loyalty-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RewardHandler struct {
	cmds    commands.RewardCommands
	redeems commands.RedemptionCommands
	q       queries.RewardQueries
}

func NewRewardHandler(cmds commands.RewardCommands, redeems commands.RedemptionCommands, q queries.RewardQueries) *RewardHandler {
	return &RewardHandler{cmds: cmds, redeems: redeems, q: q}
}

// @Summary List rewards
// @Description Customers see active rewards only; the business's staff also see inactive ones.
// @Tags rewards
// @Security BearerAuth
// @Produce json
// @Param businessId path string true "Business ID"
// @Success 200 {object} resdto.RewardListResponse
// @Router /businesses/{businessId}/rewards [get]
func (h *RewardHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	businessID, ok := uuidParam(c, "businessId")
	if !ok {
		return
	}
	views, err := h.q.ListRewards(c.Request.Context(), businessID, actor.CanManage(businessID))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRewardViews(views))
}

// @Summary Create reward
// @Tags rewards
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRewardRequest true "Reward"
// @Success 201 {object} resdto.RewardResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /rewards [post]
func (h *RewardHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateReward(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	view, err := h.q.GetReward(c.Request.Context(), result.RewardID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRewardView(view))
}

// @Summary Activate or deactivate reward
// @Tags rewards
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Reward ID"
// @Param request body reqdto.UpdateRewardRequest true "Patch"
// @Success 200 {object} resdto.RewardResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rewards/{id} [patch]
func (h *RewardHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	rewardID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.SetRewardActive(c.Request.Context(), actor, rewardID, *req.IsActive); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	view, err := h.q.GetReward(c.Request.Context(), rewardID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRewardView(view))
}

// @Summary Redeem reward
// @Description Spends the reward's cost from the caller's balance at the reward's business.
// @Tags rewards
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reward ID"
// @Param Idempotency-Key header string false "UUID; replays return the stored result"
// @Success 201 {object} resdto.RedemptionResponse
// @Success 200 {object} resdto.RedemptionResponse "replayed"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rewards/{id}/redeem [post]
func (h *RewardHandler) Redeem(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	rewardID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	key, ok := idempotencyKeyFor(c, commands.EndpointRedeem, rewardID)
	if !ok {
		return
	}
	result, err := h.redeems.Redeem(c.Request.Context(), actor.UserID, rewardID, key)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(replied(c, result.IsReplayed), resdto.FromRedeemResult(result))
}
