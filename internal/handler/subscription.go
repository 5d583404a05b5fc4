package handler

import (
	"net/http"

	"github.com/coolcut/siphon/internal/models"
	"github.com/coolcut/siphon/internal/storage"
	"github.com/coolcut/siphon/internal/util"

	"github.com/gin-gonic/gin"
)

// SubscriptionHandler serves the subscription endpoints.
type SubscriptionHandler struct {
	Store storage.SubscriptionStorage
}

func NewSubscriptionHandler(store storage.SubscriptionStorage) *SubscriptionHandler {
	return &SubscriptionHandler{Store: store}
}

type createSubscriptionReq struct {
	ServiceID       *string             `json:"service_id"`
	CategoryID      *string             `json:"category_id"`
	CustomName      string              `json:"custom_name" binding:"required"`
	AmountCents     *int64              `json:"amount_cents" binding:"required"`
	Currency        string              `json:"currency"`
	BillingCycle    models.BillingCycle `json:"billing_cycle"`
	StartDate       string              `json:"start_date" binding:"required"`
	NextBillingDate *string             `json:"next_billing_date"`
	PaymentMethod   *string             `json:"payment_method"`
	ReminderDays    *int64              `json:"reminder_days"`
	Note            *string             `json:"note"`
}

// subscriptionViewResp is a view row plus the derived display fields the UI
// renders directly.
type subscriptionViewResp struct {
	models.SubscriptionView
	DisplayName string `json:"display_name"`
	Amount      string `json:"amount"`
}

func (h *SubscriptionHandler) List(c *gin.Context) {
	views, err := h.Store.ListSubscriptionsView(c.Request.Context())
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to list subscriptions")
		return
	}

	rows := make([]subscriptionViewResp, 0, len(views))
	for _, v := range views {
		rows = append(rows, subscriptionViewResp{
			SubscriptionView: v,
			DisplayName:      util.DisplayName(v),
			Amount:           util.FormatAmount(v.AmountCents),
		})
	}
	util.Success(c, util.Response{"subscriptions": rows})
}

func (h *SubscriptionHandler) Create(c *gin.Context) {
	var req createSubscriptionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "custom_name, amount_cents and start_date are required")
		return
	}

	id, err := h.Store.CreateSubscription(c.Request.Context(), models.CreateSubscriptionPayload{
		ServiceID:       req.ServiceID,
		CategoryID:      req.CategoryID,
		CustomName:      req.CustomName,
		AmountCents:     *req.AmountCents,
		Currency:        req.Currency,
		BillingCycle:    req.BillingCycle,
		StartDate:       req.StartDate,
		NextBillingDate: req.NextBillingDate,
		PaymentMethod:   req.PaymentMethod,
		ReminderDays:    req.ReminderDays,
		Note:            req.Note,
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create subscription")
		return
	}
	util.Success(c, util.Response{"id": id})
}

// Update applies a partial update. Fields absent from the body keep their
// stored value; an explicit null clears the column. Patching an unknown id is
// a successful no-op.
func (h *SubscriptionHandler) Update(c *gin.Context) {
	var patch models.UpdateSubscriptionPayload
	if err := c.ShouldBindJSON(&patch); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "malformed patch body")
		return
	}

	if err := h.Store.UpdateSubscription(c.Request.Context(), c.Param("id"), patch); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to update subscription")
		return
	}
	util.Success(c, util.Response{})
}

func (h *SubscriptionHandler) Delete(c *gin.Context) {
	if err := h.Store.DeleteSubscription(c.Request.Context(), c.Param("id")); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to delete subscription")
		return
	}
	util.Success(c, util.Response{})
}
