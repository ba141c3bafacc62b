package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/wishdrop/wishdrop-backend/internal/application"
	"github.com/wishdrop/wishdrop-backend/pkg/money"
	"github.com/wishdrop/wishdrop-backend/pkg/response"
	"github.com/wishdrop/wishdrop-backend/pkg/validation"
)

type OfferHandler struct {
	Svc    *application.OfferService
	Logger *logrus.Logger
}

func NewOfferHandler(svc *application.OfferService, logger *logrus.Logger) *OfferHandler {
	return &OfferHandler{Svc: svc, Logger: logger}
}

type createOfferRequest struct {
	Item   string       `json:"item" binding:"required,uuid"`
	Amount money.Amount `json:"amount" binding:"required,gt=0"`
	Hidden bool         `json:"hidden"`
}

func (h *OfferHandler) Create(c *gin.Context) {
	uid := c.GetString("userID")
	var req createOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_payload", "invalid payload", validation.ToDetails(err))
		return
	}
	o, err := h.Svc.Create(c.Request.Context(), uid, req.Item, req.Amount, req.Hidden)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, offerView(o, uid, ""), "offer created", nil)
}

func (h *OfferHandler) Get(c *gin.Context) {
	o, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, offerView(o, c.GetString("userID"), ""), "offer", nil)
}

func (h *OfferHandler) List(c *gin.Context) {
	offers, err := h.Svc.List(c.Request.Context(), 40)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, offerViews(offers, c.GetString("userID"), ""), "offers", nil)
}
