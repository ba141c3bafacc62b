package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/wishdrop/wishdrop-backend/internal/application"
	"github.com/wishdrop/wishdrop-backend/pkg/response"
	"github.com/wishdrop/wishdrop-backend/pkg/validation"
)

type WishlistHandler struct {
	Svc    *application.WishlistService
	Logger *logrus.Logger
}

func NewWishlistHandler(svc *application.WishlistService, logger *logrus.Logger) *WishlistHandler {
	return &WishlistHandler{Svc: svc, Logger: logger}
}

type createWishlistRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=250"`
	Description string   `json:"description" binding:"omitempty,max=1500"`
	Image       string   `json:"image" binding:"omitempty,url"`
	ItemsID     []string `json:"itemsId" binding:"required,dive,uuid"`
}

type updateWishlistRequest struct {
	Name        string   `json:"name" binding:"omitempty,min=1,max=250"`
	Description string   `json:"description" binding:"omitempty,max=1500"`
	Image       string   `json:"image" binding:"omitempty,url"`
	ItemsID     []string `json:"itemsId" binding:"omitempty,dive,uuid"`
}

func (h *WishlistHandler) Create(c *gin.Context) {
	uid := c.GetString("userID")
	var req createWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_payload", "invalid payload", validation.ToDetails(err))
		return
	}
	wl, err := h.Svc.Create(c.Request.Context(), uid, application.CreateWishlistInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		ItemsID:     req.ItemsID,
	})
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, wishlistView(wl, uid), "wishlist created", nil)
}

func (h *WishlistHandler) Get(c *gin.Context) {
	wl, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, wishlistView(wl, c.GetString("userID")), "wishlist", nil)
}

func (h *WishlistHandler) List(c *gin.Context) {
	lists, err := h.Svc.List(c.Request.Context(), 50)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, wishlistViews(lists, c.GetString("userID")), "wishlists", nil)
}

func (h *WishlistHandler) Update(c *gin.Context) {
	uid := c.GetString("userID")
	var req updateWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_payload", "invalid payload", validation.ToDetails(err))
		return
	}
	wl, err := h.Svc.Update(c.Request.Context(), uid, c.Param("id"), application.UpdateWishlistInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		ItemsID:     req.ItemsID,
	})
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, wishlistView(wl, uid), "wishlist updated", nil)
}

func (h *WishlistHandler) Delete(c *gin.Context) {
	uid := c.GetString("userID")
	if err := h.Svc.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "wishlist deleted", nil)
}
