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

type WishHandler struct {
	Svc    *application.WishService
	Logger *logrus.Logger
}

func NewWishHandler(svc *application.WishService, logger *logrus.Logger) *WishHandler {
	return &WishHandler{Svc: svc, Logger: logger}
}

type createWishRequest struct {
	Name        string       `json:"name" binding:"required,min=1,max=250"`
	Link        string       `json:"link" binding:"required,url"`
	Image       string       `json:"image" binding:"required,url"`
	Price       money.Amount `json:"price" binding:"required,gt=0"`
	Description string       `json:"description" binding:"required,min=1,max=1024"`
}

type updateWishRequest struct {
	Name        string        `json:"name" binding:"omitempty,min=1,max=250"`
	Link        string        `json:"link" binding:"omitempty,url"`
	Image       string        `json:"image" binding:"omitempty,url"`
	Price       *money.Amount `json:"price" binding:"omitempty,gt=0"`
	Description string        `json:"description" binding:"omitempty,min=1,max=1024"`
}

func (h *WishHandler) Create(c *gin.Context) {
	uid := c.GetString("userID")
	var req createWishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_payload", "invalid payload", validation.ToDetails(err))
		return
	}
	w, err := h.Svc.Create(c.Request.Context(), uid, application.CreateWishInput{
		Name:        req.Name,
		Link:        req.Link,
		Image:       req.Image,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, wishView(w, uid), "wish created", nil)
}

func (h *WishHandler) Get(c *gin.Context) {
	w, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, wishView(w, c.GetString("userID")), "wish", nil)
}

func (h *WishHandler) Update(c *gin.Context) {
	uid := c.GetString("userID")
	var req updateWishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_payload", "invalid payload", validation.ToDetails(err))
		return
	}
	w, err := h.Svc.Update(c.Request.Context(), uid, c.Param("id"), application.UpdateWishInput{
		Name:        req.Name,
		Link:        req.Link,
		Image:       req.Image,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, wishView(w, uid), "wish updated", nil)
}

func (h *WishHandler) Delete(c *gin.Context) {
	uid := c.GetString("userID")
	if err := h.Svc.Delete(c.Request.Context(), uid, c.Param("id")); err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "wish deleted", nil)
}

func (h *WishHandler) Copy(c *gin.Context) {
	uid := c.GetString("userID")
	w, err := h.Svc.Copy(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, wishView(w, uid), "wish copied", nil)
}

func (h *WishHandler) Last(c *gin.Context) {
	wishes, err := h.Svc.Last(c.Request.Context())
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, wishViews(wishes, c.GetString("userID")), "last wishes", nil)
}

func (h *WishHandler) Top(c *gin.Context) {
	wishes, err := h.Svc.Top(c.Request.Context())
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, wishViews(wishes, c.GetString("userID")), "top wishes", nil)
}

func (h *WishHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error(c, http.StatusBadRequest, "invalid_payload", "query parameter q is required", nil)
		return
	}
	hits, err := h.Svc.Search(c.Request.Context(), q, 20)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", nil)
}
