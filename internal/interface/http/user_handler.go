package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/wishdrop/wishdrop-backend/internal/application"
	"github.com/wishdrop/wishdrop-backend/pkg/response"
	"github.com/wishdrop/wishdrop-backend/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Wishes *application.WishService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, wishes *application.WishService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Wishes: wishes, Logger: logger}
}

type updateProfileRequest struct {
	Username string `json:"username" binding:"omitempty,min=1,max=64"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"omitempty,pwd"`
	About    string `json:"about" binding:"omitempty,max=200"`
	Avatar   string `json:"avatar" binding:"omitempty,url"`
}

type findUsersRequest struct {
	Query string `json:"query" binding:"required,min=1"`
}

func (h *UserHandler) Me(c *gin.Context) {
	uid := c.GetString("userID")
	u, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, userView(u), "profile", nil)
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	uid := c.GetString("userID")
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_payload", "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.UpdateProfile(c.Request.Context(), uid, application.UpdateProfileInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		About:    req.About,
		Avatar:   req.Avatar,
	})
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, userView(u), "profile updated", nil)
}

func (h *UserHandler) DeleteMe(c *gin.Context) {
	uid := c.GetString("userID")
	if err := h.Svc.Delete(c.Request.Context(), uid, uid); err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	c.SetCookie("access_token", "", -1, "/", "", false, true)
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "account deleted", nil)
}

func (h *UserHandler) MyWishes(c *gin.Context) {
	uid := c.GetString("userID")
	wishes, err := h.Wishes.ListByOwner(c.Request.Context(), uid)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, wishViews(wishes, uid), "wishes", nil)
}

// GetByUsername returns a public profile together with the user's wishes.
func (h *UserHandler) GetByUsername(c *gin.Context) {
	username := c.Param("username")
	u, err := h.Svc.GetByUsername(c.Request.Context(), username)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	wishes, err := h.Wishes.ListByOwner(c.Request.Context(), u.ID)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	v := publicUserView(u)
	v["wishes"] = wishViews(wishes, c.GetString("userID"))
	response.Success(c, http.StatusOK, v, "profile", nil)
}

// Find searches users by a username or email substring.
func (h *UserHandler) Find(c *gin.Context) {
	var req findUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_payload", "invalid payload", validation.ToDetails(err))
		return
	}
	users, err := h.Svc.Find(c.Request.Context(), req.Query)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	views := make([]gin.H, 0, len(users))
	for i := range users {
		views = append(views, publicUserView(&users[i]))
	}
	response.Success(c, http.StatusOK, views, "users", nil)
}

// UploadAvatar accepts a multipart file field named "avatar".
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	uid := c.GetString("userID")
	fh, err := c.FormFile("avatar")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_payload", "avatar file is required", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadAvatar(c.Request.Context(), uid, f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"avatar": url}, "avatar uploaded", nil)
}
