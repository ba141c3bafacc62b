package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/wishdrop/wishdrop-backend/internal/application"
	"github.com/wishdrop/wishdrop-backend/pkg/response"
	"github.com/wishdrop/wishdrop-backend/pkg/validation"
)

type AuthHandler struct {
	Svc          *application.UserService
	Logger       *logrus.Logger
	CookieDomain string
	CookieSecure bool
	TokenTTL     time.Duration
}

func NewAuthHandler(svc *application.UserService, logger *logrus.Logger, cookieDomain string, cookieSecure bool, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, CookieDomain: cookieDomain, CookieSecure: cookieSecure, TokenTTL: tokenTTL}
}

type signupRequest struct {
	Username string `json:"username" binding:"required,min=1,max=64"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	About    string `json:"about" binding:"omitempty,max=200"`
	Avatar   string `json:"avatar" binding:"omitempty,url"`
}

type signinRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_payload", "invalid payload", validation.ToDetails(err))
		return
	}

	u, token, err := h.Svc.Signup(c.Request.Context(), application.SignupInput{
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

	h.setTokenCookie(c, token)
	response.Success(c, http.StatusCreated, gin.H{
		"user":         userView(u),
		"access_token": token,
	}, "signed up", nil)
}

// Signin accepts the username or the email in the username field.
func (h *AuthHandler) Signin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid_payload", "invalid payload", validation.ToDetails(err))
		return
	}

	u, token, err := h.Svc.Signin(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeErr(c, h.Logger, err)
		return
	}

	h.setTokenCookie(c, token)
	response.Success(c, http.StatusOK, gin.H{
		"user":         userView(u),
		"access_token": token,
	}, "signed in", nil)
}

func (h *AuthHandler) Signout(c *gin.Context) {
	c.SetCookie("access_token", "", -1, "/", h.CookieDomain, h.CookieSecure, true)
	response.Success[any](c, http.StatusOK, gin.H{"signed_out": true}, "signed out", nil)
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, token string) {
	if token == "" {
		return
	}
	c.SetCookie("access_token", token, int(h.TokenTTL.Seconds()), "/", h.CookieDomain, h.CookieSecure, true)
}
