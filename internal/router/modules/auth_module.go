package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wishdrop/wishdrop-backend/internal/container"
	handlers "github.com/wishdrop/wishdrop-backend/internal/interface/http"
	"github.com/wishdrop/wishdrop-backend/internal/interface/middleware"
	"github.com/wishdrop/wishdrop-backend/pkg/helpers"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits
	signupLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	signinLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/signup", signupLimiter, m.Handler.Signup)
	rg.POST("/signin", signinLimiter, m.Handler.Signin)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.POST("/signout", m.Handler.Signout)
	}
}
