package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wishdrop/wishdrop-backend/internal/container"
	handlers "github.com/wishdrop/wishdrop-backend/internal/interface/http"
	"github.com/wishdrop/wishdrop-backend/internal/interface/middleware"
	"github.com/wishdrop/wishdrop-backend/pkg/helpers"
)

type WishModule struct {
	Handler *handlers.WishHandler
	JWT     *helpers.JWTManager
}

func NewWishModule(h *handlers.WishHandler, jwt *helpers.JWTManager) *WishModule {
	return &WishModule{Handler: h, JWT: jwt}
}

func (m *WishModule) Register(rg *gin.RouterGroup) {
	// Public feeds, rate-limited per IP
	feedLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	rg.GET("/wishes/last", feedLimiter, m.Handler.Last)
	rg.GET("/wishes/top", feedLimiter, m.Handler.Top)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP()),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.POST("/wishes", m.Handler.Create)
		auth.GET("/wishes/search", m.Handler.Search)
		auth.GET("/wishes/:id", m.Handler.Get)
		auth.PATCH("/wishes/:id", m.Handler.Update)
		auth.DELETE("/wishes/:id", m.Handler.Delete)
		auth.POST("/wishes/:id/copy", m.Handler.Copy)
	}
}
