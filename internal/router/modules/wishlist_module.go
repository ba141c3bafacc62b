package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wishdrop/wishdrop-backend/internal/container"
	handlers "github.com/wishdrop/wishdrop-backend/internal/interface/http"
	"github.com/wishdrop/wishdrop-backend/internal/interface/middleware"
	"github.com/wishdrop/wishdrop-backend/pkg/helpers"
)

type WishlistModule struct {
	Handler *handlers.WishlistHandler
	JWT     *helpers.JWTManager
}

func NewWishlistModule(h *handlers.WishlistHandler, jwt *helpers.JWTManager) *WishlistModule {
	return &WishlistModule{Handler: h, JWT: jwt}
}

func (m *WishlistModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP()),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.POST("/wishlists", m.Handler.Create)
		auth.GET("/wishlists", m.Handler.List)
		auth.GET("/wishlists/:id", m.Handler.Get)
		auth.PATCH("/wishlists/:id", m.Handler.Update)
		auth.DELETE("/wishlists/:id", m.Handler.Delete)
	}
}
