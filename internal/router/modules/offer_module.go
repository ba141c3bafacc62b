package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wishdrop/wishdrop-backend/internal/container"
	handlers "github.com/wishdrop/wishdrop-backend/internal/interface/http"
	"github.com/wishdrop/wishdrop-backend/internal/interface/middleware"
	"github.com/wishdrop/wishdrop-backend/pkg/helpers"
)

type OfferModule struct {
	Handler *handlers.OfferHandler
	JWT     *helpers.JWTManager
}

func NewOfferModule(h *handlers.OfferHandler, jwt *helpers.JWTManager) *OfferModule {
	return &OfferModule{Handler: h, JWT: jwt}
}

func (m *OfferModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP()),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.POST("/offers", m.Handler.Create)
		auth.GET("/offers", m.Handler.List)
		auth.GET("/offers/:id", m.Handler.Get)
	}
}
