package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wishdrop/wishdrop-backend/internal/container"
	handlers "github.com/wishdrop/wishdrop-backend/internal/interface/http"
	"github.com/wishdrop/wishdrop-backend/internal/interface/middleware"
	"github.com/wishdrop/wishdrop-backend/pkg/helpers"
)

type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP()),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.GET("/users/me", m.Handler.Me)
		auth.PATCH("/users/me", m.Handler.UpdateMe)
		auth.DELETE("/users/me", m.Handler.DeleteMe)
		auth.GET("/users/me/wishes", m.Handler.MyWishes)
		auth.POST("/users/me/avatar", m.Handler.UploadAvatar)
		auth.POST("/users/find", m.Handler.Find)
		auth.GET("/users/:username", m.Handler.GetByUsername)
	}
}
