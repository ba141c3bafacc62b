package router

import (
	"github.com/wishdrop/wishdrop-backend/internal/application"
	"github.com/wishdrop/wishdrop-backend/internal/container"
	pginfra "github.com/wishdrop/wishdrop-backend/internal/infrastructure/postgres"
	handlers "github.com/wishdrop/wishdrop-backend/internal/interface/http"
	"github.com/wishdrop/wishdrop-backend/internal/router/modules"
)

type moduleDeps struct {
	Auth     *handlers.AuthHandler
	User     *handlers.UserHandler
	Wish     *handlers.WishHandler
	Offer    *handlers.OfferHandler
	Wishlist *handlers.WishlistHandler
}

func buildDeps() moduleDeps {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	wishRepo := pginfra.NewWishRepository(pool)
	offerRepo := pginfra.NewOfferRepository(pool)
	wishlistRepo := pginfra.NewWishlistRepository(pool)

	userSvc := application.NewUserService(
		userRepo,
		container.GetJWT(),
		container.GetGCS(),
		cfg.GCSBucket,
		container.GetRabbitPub(),
		logger,
		cfg.AppName,
	)
	wishSvc := application.NewWishService(
		wishRepo,
		offerRepo,
		container.GetRedis(),
		logger,
		container.GetES(),
		cfg.ESWishesIndex,
	)
	offerSvc := application.NewOfferService(
		offerRepo,
		wishRepo,
		userRepo,
		container.GetRabbitPub(),
		logger,
		cfg.AppName,
	)
	wishlistSvc := application.NewWishlistService(wishlistRepo, wishRepo)

	return moduleDeps{
		Auth:     handlers.NewAuthHandler(userSvc, logger, cfg.CookieDomain, cfg.CookieSecure, cfg.JWTTTL),
		User:     handlers.NewUserHandler(userSvc, wishSvc, logger),
		Wish:     handlers.NewWishHandler(wishSvc, logger),
		Offer:    handlers.NewOfferHandler(offerSvc, logger),
		Wishlist: handlers.NewWishlistHandler(wishlistSvc, logger),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	deps := buildDeps()
	jwt := container.GetJWT()

	r.Add(modules.NewAuthModule(deps.Auth, jwt))
	r.Add(modules.NewUserModule(deps.User, jwt))
	r.Add(modules.NewWishModule(deps.Wish, jwt))
	r.Add(modules.NewOfferModule(deps.Offer, jwt))
	r.Add(modules.NewWishlistModule(deps.Wishlist, jwt))
	r.Add(modules.NewDebugModule())
}
