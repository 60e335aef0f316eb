package router

import (
	"fmt"

	"daily-diet/internal/config"
	"daily-diet/internal/handler"
	"daily-diet/internal/logging"
	"daily-diet/internal/middleware"
	"daily-diet/internal/session"
	"daily-diet/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps are the collaborators the routes are built from.
type Deps struct {
	Users      store.UserStore
	Meals      store.MealStore
	Codec      *session.Codec
	Cookie     handler.CookieOptions
	BcryptCost int
	Log        logging.Logger
}

// SetupRouter wires the gorm stores and the session codec from cfg.
func SetupRouter(cfg *config.Config, db *gorm.DB, log logging.Logger) (*gin.Engine, error) {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	opts := []session.Option{session.WithTTL(cfg.JWT.TTL())}
	if cfg.JWT.Issuer != "" {
		opts = append(opts, session.WithIssuer(cfg.JWT.Issuer))
	}
	codec, err := session.NewCodec(cfg.JWT.Secret, opts...)
	if err != nil {
		return nil, fmt.Errorf("session codec: %w", err)
	}

	return New(Deps{
		Users: store.NewUserStore(db),
		Meals: store.NewMealStore(db),
		Codec: codec,
		Cookie: handler.CookieOptions{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.SecureCookie,
		},
		BcryptCost: cfg.Security.BcryptCost,
		Log:        log,
	}), nil
}

// New builds the engine from already constructed dependencies.
func New(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(d.Log))

	authHandler := handler.NewAuthHandler(d.Users, d.Codec, d.Cookie, d.Log)
	userHandler := handler.NewUserHandler(d.Users, d.BcryptCost, d.Log)
	mealHandler := handler.NewMealHandler(d.Meals, d.Log)
	exportHandler := handler.NewExportHandler(d.Meals, d.Log)

	// public
	r.POST("/auth", authHandler.Login)
	r.POST("/auth/logout", authHandler.Logout)
	r.POST("/users", userHandler.Register)

	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware(d.Codec, d.Cookie.Name, d.Log))

	protected.GET("/", handler.Home)
	protected.GET("/users/me", userHandler.Me)

	protected.GET("/meal", mealHandler.ListMeals)
	protected.POST("/meal", mealHandler.CreateMeal)
	protected.GET("/meal/metric", mealHandler.GetMetrics)
	protected.GET("/meal/export/csv", exportHandler.ExportCSV)
	protected.GET("/meal/export/xlsx", exportHandler.ExportXLSX)
	protected.GET("/meal/:id", mealHandler.GetMeal)
	protected.PATCH("/meal/:id", mealHandler.UpdateMeal)
	protected.DELETE("/meal/:id", mealHandler.DeleteMeal)

	return r
}
