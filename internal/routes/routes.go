package routes

import (
	"engagement-tracker/internal/controllers"
	"engagement-tracker/internal/repositories"
	"engagement-tracker/internal/services"
	"engagement-tracker/pkg/config"
	"engagement-tracker/pkg/middleware"
	"engagement-tracker/pkg/service"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	jwtSvc service.JWTService,
	logger *zap.Logger,
	cfg *config.Config,
) {
	userRepo := repositories.NewUserRepository(dbConn, logger)
	geoRepo := repositories.NewGeoRepository(dbConn)
	websiteRepo := repositories.NewWebsiteRepository(dbConn)
	inquiryRepo := repositories.NewInquiryRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	authSvc := services.NewAuthService(userRepo, cacheRepo, logger)
	userSvc := services.NewUserService(userRepo, logger)
	geoSvc := services.NewGeoService(geoRepo, logger)
	websiteSvc := services.NewWebsiteService(websiteRepo, logger)
	inquirySvc := services.NewInquiryService(inquiryRepo, logger)

	authMW := middleware.NewAuthMiddleware(jwtSvc, authSvc, logger)

	api := e.Group("/api")
	runAuthRouter(api, authMW, controllers.NewAuthController(authSvc, userSvc, jwtSvc, cfg, logger))
	runDataRouter(api, controllers.NewDataController(geoSvc, logger))
	runWebsiteRouter(api, authMW, controllers.NewWebsiteController(websiteSvc, logger))
	runInquiryRouter(api, authMW, controllers.NewInquiryController(inquirySvc, logger))
}

func runAuthRouter(api *echo.Group, authMW *middleware.AuthMiddleware, ctrl *controllers.AuthController) {
	auth := api.Group("/auth")
	auth.POST("/signup", ctrl.Signup)
	auth.POST("/login", ctrl.Login)
	auth.POST("/logout", ctrl.Logout)
	auth.GET("/check", ctrl.Check, authMW.Auth)
	auth.GET("/users", ctrl.GetUsers, authMW.Auth, authMW.AdminOnly)
	auth.PUT("/promote/:userId", ctrl.Promote, authMW.Auth, authMW.AdminOnly)
}

// Reference data stays open: the frontend needs the geography before a
// session exists, and the payloads hold nothing sensitive.
func runDataRouter(api *echo.Group, ctrl *controllers.DataController) {
	data := api.Group("/data")
	data.POST("/state", ctrl.CreateStates)
	data.POST("/district", ctrl.CreateDistricts)
	data.POST("/palika", ctrl.CreatePalikas)
	data.GET("/states", ctrl.GetStates)
	data.GET("/districts", ctrl.GetDistricts)
	data.GET("/districts/:stateId", ctrl.GetDistricts)
	data.GET("/palikas", ctrl.GetPalikas)
	data.GET("/palikas/:districtId", ctrl.GetPalikas)
}

func runWebsiteRouter(api *echo.Group, authMW *middleware.AuthMiddleware, ctrl *controllers.WebsiteController) {
	websites := api.Group("/website", authMW.Auth)
	websites.GET("", ctrl.GetWebsites)
	websites.POST("", ctrl.CreateWebsite)
	websites.PUT("/:id", ctrl.UpdateWebsite)
	websites.DELETE("/:id", ctrl.DeleteWebsite)
}

func runInquiryRouter(api *echo.Group, authMW *middleware.AuthMiddleware, ctrl *controllers.InquiryController) {
	inquiries := api.Group("/inquiry", authMW.Auth)
	inquiries.GET("", ctrl.GetInquiries)
	inquiries.POST("", ctrl.CreateInquiry)
	inquiries.GET("/suggestions/software", ctrl.GetSoftwareSuggestions)
	inquiries.GET("/export", ctrl.ExportInquiries, authMW.AdminOnly)
	inquiries.PUT("/:id", ctrl.UpdateInquiry)
	inquiries.DELETE("/:id", ctrl.DeleteInquiry)
	inquiries.POST("/:id/actions", ctrl.CreateAction)
	inquiries.GET("/:id/actions", ctrl.GetActions)
}
