package api

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/stockpile/inventory-api/docs"
	v1 "github.com/stockpile/inventory-api/internal/api/handler/v1"
	"github.com/stockpile/inventory-api/internal/api/middleware"
	"github.com/stockpile/inventory-api/internal/config"
	"github.com/stockpile/inventory-api/internal/repository"
	"github.com/stockpile/inventory-api/internal/repository/dao"
	"github.com/stockpile/inventory-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	inventoryHandler := s.initInventoryHandler(db)
	s.MountHandlers(authHandler, inventoryHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initInventoryHandler(db *gorm.DB) *v1.InventoryHandler {
	itemDAO := dao.NewItemDAO(db)
	repo := repository.NewInventoryRepository(itemDAO)
	svc := service.NewInventoryService(repo)
	handler := v1.NewInventoryHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, inventoryHandler *v1.InventoryHandler) {
	const basePath = "/api"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/register", authHandler.HandleRegister)
		auth.POST("/login", authHandler.HandleLogin)
	}

	inventory := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		inventory.GET("/inventory", inventoryHandler.HandleListItems)
		inventory.POST("/inventory", inventoryHandler.HandleCreateItem)
		inventory.PUT("/inventory/:itemID", inventoryHandler.HandleUpdateItem)
		inventory.DELETE("/inventory/:itemID", inventoryHandler.HandleDeleteItem)
	}

	s.Router.GET(basePath+"/health", v1.HandleHealthcheck)

	s.Router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, gin.H{
			"status_code": http.StatusNotFound,
			"msg":         "route not found",
		})
	})

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Stockpile Inventory API"
	docs.SwaggerInfo.Description = "User registration/login and per-user inventory CRUD."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
