package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	accountapp "github.com/freshroute/admin-api/internal/application/account"
	catalogapp "github.com/freshroute/admin-api/internal/application/catalog"
	"github.com/freshroute/admin-api/internal/infrastructure/repository"
	httpecho "github.com/freshroute/admin-api/internal/interfaces/http/echo"
)

func NewHTTPServer(db *gorm.DB, pool *pgxpool.Pool, provisioner accountapp.AccountProvisioner, bodyLimit string, logger *zap.Logger) *echo.Echo {
	server := echo.New()
	server.HideBanner = true

	server.Use(middleware.Recover())
	server.Use(middleware.RequestID())
	server.Use(middleware.BodyLimit(bodyLimit))

	userRepo := repository.NewUserRepository(db)
	createUser := accountapp.NewCreateUser(provisioner, userRepo)
	getUserByID := accountapp.NewGetUserByID(userRepo)
	importUsers := accountapp.NewImportUsers(createUser, logger)

	productRepo := repository.NewProductRepository(db)
	exportRepo := repository.NewProductExportRepository(pool)
	createProduct := catalogapp.NewCreateProduct(productRepo)
	getProductByID := catalogapp.NewGetProductByID(productRepo)
	importProducts := catalogapp.NewImportProducts(createProduct, logger)
	exportProducts := catalogapp.NewExportProducts(exportRepo)

	importHandler := httpecho.NewImportHandler(importUsers, importProducts)
	templateHandler := httpecho.NewTemplateHandler()
	userHandler := httpecho.NewUserHandler(createUser, getUserByID)
	productHandler := httpecho.NewProductHandler(createProduct, getProductByID, exportProducts)

	httpecho.RegisterRoutes(server, importHandler, templateHandler, userHandler, productHandler)

	server.GET("/healthz", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	return server
}
