package router

import (
	"log"
	"net/http"

	"zumpfinanc/internal/config"
	"zumpfinanc/internal/handler"
	"zumpfinanc/internal/middleware"
	"zumpfinanc/internal/notify"
	"zumpfinanc/internal/repository"
	"zumpfinanc/internal/service"
	"zumpfinanc/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires repositories, services and handlers into a Gin engine.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	users := service.NewDirectory(
		repository.NewUserRepository(db),
		util.NewPasswordHasher(cfg.Security.PasswordScheme, cfg.Security.BcryptCost),
	)
	ledger := service.NewLedger(repository.NewEntryRepository(db))
	accounts := service.NewAccount(users, ledger)

	discord, err := notify.FromConfig(cfg.Notify)
	if err != nil {
		log.Printf("registration notifications disabled: %v", err)
	} else if discord != nil {
		accounts.Notifier = discord
	}

	r.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			util.Error(c, http.StatusServiceUnavailable, util.CodeServerErr, "database unavailable")
			return
		}
		util.Success(c, util.Response{"status": "ok"})
	})

	// ====== API ======
	api := r.Group("/api")

	jwtSecret := cfg.JWT.Secret
	userHandler := handler.NewUserHandler(accounts, jwtSecret, cfg.JWT.Issuer, cfg.JWT.ExpireHours)
	api.POST("/users/authenticate", userHandler.Authenticate)
	api.POST("/users", userHandler.Register)
	api.GET("/users/:id/balance", userHandler.Balance)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtSecret, users))

	protected.GET("/me", handler.GetMe)

	entryHandler := handler.NewEntryHandler(ledger, users)
	protected.POST("/entries", entryHandler.CreateEntry)
	protected.GET("/entries", entryHandler.ListEntries)
	protected.GET("/entries/:id", entryHandler.GetEntry)
	protected.PUT("/entries/:id", entryHandler.UpdateEntry)
	protected.PUT("/entries/:id/status", entryHandler.UpdateStatus)
	protected.DELETE("/entries/:id", entryHandler.DeleteEntry)

	exportHandler := handler.NewExportHandler(ledger, cfg.Export.SheetName)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)
	protected.GET("/export/pdf", exportHandler.ExportPDF)

	return r
}
