package bootstrap

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/locvowork/case_upload_template/internal/config"
	"github.com/locvowork/case_upload_template/internal/handler"
	"github.com/locvowork/case_upload_template/internal/logger"
	"github.com/locvowork/case_upload_template/internal/service"
)

type App struct {
	Echo      *echo.Echo
	Templates service.TemplateService
}

func NewApp() *App {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	return &App{
		Echo: e,
	}
}

// Initialize loads configuration, sets up logging and wires the template
// service and its HTTP routes.
func (a *App) Initialize(ctx context.Context) error {
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}

	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH, config.DefaultEnvConfig.LOG_LEVEL)
	logger.DebugLog(ctx, "Environment variables loaded successfully")

	a.Templates = service.NewTemplateService()
	templateHandler := handler.NewTemplateHandler(a.Templates)

	a.RegisterMiddlewares()
	a.RegisterRoutes(templateHandler)

	return nil
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.InfoLog(c.Request().Context(), "%s %s -> %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
}

func (a *App) RegisterRoutes(templateHandler *handler.TemplateHandler) {
	templateGroup := a.Echo.Group("/templates")
	templateGroup.GET("", templateHandler.ListHandler)
	templateGroup.GET("/:preset", templateHandler.DownloadHandler)
}

// Run serves HTTP until the server is shut down.
func (a *App) Run() error {
	addr, err := config.ListenAddr()
	if err != nil {
		return err
	}
	logger.InfoLog(context.Background(), "serving templates on %s", addr)
	return a.Echo.Start(addr)
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}
