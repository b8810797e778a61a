package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"stockfolio/internal/auth"
	"stockfolio/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	accountHandler *handler.AccountHandler,
	stockHandler *handler.StockHandler,
	commentHandler *handler.CommentHandler,
	portfolioHandler *handler.PortfolioHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	api := e.Group("/api")

	// Public routes
	api.POST("/account/register", accountHandler.Register)
	api.POST("/account/login", accountHandler.Login)

	api.GET("/stock", stockHandler.List)
	api.GET("/stock/:id", stockHandler.Get)
	api.POST("/stock", stockHandler.Create)
	api.PUT("/stock/:id", stockHandler.Update)
	api.DELETE("/stock/:id", stockHandler.Delete)

	api.GET("/comment", commentHandler.List)
	api.GET("/comment/:id", commentHandler.Get)

	// Secured routes (require a valid bearer token)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.Validate(token)
		},
	}))

	secured.POST("/comment/:stockId", commentHandler.Create)
	secured.PUT("/comment/:id", commentHandler.Update)
	secured.DELETE("/comment/:id", commentHandler.Delete)

	secured.GET("/portfolio", portfolioHandler.List)
	secured.POST("/portfolio", portfolioHandler.Add)
	secured.DELETE("/portfolio", portfolioHandler.Remove)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
