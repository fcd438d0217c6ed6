package server

import (
	"tienda/internal/handler"
	"tienda/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// New はルーティング済みのechoを組み立てる。
func New(
	log *logrus.Logger,
	productH *handler.ProductHandler,
	customerH *handler.CustomerHandler,
	orderH *handler.OrderHandler,
	authH *handler.AuthHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	//元APIと同じく全オリジン許可
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
		AllowHeaders:     []string{"*"},
		AllowCredentials: false,
	}))
	e.Use(middleware.RequestLogger(log))

	productH.RegisterRoutes(e)
	customerH.RegisterRoutes(e)
	orderH.RegisterRoutes(e)
	authH.RegisterRoutes(e)

	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
