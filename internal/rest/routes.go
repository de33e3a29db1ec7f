package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"
)

const (
	adminPrefix = "/admin"

	modelsPath     = adminPrefix + "/"
	changeListPath = adminPrefix + "/:model/"
	changeFormPath = adminPrefix + "/:model/:id/"
	inlineTagPath  = adminPrefix + "/:model/:id/tags/:tagId"

	healthPath  = "/health"
	metricsPath = "/metrics"
	swaggerPath = "/swagger/doc.json"
	rpcPath     = "/v1/rpc/"
)

// RegisterRoutes returns the echo server with admin, system and rpc routes.
// rpc may be nil.
func (h *AdminHandler) RegisterRoutes(rpc http.Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(h.metricsMiddleware)

	e.GET(modelsPath, h.Models)
	e.GET(changeListPath, h.ChangeList)
	e.POST(changeListPath, h.Create)
	e.GET(changeFormPath, h.ChangeForm)
	e.POST(inlineTagPath, h.AttachTag)
	e.DELETE(inlineTagPath, h.DetachTag)

	e.GET(healthPath, h.Health)
	e.GET(metricsPath, echo.WrapHandler(promhttp.Handler()))
	e.GET(swaggerPath, h.SwaggerDoc)

	if rpc != nil {
		e.Any(rpcPath, echo.WrapHandler(rpc))
	}

	return e
}

// SwaggerDoc serves the registered swagger document.
func (h *AdminHandler) SwaggerDoc(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusNotFound, "swagger doc not found")
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}
