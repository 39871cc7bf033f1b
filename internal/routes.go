package internal

import (
	"net/http"
	"vcheck/internal/controllers"
	"vcheck/internal/providers"
)

func InitRoutes(apiController *controllers.ApiController, staticController *controllers.StaticController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/search/{query}", http.HandlerFunc(apiController.Search))
	routers.Post("/compare", http.HandlerFunc(apiController.Compare))
	routers.Get("/{$}", http.HandlerFunc(staticController.Index))
	routers.Get("/static/", http.HandlerFunc(staticController.Assets))
	return routers
}
