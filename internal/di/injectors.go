//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"vcheck/internal"
	"vcheck/internal/controllers"
	"vcheck/internal/platforms/gog"
	"vcheck/internal/platforms/steam"
	"vcheck/internal/providers"
	"vcheck/internal/services"
	"vcheck/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewUpstreamObserver,
		providers.NewHttpClientProvider,
		providers.NewClockProvider,
		providers.NewStaticFsProvider,

		gog.NewClient,
		steam.NewClient,
		services.NewSearchService,
		services.NewComparisonService,
		controllers.NewApiController,
		controllers.NewHealthController,
		controllers.NewStaticController,
		internal.InitRoutes,
		internal.NewHandler,
		internal.NewApp,
	)

	return nil, nil
}
