package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/turnlog/turnlog/pkg/api/routes"
)

func SetupServer(listen string) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.ReportsRouter(group.Group("/reports"))

	routes.TimelineRouter(group.Group("/timeline"))

	routes.WheelchairsRouter(group.Group("/wheelchairs"))

	routes.FlightsRouter(group.Group("/flights"))

	group.Get("stats", routes.Stats)

	return webApp.Listen(listen)
}
