// Package main is the entry point for the loadplan-service application.
//
// @title           Load Plan Service API
// @version         1.0.0
// @description     API for recommending cargo containers and load plans.
//
//	The service packs a cargo manifest into each container candidate using
//	multiple sorting strategies and placement algorithms, scores the results,
//	and returns a ranked recommendation plan with placement coordinates.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/loadplan-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Recommendations
// @tag.description Container recommendation operations
//
// @tag.name        Containers
// @tag.description Container catalog management
//
// @tag.name        History
// @tag.description Recommendation history
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/loadplan-service/docs" // swagger docs

	"github.com/guttosm/loadplan-service/config"
	"github.com/guttosm/loadplan-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
