// @title Momentum API
// @description API for personal productivity tracker "Momentum"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/limbo/momentum/internal/api"
	"github.com/limbo/momentum/internal/repository"
	"github.com/limbo/momentum/internal/service"
	"github.com/limbo/momentum/pkg/cleanup"
	"github.com/limbo/momentum/pkg/config"
	jwtservice "github.com/limbo/momentum/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	usersRepo := repository.NewUsersRepo(&dbCfg)
	activitiesRepo := repository.NewActivitiesRepo(&dbCfg)
	entriesRepo := repository.NewEntriesRepo(&dbCfg)
	completionsRepo := repository.NewCompletionsRepo(&dbCfg)
	streaksRepo := repository.NewStreaksRepo(&dbCfg)
	finalizationRepo := repository.NewFinalizationRepo(&dbCfg)
	quotesRepo := repository.NewQuotesRepo(&dbCfg)
	serv := api.New(&api.ServicesList{
		UserService:       service.NewUserService(usersRepo),
		ActivitiesService: service.NewActivitiesService(activitiesRepo, usersRepo),
		DaysService:       service.NewDaysService(entriesRepo, completionsRepo, activitiesRepo, streaksRepo),
		FinalizeService:   service.NewFinalizeService(entriesRepo, completionsRepo, activitiesRepo, streaksRepo, finalizationRepo),
		StreaksService:    service.NewStreaksService(streaksRepo),
		QuotesService:     service.NewQuotesService(quotesRepo),
		JwtService:        jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	err := serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
