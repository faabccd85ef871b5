package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/momentum/internal/service"
	"github.com/limbo/momentum/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	mx                *chi.Mux
	userService       service.UserServiceI
	activitiesService service.ActivitiesServiceI
	daysService       service.DaysServiceI
	finalizeService   service.FinalizeServiceI
	streaksService    service.StreaksServiceI
	quotesService     service.QuotesServiceI
	jwtService        JWTServiceI
}

type ServicesList struct {
	UserService       service.UserServiceI
	ActivitiesService service.ActivitiesServiceI
	DaysService       service.DaysServiceI
	FinalizeService   service.FinalizeServiceI
	StreaksService    service.StreaksServiceI
	QuotesService     service.QuotesServiceI
	JwtService        JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:                chi.NewMux(),
		userService:       servicesOptions.UserService,
		activitiesService: servicesOptions.ActivitiesService,
		daysService:       servicesOptions.DaysService,
		finalizeService:   servicesOptions.FinalizeService,
		streaksService:    servicesOptions.StreaksService,
		quotesService:     servicesOptions.QuotesService,
		jwtService:        servicesOptions.JwtService,
	}
}

func (s *Server) Run(address string) error {
	metrics.Init()
	s.routes()
	return http.ListenAndServe(address, s.mx)
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.MetricsMiddleware)
	s.mx.Handle("/metrics", promhttp.Handler())
	s.mx.Route("/auth", func(r chi.Router) {
		r.Post("/register", s.Register)
		r.Post("/login", s.Login)
	})
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
		r.Get("/activities", s.GetActivities)
		r.Post("/activities", s.CreateActivity)
		r.Delete("/activities/{id}", s.DeleteActivity)
		r.Get("/days/{date}", s.GetDailyEntry)
		r.Get("/days/{date}/score", s.GetLiveScore)
		r.Post("/days/{date}/finalize", s.FinalizeDay)
		r.Post("/days/{date}/auto-finalize", s.AutoFinalizeDay)
		r.Post("/days/{date}/undo", s.UndoDay)
		r.Patch("/entries/{id}/reflection", s.UpdateReflection)
		r.Get("/entries/{id}/completions", s.GetCompletions)
		r.Put("/entries/{id}/completions/{activityID}", s.SetCompletion)
		r.Get("/streak", s.GetStreak)
		r.Get("/reports/{year}/{month}", s.GetMonthlyReport)
		r.Get("/quote", s.GetRandomQuote)
	})
}
