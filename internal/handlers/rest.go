package handlers

import (
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/mdayat/qaza-tracker-service/configs"
	"github.com/mdayat/qaza-tracker-service/internal/services"
)

type Services struct {
	Auth         services.AuthServicer
	User         services.UserServicer
	Config       services.ConfigServicer
	PrayerWindow services.PrayerWindowServicer
	Tracker      services.TrackerServicer
}

func NewRestHandler(configs configs.Configs, customMiddleware MiddlewareHandler, services Services) *chi.Mux {
	router := chi.NewRouter()

	router.Use(chiMiddleware.CleanPath)
	router.Use(chiMiddleware.RealIP)
	router.Use(customMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(httprate.LimitByIP(100, 1*time.Minute))

	options := cors.Options{
		AllowedOrigins:   strings.Split(configs.Env.AllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "PUT", "POST", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"User-Agent", "Content-Type", "Accept", "Accept-Encoding", "Accept-Language", "Cache-Control", "Connection", "Host", "Origin", "Referer", "Authorization", "X-Timezone"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(options))
	router.Use(chiMiddleware.Heartbeat("/ping"))

	authHandler := NewAuthHandler(configs, services.Auth)
	router.Post("/auth/register", authHandler.Register)
	router.Post("/auth/login", authHandler.Login)
	router.Post("/auth/logout", authHandler.Logout)
	router.Get("/auth/refresh", authHandler.Refresh)

	router.Group(func(r chi.Router) {
		r.Use(customMiddleware.Authenticate)

		userHandler := NewUserHandler(configs, services.User, services.PrayerWindow)
		r.Get("/users/me", userHandler.GetMe)
		r.Get("/users/me/settings", userHandler.GetSettings)
		r.Put("/users/me/settings", userHandler.UpdateSettings)

		configHandler := NewConfigHandler(configs, services.Config)
		r.Get("/config", configHandler.GetConfig)

		prayerWindowHandler := NewPrayerWindowHandler(configs, services.PrayerWindow)
		r.Get("/prayer-windows", prayerWindowHandler.GetPrayerWindows)
		r.Post("/prayer-windows/sync", prayerWindowHandler.SyncPrayerWindows)

		dayHandler := NewDayHandler(configs, services.Tracker)
		r.Get("/days", dayHandler.GetDays)
		r.Get("/days/{dayNumber}", dayHandler.GetDay)
		r.Put("/days/{dayNumber}", dayHandler.SetItem)
		r.Get("/qaza", dayHandler.GetQaza)
	})

	return router
}
