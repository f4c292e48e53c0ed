package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api/v1", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/auth/signup", h.signup)
			r.Post("/auth/login", h.login)
			r.Post("/auth/forgot-password", h.forgotPassword)
			r.Post("/auth/reset-password", h.resetPassword)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/auth/logout", h.logout)
			r.Put("/auth/change-password", h.changePassword)
			r.Get("/auth/me", h.me)

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", h.me)
				r.Put("/me", h.updateProfile)
				r.Get("/", h.listUsers)
				r.Get("/{id}", h.getUser)
				r.Delete("/{id}", h.deleteUser)
			})

			r.Route("/current-weather", func(r chi.Router) {
				r.Post("/coordinates", h.fetchCurrentWeatherByCoordinates)
				r.Post("/{city}", h.fetchCurrentWeatherByCity)
				r.Get("/user/{id}", h.listCurrentWeather)
				r.Get("/{id}", h.getCurrentWeather)
				r.Put("/{id}", h.updateCurrentWeather)
				r.Delete("/{id}", h.deleteCurrentWeather)
			})

			r.Route("/forecast-weather", func(r chi.Router) {
				r.Post("/coordinates", h.fetchForecastByCoordinates)
				r.Post("/{city}", h.fetchForecastByCity)
				r.Get("/user/{id}", h.listForecasts)
				r.Get("/{id}", h.getForecast)
				r.Put("/{id}", h.updateForecast)
				r.Delete("/{id}", h.deleteForecast)
			})

			r.Route("/gist-comments", func(r chi.Router) {
				r.Post("/coordinates", h.publishGistCommentByCoordinates)
				r.Post("/{city}", h.publishGistCommentByCity)
				r.Get("/user/{id}", h.listGistComments)
				r.Get("/{id}", h.getGistComment)
				r.Put("/{id}", h.updateGistComment)
				r.Delete("/{id}", h.deleteGistComment)
			})
		})
	})

	return router
}
