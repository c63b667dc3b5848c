package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Get("/sensors", h.getSensors)
	router.Post("/control/{action}", h.control)
	router.Post("/send-message", h.sendMessage)
	router.Get("/messages", h.getMessages)
	router.Get("/events", h.getEvents)
	router.Delete("/delete-event", h.deleteEvent)
	router.Get("/version", h.getVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
