package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"orator/internal/service"
)

// Services groups everything the HTTP layer depends on.
type Services struct {
	Books service.BookService
	Pages service.PageService
	TTS   service.TTSService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Handlers
// stay thin; all workflow logic lives in the services.
func RegisterRoutes(app *fiber.App, db *sql.DB, svcs Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/books", CreateBook(svcs.Books))
	app.Get("/books/:bookId", GetBook(svcs.Books))
	app.Post("/books/:bookId/pages", CreatePage(svcs.Books, svcs.Pages))
	app.Get("/books/:bookId/pages", ListPages(svcs.Pages))
	app.Get("/pages/:pageId", GetPage(svcs.Pages))

	app.Post("/tts", SynthesizeSpeech(svcs.TTS))
}
