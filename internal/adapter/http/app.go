package http

import (
	"log/slog"
	nethttp "net/http"
	"time"

	"portfolio/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Options tune the fiber application.
type Options struct {
	AdminToken   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NewApp builds the fiber app with middleware and every route registered.
func NewApp(h *Handler, logger *slog.Logger, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           opts.ReadTimeout,
		WriteTimeout:          opts.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": nethttp.StatusText(code)})
		},
	})

	// recover sits inside the access log so panics are logged as 500s
	app.Use(RequestID())
	app.Use(AccessLog(logger))
	app.Use(recover.New())
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   nethttp.FS(web.Static()),
		MaxAge: 3600,
	}))

	app.Get("/", h.Index)
	app.Get("/healthz", h.Health)
	app.Get("/cv.pdf", h.PDF)
	app.Get("/theme", h.Theme)
	app.Post("/theme", h.SetTheme)

	api := app.Group("/api")
	api.Get("/page-data", h.PageData)
	api.Get("/cv", h.CV)
	api.Get("/cv/featured", h.FeaturedCV)
	api.Get("/book", h.Book)
	api.Post("/book/turn", h.TurnPage)
	api.Get("/statistics", h.Statistics)
	api.Get("/technologies", h.Technologies)
	api.Get("/projects", h.Projects)
	api.Get("/projects/:id", h.Project)
	api.Get("/experience/current", h.CurrentExperience)
	api.Get("/experience/:id/duration", h.ExperienceDuration)
	api.Get("/contact", h.Contact)
	api.Get("/completeness", h.Completeness)
	api.Post("/cache/clear", BearerAuth(opts.AdminToken), h.ClearCache)

	return app
}
