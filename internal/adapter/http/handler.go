package http

import (
	"bytes"
	"errors"
	"html/template"
	"log/slog"
	"strings"
	"time"

	"portfolio/internal/book"
	"portfolio/internal/model"
	"portfolio/internal/navigation"
	"portfolio/internal/theme"
	"portfolio/internal/usecase"
	"portfolio/web"

	"github.com/gofiber/fiber/v2"
)

// Handler serves the book page, the JSON API and the printable CV.
type Handler struct {
	loader   *usecase.PageLoader
	service  *usecase.CVService
	exporter *usecase.Exporter
	tpl      *template.Template
	logger   *slog.Logger
}

// NewHandler wires the handler. exporter may be nil when PDF export is not
// available; /cv.pdf then answers 503.
func NewHandler(loader *usecase.PageLoader, service *usecase.CVService, exporter *usecase.Exporter, tpl *template.Template, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{loader: loader, service: service, exporter: exporter, tpl: tpl, logger: logger}
}

// fail logs the cause and answers with the generic portfolio error.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	h.logger.Error("request failed", "path", c.Path(), "request_id", requestID(c), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": usecase.ErrPortfolioUnavailable.Error()})
}

func notFound(c *fiber.Ctx, what string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": what + " not found"})
}

func themeFor(c *fiber.Ctx) theme.State {
	return theme.For(c.Cookies(theme.CookieName), c.Get(theme.HintHeader))
}

func (h *Handler) render(c *fiber.Ctx, status int, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := h.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("template failed", "template", name, "request_id", requestID(c), "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "rendering failed")
	}
	c.Type("html", "utf-8")
	return c.Status(status).Send(buf.Bytes())
}

// Index renders the whole book. Any load failure renders the error page
// with the generic message.
func (h *Handler) Index(c *fiber.Ctx) error {
	c.Set("Accept-CH", theme.HintHeader)
	c.Vary(theme.HintHeader)
	th := themeFor(c)

	data, err := h.loader.Load(c.UserContext())
	if err != nil {
		return h.render(c, fiber.StatusInternalServerError, web.ErrorTemplate, web.ErrorView{
			Status:  fiber.StatusInternalServerError,
			Message: usecase.ErrPortfolioUnavailable.Error(),
			Theme:   th,
		})
	}
	pages := book.Map(data.CVData, data.YearsOfExperience)
	return h.render(c, fiber.StatusOK, web.BookTemplate, web.BookView{
		Cover:    book.CoverFor(data.CVData),
		Pages:    pages,
		Chapters: book.Chapters(pages),
		Theme:    th,
		Data:     data,
	})
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) PageData(c *fiber.Ctx) error {
	data, err := h.loader.Load(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(data)
}

func (h *Handler) CV(c *fiber.Ctx) error {
	cv, err := h.service.CompleteCV(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(cv)
}

func (h *Handler) FeaturedCV(c *fiber.Ctx) error {
	cv, err := h.service.CVWithFeaturedProjects(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(cv)
}

type bookResponse struct {
	Cover      book.Cover     `json:"cover"`
	TotalPages int            `json:"totalPages"`
	Chapters   []book.Chapter `json:"chapters"`
	Pages      []book.Page    `json:"pages"`
}

func (h *Handler) loadBook(c *fiber.Ctx) (*bookResponse, error) {
	data, err := h.loader.Load(c.UserContext())
	if err != nil {
		return nil, err
	}
	pages := book.Map(data.CVData, data.YearsOfExperience)
	return &bookResponse{
		Cover:      book.CoverFor(data.CVData),
		TotalPages: len(pages),
		Chapters:   book.Chapters(pages),
		Pages:      pages,
	}, nil
}

func (h *Handler) Book(c *fiber.Ctx) error {
	b, err := h.loadBook(c)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(b)
}

type turnRequest struct {
	Page  int              `json:"page"`
	Event navigation.Event `json:"event"`
}

// TurnPage resolves one navigation event against a page number.
func (h *Handler) TurnPage(c *fiber.Ctx) error {
	var req turnRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	et, ok := navigation.ParseEventType(string(req.Event.Type))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid event type"})
	}
	req.Event.Type = et

	b, err := h.loadBook(c)
	if err != nil {
		return h.fail(c, err)
	}
	if req.Page < 0 || req.Page >= b.TotalPages {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "page out of range"})
	}
	dir := req.Event.Direction()
	target := navigation.Turn(req.Page, b.TotalPages, dir)
	return c.JSON(fiber.Map{
		"direction": dir.String(),
		"page":      b.Pages[target],
		"moved":     target != req.Page,
	})
}

func (h *Handler) Statistics(c *fiber.Ctx) error {
	st, err := h.service.Statistics(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(st)
}

func (h *Handler) Technologies(c *fiber.Ctx) error {
	top, err := h.service.TopTechnologies(c.UserContext(), c.QueryInt("limit", usecase.DefaultTopTechnologies))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(top)
}

// Projects lists projects, optionally filtered by ?tag= and searched by ?q=.
func (h *Handler) Projects(c *fiber.Ctx) error {
	ctx := c.UserContext()
	tag, q := strings.TrimSpace(c.Query("tag")), strings.TrimSpace(c.Query("q"))

	var (
		projects []model.Project
		err      error
	)
	switch {
	case q != "":
		projects, err = h.service.SearchProjects(ctx, q)
	case tag != "":
		projects, err = h.service.Repo().ProjectsByTag(ctx, tag)
	default:
		projects, err = h.service.Repo().AllProjects(ctx)
	}
	if err != nil {
		return h.fail(c, err)
	}
	if q != "" && tag != "" {
		projects = withTag(projects, tag)
	}
	return c.JSON(projects)
}

func withTag(projects []model.Project, tag string) []model.Project {
	out := []model.Project{}
	for _, p := range projects {
		for _, t := range p.Tags {
			if strings.EqualFold(t, tag) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

func (h *Handler) Project(c *fiber.Ctx) error {
	p, err := h.service.Repo().ProjectByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	if p == nil {
		return notFound(c, "project")
	}
	return c.JSON(p)
}

func (h *Handler) CurrentExperience(c *fiber.Ctx) error {
	e, err := h.service.Repo().CurrentExperience(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	if e == nil {
		return notFound(c, "current experience")
	}
	return c.JSON(e)
}

func (h *Handler) ExperienceDuration(c *fiber.Ctx) error {
	id := c.Params("id")
	d, ok, err := h.service.ExperienceDuration(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	if !ok {
		return notFound(c, "experience")
	}
	return c.JSON(fiber.Map{"id": id, "duration": d})
}

func (h *Handler) Contact(c *fiber.Ctx) error {
	contact, err := h.service.Repo().ContactInfo(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(contact)
}

func (h *Handler) Completeness(c *fiber.Ctx) error {
	return c.JSON(h.service.PortfolioCompleteness(c.UserContext()))
}

func (h *Handler) ClearCache(c *fiber.Ctx) error {
	h.service.ClearCache()
	h.logger.Info("cache cleared via api", "request_id", requestID(c))
	return c.JSON(fiber.Map{"status": "cleared"})
}

func (h *Handler) Theme(c *fiber.Ctx) error {
	c.Vary(theme.HintHeader)
	return c.JSON(themeFor(c))
}

type themeRequest struct {
	Theme string `json:"theme" form:"theme"`
}

// SetTheme persists the preference cookie. Form posts are redirected back
// to the book; JSON clients get the new state.
func (h *Handler) SetTheme(c *fiber.Ctx) error {
	var req themeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	pref, ok := theme.ParsePreference(req.Theme)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "theme must be light, dark or system"})
	}
	c.Cookie(&fiber.Cookie{
		Name:     theme.CookieName,
		Value:    string(pref),
		Path:     "/",
		Expires:  time.Now().AddDate(1, 0, 0),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	if !strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON) {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	st := theme.For(string(pref), c.Get(theme.HintHeader))
	return c.JSON(st)
}

// PDF streams the printable CV.
func (h *Handler) PDF(c *fiber.Ctx) error {
	if h.exporter == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "pdf export not available"})
	}
	pdf, err := h.exporter.PDF(c.UserContext())
	if errors.Is(err, usecase.ErrRenderFailed) {
		h.logger.Error("pdf render failed", "request_id", requestID(c), "error", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "PDF export is temporarily unavailable. Please try again later."})
	}
	if err != nil {
		return h.fail(c, err)
	}
	c.Type("pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="cv.pdf"`)
	return c.Send(pdf)
}
