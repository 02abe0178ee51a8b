package server

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"seo-pages-go/pkg/catalog"
	"seo-pages-go/pkg/logger"
	"seo-pages-go/pkg/storage"
	"seo-pages-go/pkg/utils"
)

// RelatedLimit caps the related pages returned with a page.
const RelatedLimit = 8

type Options struct {
	// DeploySlugs restricts /api/slugs; empty means every slug.
	DeploySlugs []string
	// Sitemap renders /sitemap.xml; nil disables the sitemap routes.
	Sitemap *storage.SitemapExporter
	// Metrics serves /metrics; nil disables the route.
	Metrics http.Handler
	Logger  *logger.Logger
}

// PageResponse is the body of GET /api/pages/:slug.
type PageResponse struct {
	Page    catalog.Page   `json:"page"`
	Related []catalog.Page `json:"related"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	cat  *Catalog
	opts Options
	log  *logger.Logger
}

// NewApp builds the fiber application serving cat.
func NewApp(cat *Catalog, opts Options) *fiber.App {
	h := &handlers{cat: cat, opts: opts, log: opts.Logger}
	if h.log == nil {
		h.log = logger.GetLogger().WithField("component", "server")
	}

	app := fiber.New(fiber.Config{
		AppName:               "seo-pages",
		DisableStartupMessage: true,
		ErrorHandler:          h.errorHandler,
	})

	app.Get("/healthz", h.health)

	api := app.Group("/api")
	api.Get("/slugs", h.slugs)
	api.Get("/pages/:slug", h.page)
	api.Get("/categories", h.categories)
	api.Get("/categories/:category", h.category)
	api.Get("/priorities/:priority", h.priority)

	if opts.Sitemap != nil {
		app.Get("/sitemap.xml", h.sitemap)
		app.Get("/sitemap-:n.xml", h.sitemap)
	}
	if opts.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(opts.Metrics))
	}
	return app
}

func (h *handlers) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	if code >= fiber.StatusInternalServerError {
		h.log.WithError(err).WithField("path", c.Path()).Error("Request failed")
	}
	return c.Status(code).JSON(ErrorResponse{Error: err.Error()})
}

func (h *handlers) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"pages":  h.cat.Snapshot().Len(),
	})
}

func (h *handlers) slugs(c *fiber.Ctx) error {
	reg := h.cat.Snapshot()
	if len(h.opts.DeploySlugs) == 0 {
		return c.JSON(reg.Slugs())
	}
	out := make([]string, 0, len(h.opts.DeploySlugs))
	for _, s := range h.opts.DeploySlugs {
		if _, ok := reg.Get(s); ok {
			out = append(out, s)
		}
	}
	return c.JSON(out)
}

func (h *handlers) page(c *fiber.Ctx) error {
	reg := h.cat.Snapshot()
	slug := c.Params("slug")
	p, ok := reg.Get(slug)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "page not found: "+slug)
	}
	return c.JSON(PageResponse{Page: p, Related: reg.Related(slug, RelatedLimit)})
}

func (h *handlers) categories(c *fiber.Ctx) error {
	return c.JSON(h.cat.Snapshot().CategoryCounts())
}

func (h *handlers) category(c *fiber.Ctx) error {
	cat, err := catalog.ParseCategory(c.Params("category"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(h.cat.Snapshot().ByCategory(cat))
}

func (h *handlers) priority(c *fiber.Ctx) error {
	pr, err := catalog.ParsePriority(c.Params("priority"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(h.cat.Snapshot().ByPriority(pr))
}

func (h *handlers) sitemap(c *fiber.Ctx) error {
	files, err := h.opts.Sitemap.Build(h.cat.Snapshot())
	if err != nil {
		return err
	}
	name := c.Path()[1:]
	for _, f := range files {
		if f.Name == name {
			c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
			c.Set(fiber.HeaderETag, `"`+utils.ShortHash(string(f.Data))+`"`)
			return c.Send(f.Data)
		}
	}
	return fiber.NewError(fiber.StatusNotFound, "sitemap not found: "+name)
}
