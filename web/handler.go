package web

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/qwest/portfolioapi/api/admin"
	"github.com/qwest/portfolioapi/api/gallery"
	"github.com/qwest/portfolioapi/api/item"
	"github.com/qwest/portfolioapi/shared/zaplogger"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/site.css
var siteCSS []byte

// categoryTab is one entry of the public navigation.
type categoryTab struct {
	Key   string
	Label string
}

var categoryTabs = []categoryTab{
	{Key: gallery.CategoryAll, Label: "ALL"},
	{Key: string(item.CategoryResearch), Label: "RESEARCH"},
	{Key: string(item.CategoryPaperReview), Label: "PAPER REVIEW"},
	{Key: string(item.CategoryProject), Label: "PROJECTS"},
	{Key: string(item.CategoryAbout), Label: "ABOUT"},
}

type subTabLink struct {
	Label  string
	URL    string
	Active bool
}

// ItemSource is implemented by the item service.
type ItemSource interface {
	List(ctx context.Context) []item.ItemModel
	Get(ctx context.Context, id string) (*item.ItemModel, bool)
}

// Handler renders the public gallery and admin pages.
type Handler struct {
	items    ItemSource
	tmpl     *template.Template
	siteName string
}

func NewHandler(items ItemSource, siteName string) (*Handler, error) {
	funcs := template.FuncMap{
		"deref":          deref,
		"joinTags":       joinTags,
		"linksJSON":      linksJSON,
		"filterURL":      filterURL,
		"clearFilterURL": clearFilterURL,
	}

	tmpl, err := template.New("web").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %v", err)
	}

	return &Handler{items: items, tmpl: tmpl, siteName: siteName}, nil
}

// Static serves the stylesheet.
func (h *Handler) Static(c echo.Context) error {
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", siteCSS)
}

type galleryPage struct {
	SiteName          string
	State             gallery.State
	Categories        []categoryTab
	SubTabs           []subTabLink
	FilterValues      []string
	Items             []item.ItemModel
	ToggleEnlargedURL string
}

// Gallery handles GET /. All view state travels in query parameters
// and is replayed through the gallery reducer.
func (h *Handler) Gallery(c echo.Context) error {
	s := gallery.StateFromQuery(
		c.QueryParam("category"),
		c.QueryParam("tab"),
		c.QueryParam("filter"),
		c.QueryParam("enlarged"),
	)

	items := h.items.List(c.Request().Context())
	view := gallery.Derive(s, items)

	page := galleryPage{
		SiteName:          h.siteName,
		State:             s,
		Categories:        categoryTabs,
		SubTabs:           subTabLinks(s),
		FilterValues:      view.FilterValues,
		Items:             view.Items,
		ToggleEnlargedURL: stateURL(s, withEnlarged(!s.Enlarged)),
	}

	return h.render(c, "gallery", page)
}

type detailPage struct {
	SiteName     string
	Item         *item.ItemModel
	RenderedHTML template.HTML
}

// ItemDetail handles GET /items/:id.
func (h *Handler) ItemDetail(c echo.Context) error {
	m, ok := h.items.Get(c.Request().Context(), c.Param("id"))
	if !ok {
		return c.Redirect(http.StatusFound, "/")
	}

	rendered, err := RenderMarkdown(m.Description)
	if err != nil {
		zaplogger.Warn("markdown render failed", zaplogger.Fields{"id": m.ID, "error": err.Error()})
		rendered = template.HTML(template.HTMLEscapeString(m.Description))
	}

	return h.render(c, "detail", detailPage{
		SiteName:     h.siteName,
		Item:         m,
		RenderedHTML: rendered,
	})
}

type loginPage struct {
	SiteName     string
	ErrorMessage string
}

// AdminLogin handles GET /admin/login. Exempt from the gate.
func (h *Handler) AdminLogin(c echo.Context) error {
	msg := ""
	switch c.QueryParam("error") {
	case "config":
		msg = "Admin password is not configured on the server."
	case "password":
		msg = "Incorrect password."
	}
	return h.render(c, "admin_login", loginPage{SiteName: h.siteName, ErrorMessage: msg})
}

type adminPage struct {
	SiteName     string
	View         admin.View
	Items        []item.ItemModel
	Categories   []item.Category
	FormAction   string
	ErrorMessage string
}

// AdminPanel handles GET /admin. The editing flow state is rebuilt
// from query parameters via the flow reducer.
func (h *Handler) AdminPanel(c echo.Context) error {
	items := h.items.List(c.Request().Context())

	view := admin.DefaultView()
	if c.QueryParam("form") != "" {
		if id := c.QueryParam("id"); id != "" {
			if target, ok := h.items.Get(c.Request().Context(), id); ok {
				view = admin.Reduce(view, admin.OpenEdit{Item: *target})
			} else {
				view = admin.Reduce(view, admin.OpenCreate{})
			}
		} else {
			view = admin.Reduce(view, admin.OpenCreate{})
		}
	} else if id := c.QueryParam("delete"); id != "" {
		view = admin.Reduce(view, admin.RequestDelete{ID: id})
	}

	page := adminPage{
		SiteName:     h.siteName,
		View:         view,
		Items:        items,
		Categories:   item.Categories,
		ErrorMessage: c.QueryParam("error"),
	}

	if view.Mode == admin.ModeForm {
		page.FormAction = "/admin/items"
		if view.Target != nil {
			page.FormAction = "/admin/items/" + view.Target.ID
		}
		return h.render(c, "admin_form", page)
	}

	return h.render(c, "admin_list", page)
}

func (h *Handler) render(c echo.Context, name string, data interface{}) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return h.tmpl.ExecuteTemplate(c.Response(), name, data)
}

// subTabLinks builds the paper review sub-tab navigation.
func subTabLinks(s gallery.State) []subTabLink {
	if s.Category != string(item.CategoryPaperReview) {
		return nil
	}
	tabs := []struct {
		tab   gallery.SubTab
		label string
	}{
		{gallery.SubTabMain, "MAIN"},
		{gallery.SubTabPublication, "BY PUBLICATION"},
		{gallery.SubTabDomain, "BY DOMAIN"},
	}

	links := make([]subTabLink, 0, len(tabs))
	for _, t := range tabs {
		next := gallery.Reduce(s, gallery.SelectSubTab{Tab: t.tab})
		links = append(links, subTabLink{
			Label:  t.label,
			URL:    stateURL(next),
			Active: s.SubTab == t.tab,
		})
	}
	return links
}

type stateOption func(*gallery.State)

func withEnlarged(v bool) stateOption {
	return func(s *gallery.State) { s.Enlarged = v }
}

// stateURL serializes gallery state back into a query string.
func stateURL(s gallery.State, opts ...stateOption) string {
	for _, opt := range opts {
		opt(&s)
	}

	q := url.Values{}
	if s.Category != gallery.CategoryAll {
		q.Set("category", s.Category)
	}
	if s.SubTab != gallery.SubTabMain {
		q.Set("tab", string(s.SubTab))
	}
	if s.Filter != nil {
		q.Set("filter", *s.Filter)
	}
	if s.Enlarged {
		q.Set("enlarged", "true")
	}

	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}

func filterURL(s gallery.State, value string) string {
	next := gallery.Reduce(s, gallery.SelectFilter{Value: value})
	return stateURL(next)
}

func clearFilterURL(s gallery.State) string {
	next := gallery.Reduce(s, gallery.ClearFilter{})
	return stateURL(next)
}

func deref(v interface{}) interface{} {
	switch p := v.(type) {
	case *string:
		if p == nil {
			return ""
		}
		return *p
	case *int:
		if p == nil {
			return ""
		}
		return *p
	}
	return v
}

func joinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

func linksJSON(links item.LinkList) string {
	if len(links) == 0 {
		return ""
	}
	b, err := json.Marshal(links)
	if err != nil {
		return ""
	}
	return string(b)
}
