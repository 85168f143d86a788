// Package layouts contains the page shells shared by the admin pages.
package layouts

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/rankandrent/Packaginghippo-sub002/internal/metadata"
	"github.com/rankandrent/Packaginghippo-sub002/internal/ui"
)

// NavItem is an entry of the admin sidebar.
type NavItem struct {
	Label string
	Href  string
}

// AdminNav lists the sidebar entries in display order.
var AdminNav = []NavItem{
	{Label: "Dashboard", Href: "/admin"},
	{Label: "Categories", Href: "/admin/categories"},
	{Label: "Homepage Sections", Href: "/admin/sections"},
}

// AdminPage describes the page rendered inside the admin shell.
type AdminPage struct {
	Title    metadata.Title
	SiteName string
	Path     string // current request path
}

// Admin wraps content with the admin shell: a fixed sidebar and a main
// region that scrolls on its own.
func Admin(page AdminPage, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		siteName := page.SiteName
		if siteName == "" {
			siteName = metadata.DefaultSiteName
		}

		var buf bytes.Buffer
		buf.WriteString(`<!doctype html><html lang="en"><head><meta charset="utf-8">`)
		buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		buf.WriteString(`<title>`)
		buf.WriteString(templ.EscapeString(page.Title.Format(siteName)))
		buf.WriteString(`</title><link rel="stylesheet" href="/static/admin.css"></head><body>`)
		buf.WriteString(`<div class="flex h-screen bg-gray-100">`)

		if err := Sidebar(siteName, page.Path).Render(ctx, &buf); err != nil {
			return err
		}

		buf.WriteString(`<main class="flex-1 overflow-y-auto p-8">`)
		if content != nil {
			if err := content.Render(ctx, &buf); err != nil {
				return err
			}
		}
		buf.WriteString(`</main></div></body></html>`)

		_, err := buf.WriteTo(w)
		return err
	})
}

// Sidebar renders the fixed-width admin navigation.
func Sidebar(siteName, currentPath string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<aside class="w-64 shrink-0 bg-gray-900 text-white flex flex-col">`)
		buf.WriteString(`<div class="px-6 py-5 text-lg font-semibold">`)
		buf.WriteString(templ.EscapeString(siteName))
		buf.WriteString(` Admin</div><nav class="flex-1 px-3 space-y-1">`)

		for _, item := range AdminNav {
			active := isActive(item.Href, currentPath)
			class := ui.MergeClasses(
				"block rounded-md px-3 py-2 text-sm text-gray-300 hover:bg-gray-800",
				ui.When(active, "bg-gray-800 text-white"),
			)
			buf.WriteString(`<a href="`)
			buf.WriteString(templ.EscapeString(string(templ.URL(item.Href))))
			buf.WriteString(`" class="`)
			buf.WriteString(templ.EscapeString(class))
			buf.WriteString(`"`)
			if active {
				buf.WriteString(` aria-current="page"`)
			}
			buf.WriteString(`>`)
			buf.WriteString(templ.EscapeString(item.Label))
			buf.WriteString(`</a>`)
		}

		buf.WriteString(`</nav><div class="px-6 py-4 text-xs text-gray-400"><a href="/">View site</a></div></aside>`)

		_, err := buf.WriteTo(w)
		return err
	})
}

// isActive matches the dashboard exactly and the other entries by prefix.
func isActive(href, current string) bool {
	if href == "/admin" {
		return current == "/admin" || current == "/admin/"
	}
	return current == href || strings.HasPrefix(current, href+"/")
}
