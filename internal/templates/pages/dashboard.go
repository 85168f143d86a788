// Package pages renders the admin pages shown inside layouts.Admin.
package pages

import (
	"bytes"
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/rankandrent/Packaginghippo-sub002/internal/diag"
)

// Dashboard shows the catalog counts and the empty-catalog warning.
func Dashboard(counts diag.Counts) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<h1 class="text-2xl font-bold mb-6">Dashboard</h1>`)

		if counts.NeedsWarning() {
			buf.WriteString(`<div role="alert" class="mb-6 rounded-md border border-yellow-300 bg-yellow-50 p-4 text-sm text-yellow-800">`)
			buf.WriteString(templ.EscapeString(diag.EmptyCatalogWarning))
			buf.WriteString(`</div>`)
		}

		buf.WriteString(`<div class="grid grid-cols-3 gap-6">`)
		statCard(&buf, "Products", counts.Products)
		statCard(&buf, "Categories", counts.Categories)
		statCard(&buf, "Testimonials", counts.Testimonials)
		buf.WriteString(`</div>`)

		_, err := buf.WriteTo(w)
		return err
	})
}

func statCard(buf *bytes.Buffer, label string, n int64) {
	buf.WriteString(`<div class="rounded-lg bg-white p-6 shadow"><p class="text-sm text-gray-500">`)
	buf.WriteString(templ.EscapeString(label))
	buf.WriteString(`</p><p class="mt-2 text-3xl font-semibold" data-stat="`)
	buf.WriteString(templ.EscapeString(label))
	buf.WriteString(`">`)
	buf.WriteString(strconv.FormatInt(n, 10))
	buf.WriteString(`</p></div>`)
}
