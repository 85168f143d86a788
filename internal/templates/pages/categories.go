package pages

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/rankandrent/Packaginghippo-sub002/internal/database/queries"
)

// Categories lists every category with its image, if any.
func Categories(categories []queries.CategorySummary) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<h1 class="text-2xl font-bold mb-6">Categories</h1>`)

		if len(categories) == 0 {
			buf.WriteString(`<p class="text-gray-500">No categories yet.</p>`)
			_, err := buf.WriteTo(w)
			return err
		}

		buf.WriteString(`<table class="min-w-full bg-white shadow rounded-lg"><thead><tr>`)
		buf.WriteString(`<th class="px-4 py-2 text-left">Name</th><th class="px-4 py-2 text-left">Image</th>`)
		buf.WriteString(`</tr></thead><tbody>`)

		for _, c := range categories {
			buf.WriteString(`<tr class="border-t"><td class="px-4 py-2">`)
			buf.WriteString(templ.EscapeString(c.Name))
			buf.WriteString(`</td><td class="px-4 py-2">`)
			if c.ImageURL != nil && *c.ImageURL != "" {
				buf.WriteString(`<img class="h-10 w-10 rounded object-cover" src="`)
				buf.WriteString(templ.EscapeString(string(templ.URL(*c.ImageURL))))
				buf.WriteString(`" alt="`)
				buf.WriteString(templ.EscapeString(c.Name))
				buf.WriteString(`">`)
			} else {
				buf.WriteString(`<span class="text-gray-400">—</span>`)
			}
			buf.WriteString(`</td></tr>`)
		}

		buf.WriteString(`</tbody></table>`)
		_, err := buf.WriteTo(w)
		return err
	})
}
