package pages

import (
	"bytes"
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/rankandrent/Packaginghippo-sub002/internal/database/queries"
	"github.com/rankandrent/Packaginghippo-sub002/internal/ui"
)

// Sections lists the homepage sections in the order they are given.
func Sections(sections []queries.HomepageSectionRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<h1 class="text-2xl font-bold mb-6">Homepage Sections</h1>`)
		buf.WriteString(`<table class="min-w-full bg-white shadow rounded-lg"><thead><tr>`)
		buf.WriteString(`<th class="px-4 py-2 text-left">Order</th><th class="px-4 py-2 text-left">Section</th><th class="px-4 py-2 text-left">Status</th>`)
		buf.WriteString(`</tr></thead><tbody>`)

		for _, s := range sections {
			buf.WriteString(`<tr class="border-t" data-section="`)
			buf.WriteString(templ.EscapeString(s.SectionKey))
			buf.WriteString(`"><td class="px-4 py-2">`)
			buf.WriteString(strconv.Itoa(int(s.Order)))
			buf.WriteString(`</td><td class="px-4 py-2 font-mono">`)
			buf.WriteString(templ.EscapeString(s.SectionKey))
			buf.WriteString(`</td><td class="px-4 py-2">`)
			statusBadge(&buf, s.IsActive)
			buf.WriteString(`</td></tr>`)
		}

		buf.WriteString(`</tbody></table>`)
		_, err := buf.WriteTo(w)
		return err
	})
}

func statusBadge(buf *bytes.Buffer, active bool) {
	label := "Hidden"
	if active {
		label = "Active"
	}
	class := ui.MergeClasses(
		"inline-flex rounded-full px-2 py-0.5 text-xs font-medium bg-gray-100 text-gray-600",
		ui.When(active, "bg-green-100 text-green-800"),
	)
	buf.WriteString(`<span class="`)
	buf.WriteString(templ.EscapeString(class))
	buf.WriteString(`">`)
	buf.WriteString(label)
	buf.WriteString(`</span>`)
}
