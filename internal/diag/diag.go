// Package diag implements the read-only database sanity checks run before
// content generation: catalog counts, the category listing and the
// homepage section ordering.
package diag

import (
	"bytes"
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rankandrent/Packaginghippo-sub002/internal/database/queries"
)

// Output lines shared with tooling that greps the diagnostics.
const (
	EmptyCatalogWarning = "WARNING: No products or categories found. AI generation has nothing to write about."
	SectionsBanner      = "--- Current DB State ---"
)

// Catalog is the read side of the storefront schema the checks need.
// *queries.Queries implements it.
type Catalog interface {
	CountProducts(ctx context.Context) (int64, error)
	CountCategories(ctx context.Context) (int64, error)
	CountTestimonials(ctx context.Context) (int64, error)
	ListCategorySummaries(ctx context.Context) ([]queries.CategorySummary, error)
	ListHomepageSections(ctx context.Context) ([]queries.HomepageSectionRow, error)
}

// Counts is the result of the catalog count check.
type Counts struct {
	Products     int64
	Categories   int64
	Testimonials int64
}

// NeedsWarning reports whether content generation would have nothing to
// work from. Testimonials do not count.
func (c Counts) NeedsWarning() bool {
	return c.Products == 0 && c.Categories == 0
}

// CollectCounts runs the three count queries one after another.
func CollectCounts(ctx context.Context, catalog Catalog) (Counts, error) {
	var (
		c   Counts
		err error
	)
	if c.Products, err = catalog.CountProducts(ctx); err != nil {
		return Counts{}, fmt.Errorf("count products: %w", err)
	}
	if c.Categories, err = catalog.CountCategories(ctx); err != nil {
		return Counts{}, fmt.Errorf("count categories: %w", err)
	}
	if c.Testimonials, err = catalog.CountTestimonials(ctx); err != nil {
		return Counts{}, fmt.Errorf("count testimonials: %w", err)
	}
	return c, nil
}

// WriteCounts prints one line per count and the warning when it applies.
func WriteCounts(w io.Writer, c Counts) error {
	lines := []string{
		"Products: " + strconv.FormatInt(c.Products, 10),
		"Categories: " + strconv.FormatInt(c.Categories, 10),
		"Testimonials: " + strconv.FormatInt(c.Testimonials, 10),
	}
	if c.NeedsWarning() {
		lines = append(lines, EmptyCatalogWarning)
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RunCounts collects and prints the catalog counts.
func RunCounts(ctx context.Context, catalog Catalog, w io.Writer) error {
	counts, err := CollectCounts(ctx, catalog)
	if err != nil {
		return err
	}
	return WriteCounts(w, counts)
}

// RunCategories prints every category as a single "Categories: <json>" entry,
// in the order the store returned them.
func RunCategories(ctx context.Context, catalog Catalog, w io.Writer) error {
	categories, err := catalog.ListCategorySummaries(ctx)
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}
	if categories == nil {
		categories = []queries.CategorySummary{}
	}

	// Names are printed verbatim; "Boxes & Bags" must not become "Boxes \u0026 Bags".
	var payload bytes.Buffer
	enc := json.NewEncoder(&payload)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(categories); err != nil {
		return fmt.Errorf("encode categories: %w", err)
	}
	_, err = fmt.Fprintf(w, "Categories: %s", payload.Bytes())
	return err
}

// SortSections orders sections by ascending order value. Ties keep their
// relative position.
func SortSections(sections []queries.HomepageSectionRow) {
	slices.SortStableFunc(sections, func(a, b queries.HomepageSectionRow) int {
		return cmp.Compare(a.Order, b.Order)
	})
}

// RenderSections renders the rows as a console table with an index column.
func RenderSections(sections []queries.HomepageSectionRow) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("(index)", "sectionKey", "isActive", "order")

	for i, s := range sections {
		t.Row(
			strconv.Itoa(i),
			s.SectionKey,
			strconv.FormatBool(s.IsActive),
			strconv.Itoa(int(s.Order)),
		)
	}
	return t.Render()
}

// RunSections prints the banner followed by the homepage sections table.
func RunSections(ctx context.Context, catalog Catalog, w io.Writer) error {
	sections, err := catalog.ListHomepageSections(ctx)
	if err != nil {
		return fmt.Errorf("list homepage sections: %w", err)
	}
	SortSections(sections)

	_, err = fmt.Fprintf(w, "%s\n%s\n", SectionsBanner, RenderSections(sections))
	return err
}
