package queries

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

const (
	CountProductsSQL     = `SELECT COUNT(*) FROM "Product"`
	CountCategoriesSQL   = `SELECT COUNT(*) FROM "ProductCategory"`
	CountTestimonialsSQL = `SELECT COUNT(*) FROM "Testimonial"`

	ListCategorySummariesSQL = `SELECT "name", "imageUrl" FROM "ProductCategory"`

	ListHomepageSectionsSQL = `SELECT "sectionKey", "isActive", "order" FROM "HomepageSection" ORDER BY "order" ASC`
)

// CategorySummary is a product category projected to its name and image.
type CategorySummary struct {
	Name     string  `json:"name"`
	ImageURL *string `json:"imageUrl"`
}

// HomepageSectionRow is a homepage section projected to its ordering state.
type HomepageSectionRow struct {
	SectionKey string `json:"sectionKey"`
	IsActive   bool   `json:"isActive"`
	Order      int32  `json:"order"`
}

// CountProducts returns the number of products.
func (q *Queries) CountProducts(ctx context.Context) (int64, error) {
	return q.count(ctx, "queries.CountProducts", CountProductsSQL)
}

// CountCategories returns the number of product categories.
func (q *Queries) CountCategories(ctx context.Context) (int64, error) {
	return q.count(ctx, "queries.CountCategories", CountCategoriesSQL)
}

// CountTestimonials returns the number of testimonials.
func (q *Queries) CountTestimonials(ctx context.Context) (int64, error) {
	return q.count(ctx, "queries.CountTestimonials", CountTestimonialsSQL)
}

func (q *Queries) count(ctx context.Context, name, statement string) (n int64, err error) {
	ctx, span := q.startSpan(ctx, name, statement)
	defer func() { endSpan(span, err) }()

	if err := q.db.QueryRow(ctx, statement).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}

// ListCategorySummaries returns every category in the order the store
// yields them. A NULL image becomes a nil ImageURL.
func (q *Queries) ListCategorySummaries(ctx context.Context) (items []CategorySummary, err error) {
	ctx, span := q.startSpan(ctx, "queries.ListCategorySummaries", ListCategorySummariesSQL)
	defer func() { endSpan(span, err) }()

	rows, err := q.db.Query(ctx, ListCategorySummariesSQL)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	items = []CategorySummary{}
	for rows.Next() {
		var (
			name  string
			image pgtype.Text
		)
		if err := rows.Scan(&name, &image); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, CategorySummary{Name: name, ImageURL: pgTextToPtr(image)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return items, nil
}

// ListHomepageSections returns every homepage section ordered by its
// "order" column, lowest first.
func (q *Queries) ListHomepageSections(ctx context.Context) (items []HomepageSectionRow, err error) {
	ctx, span := q.startSpan(ctx, "queries.ListHomepageSections", ListHomepageSectionsSQL)
	defer func() { endSpan(span, err) }()

	rows, err := q.db.Query(ctx, ListHomepageSectionsSQL)
	if err != nil {
		return nil, fmt.Errorf("list homepage sections: %w", err)
	}
	defer rows.Close()

	items = []HomepageSectionRow{}
	for rows.Next() {
		var s HomepageSectionRow
		if err := rows.Scan(&s.SectionKey, &s.IsActive, &s.Order); err != nil {
			return nil, fmt.Errorf("scan homepage section: %w", err)
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list homepage sections: %w", err)
	}
	return items, nil
}

// pgTextToPtr converts pgtype.Text to a string pointer, nil when NULL.
func pgTextToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}
