// Package queries holds the read-only catalog queries run against the
// storefront schema. Table and column names follow the ORM's default
// mapping: quoted PascalCase tables and camelCase columns.
package queries

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DBTX is satisfied by *pgxpool.Pool, pgx.Conn, pgx.Tx and pgxmock.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Queries runs catalog queries over a DBTX.
type Queries struct {
	db     DBTX
	tracer trace.Tracer
}

// New creates a Queries instance using the global tracer provider.
func New(db DBTX) *Queries {
	return NewWithTracer(db, otel.GetTracerProvider())
}

// NewWithTracer creates a Queries instance tracing through provider.
func NewWithTracer(db DBTX, provider trace.TracerProvider) *Queries {
	return &Queries{
		db:     db,
		tracer: provider.Tracer("github.com/rankandrent/Packaginghippo-sub002/internal/database/queries"),
	}
}

func (q *Queries) startSpan(ctx context.Context, name, statement string) (context.Context, trace.Span) {
	return q.tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "postgresql"),
			attribute.String("db.statement", statement),
		),
	)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
