package queries

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func newTracedMock(t *testing.T) (pgxmock.PgxPoolIface, *Queries, *tracetest.SpanRecorder) {
	t.Helper()

	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	return mock, NewWithTracer(mock, tp), recorder
}

func spanAttr(span sdktrace.ReadOnlySpan, key attribute.Key) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestQueriesRecordSpans(t *testing.T) {
	mock, q, recorder := newTracedMock(t)
	ctx := context.Background()

	mock.ExpectQuery(CountProductsSQL).WillReturnRows(mock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery(ListCategorySummariesSQL).WillReturnRows(mock.NewRows([]string{"name", "imageUrl"}))
	mock.ExpectQuery(ListHomepageSectionsSQL).WillReturnRows(mock.NewRows([]string{"sectionKey", "isActive", "order"}))

	_, err := q.CountProducts(ctx)
	require.NoError(t, err)
	_, err = q.ListCategorySummaries(ctx)
	require.NoError(t, err)
	_, err = q.ListHomepageSections(ctx)
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 3)

	expected := []struct {
		name      string
		statement string
	}{
		{"queries.CountProducts", CountProductsSQL},
		{"queries.ListCategorySummaries", ListCategorySummariesSQL},
		{"queries.ListHomepageSections", ListHomepageSectionsSQL},
	}
	for i, want := range expected {
		span := spans[i]
		assert.Equal(t, want.name, span.Name())
		assert.Equal(t, trace.SpanKindClient, span.SpanKind())
		assert.NotEqual(t, codes.Error, span.Status().Code)

		statement, ok := spanAttr(span, "db.statement")
		require.True(t, ok, "span %s has no db.statement", want.name)
		assert.Equal(t, want.statement, statement.AsString())

		system, ok := spanAttr(span, "db.system")
		require.True(t, ok)
		assert.Equal(t, "postgresql", system.AsString())
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueriesRecordSpanErrors(t *testing.T) {
	mock, q, recorder := newTracedMock(t)
	boom := errors.New("connection reset")

	mock.ExpectQuery(CountTestimonialsSQL).WillReturnError(boom)

	_, err := q.CountTestimonials(context.Background())
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	span := spans[0]
	assert.Equal(t, "queries.CountTestimonials", span.Name())
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Contains(t, span.Status().Description, "connection reset")

	require.NotEmpty(t, span.Events())
	assert.Equal(t, "exception", span.Events()[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
