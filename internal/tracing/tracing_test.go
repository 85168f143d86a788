package tracing

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestSetup_Stdout(t *testing.T) {
	t.Cleanup(func() { otel.SetTracerProvider(noop.NewTracerProvider()) })

	var buf bytes.Buffer
	shutdown, err := Setup(ExporterStdout, &buf)
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "queries.CountProducts")
	span.End()

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), `"Name":"queries.CountProducts"`)
}

func TestSetup_None(t *testing.T) {
	for _, name := range []string{"", ExporterNone} {
		shutdown, err := Setup(name, nil)
		require.NoError(t, err)
		assert.NoError(t, shutdown(context.Background()))
	}
}

func TestSetup_Unknown(t *testing.T) {
	_, err := Setup("zipkin", nil)
	assert.Error(t, err)
}
