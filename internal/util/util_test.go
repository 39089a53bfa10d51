package util

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
)

func TestInitLogger(t *testing.T) {
	prev := GetLogger()
	defer SetLogger(prev)

	for _, env := range []string{"development", "production"} {
		require.NoError(t, InitLogger(env, "pos-test"))
		assert.NotNil(t, GetLogger())
		assert.Same(t, GetLogger(), zap.L())
	}
}

func TestGetLoggerDefaultsToNop(t *testing.T) {
	prev := logger
	defer func() { logger = prev }()

	logger = nil
	assert.NotNil(t, GetLogger())
}

func TestStartSpanUsesGlobalProvider(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(tp)

	_, span := StartSpan(context.Background(), "Ledger.Test")
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "Ledger.Test", ended[0].Name())
}
