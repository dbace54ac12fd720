package logging_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/extcheck/pkg/logging"
)

func TestContextFunctions(t *testing.T) {
	t.Run("FromContext falls back to default", func(t *testing.T) {
		assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
		//nolint:staticcheck // nil context is handled explicitly
		assert.Same(t, logging.Default(), logging.FromContext(nil))
	})

	t.Run("WithLogger stores the logger", func(t *testing.T) {
		testLogger := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), testLogger.Logger)
		assert.Same(t, testLogger.Logger, logging.FromContext(ctx))
	})

	t.Run("WithRoot and WithOperation add fields", func(t *testing.T) {
		testLogger := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), testLogger.Logger)
		ctx = logging.WithRoot(ctx, "/src/repo")
		ctx = logging.WithOperation(ctx, "check")

		logging.FromContext(ctx).Info().Msg("test message")

		testLogger.AssertContains(t, `"root":"/src/repo"`)
		testLogger.AssertContains(t, `"operation":"check"`)
		testLogger.AssertContains(t, "test message")
	})
}
