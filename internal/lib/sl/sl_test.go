package sl_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khussac/proconnect-api/internal/lib/sl"
)

func TestErr_ReturnsCorrectAttr(t *testing.T) {
	err := errors.New("something went wrong")
	attr := sl.Err(err)

	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, slog.StringValue("something went wrong"), attr.Value)
}

func TestErr_NilError(t *testing.T) {
	assert.Panics(t, func() {
		_ = sl.Err(nil)
	})
}

func TestSetupLogger_AllEnvs(t *testing.T) {
	for _, env := range []string{sl.EnvLocal, sl.EnvDev, sl.EnvProd, "unknown"} {
		logger := sl.SetupLogger(env)
		assert.NotNil(t, logger, "env %q", env)
	}
}
