// SPDX-License-Identifier: MIT

package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/skillgraph/config"
	"github.com/katalvlaran/skillgraph/logging"
)

func TestNew_Levels(t *testing.T) {
	for _, tc := range []struct {
		cfg     config.LoggingConfig
		debug   bool
		warning bool
	}{
		{config.LoggingConfig{Level: "debug", Format: "console"}, true, true},
		{config.LoggingConfig{Level: "info", Format: "json"}, false, true},
		{config.LoggingConfig{Level: "error", Format: ""}, false, false},
	} {
		logger, err := logging.New(tc.cfg)
		require.NoError(t, err, "%+v", tc.cfg)
		assert.Equal(t, tc.debug, logger.Core().Enabled(zapcore.DebugLevel), "%+v", tc.cfg)
		assert.Equal(t, tc.warning, logger.Core().Enabled(zapcore.WarnLevel), "%+v", tc.cfg)
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := logging.New(config.LoggingConfig{Level: "loud", Format: "json"})
	assert.ErrorContains(t, err, `level "loud"`)

	_, err = logging.New(config.LoggingConfig{Level: "info", Format: "xml"})
	assert.ErrorIs(t, err, logging.ErrUnknownFormat)
}
