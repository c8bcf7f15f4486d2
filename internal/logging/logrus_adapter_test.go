package logging

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hookedAdapter returns an adapter whose output is captured by a test hook
// instead of being written anywhere.
func hookedAdapter(t *testing.T) (Logger, *test.Hook) {
	t.Helper()
	logrusLogger, hook := test.NewNullLogger()
	logrusLogger.SetLevel(logrus.DebugLevel)
	return NewLogrusAdapterFromLogger(logrusLogger), hook
}

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
		expectJSON  bool
	}{
		{"Debug text", "debug", "text", logrus.DebugLevel, false},
		{"Info json", "info", "json", logrus.InfoLevel, true},
		{"Warn text", "warn", "text", logrus.WarnLevel, false},
		{"Error json", "error", "json", logrus.ErrorLevel, true},
		{"Unknown level falls back to info", "loud", "text", logrus.InfoLevel, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			adapter, ok := NewLogrusAdapter(tc.level, tc.format).(*LogrusAdapter)
			require.True(t, ok)

			assert.Equal(t, tc.expectLevel, adapter.entry.Logger.Level)
			_, isJSON := adapter.entry.Logger.Formatter.(*logrus.JSONFormatter)
			assert.Equal(t, tc.expectJSON, isJSON)
		})
	}
}

func TestNewLogrusAdapterFromLogger_Nil(t *testing.T) {
	adapter, ok := NewLogrusAdapterFromLogger(nil).(*LogrusAdapter)
	require.True(t, ok)
	assert.NotNil(t, adapter.entry.Logger)
}

func TestLogrusAdapter_Levels(t *testing.T) {
	tests := []struct {
		name    string
		log     func(Logger)
		level   logrus.Level
		message string
	}{
		{"Debug", func(l Logger) { l.Debug("cleaning row") }, logrus.DebugLevel, "cleaning row"},
		{"Info", func(l Logger) { l.Info("batch committed") }, logrus.InfoLevel, "batch committed"},
		{"Warn", func(l Logger) { l.Warn("retrying commit") }, logrus.WarnLevel, "retrying commit"},
		{"Error", func(l Logger) { l.Error("commit failed") }, logrus.ErrorLevel, "commit failed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logger, hook := hookedAdapter(t)
			tc.log(logger)

			require.Len(t, hook.Entries, 1)
			assert.Equal(t, tc.level, hook.LastEntry().Level)
			assert.Equal(t, tc.message, hook.LastEntry().Message)
		})
	}
}

func TestLogrusAdapter_FieldsReachTheEntry(t *testing.T) {
	logger, hook := hookedAdapter(t)

	logger.Info("ingesting",
		Field{Key: FieldDataset, Value: "card"},
		Field{Key: FieldCount, Value: 42})

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, "card", entry.Data[FieldDataset])
	assert.Equal(t, 42, entry.Data[FieldCount])
}

func TestLogrusAdapter_FormattedVariants(t *testing.T) {
	logger, hook := hookedAdapter(t)

	logger.Infof("cleaned %d rows", 7)
	logger.Errorf("source %s failed", "card")

	require.Len(t, hook.Entries, 2)
	assert.Equal(t, "cleaned 7 rows", hook.Entries[0].Message)
	assert.Equal(t, "source card failed", hook.Entries[1].Message)
}

func TestLogrusAdapter_WithError(t *testing.T) {
	logger, hook := hookedAdapter(t)

	logger.WithError(errors.New("deadline exceeded")).Error("commit failed")

	require.Len(t, hook.Entries, 1)
	err, ok := hook.LastEntry().Data[logrus.ErrorKey].(error)
	require.True(t, ok)
	assert.EqualError(t, err, "deadline exceeded")
}

func TestLogrusAdapter_DerivedLoggersAccumulateFields(t *testing.T) {
	logger, hook := hookedAdapter(t)

	derived := logger.
		WithField(FieldSource, "marketplace").
		WithFields(Field{Key: FieldUploadID, Value: "up-1"})
	derived.Info("stored")

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, "marketplace", entry.Data[FieldSource])
	assert.Equal(t, "up-1", entry.Data[FieldUploadID])

	// The parent logger stays free of the derived fields.
	hook.Reset()
	logger.Info("plain")
	require.Len(t, hook.Entries, 1)
	assert.Empty(t, hook.LastEntry().Data)
}

func TestLogrusAdapter_ImplementsInterface(t *testing.T) {
	var _ Logger = (*LogrusAdapter)(nil)
}
