package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger(t *testing.T) {
	observed, logs := observer.New(zap.DebugLevel)

	logger := NewZapLogger(zap.New(observed), "query")
	logger.Infof("evaluated %s", "queryAllPictures")
	logger.Extend("verify").Tracef("round %d", 1)

	entries := logs.AllUntimed()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "query", entries[0].LoggerName)
		assert.Equal(t, "evaluated queryAllPictures", entries[0].Message)
		assert.Equal(t, "query.verify", entries[1].LoggerName)
		assert.Equal(t, zap.DebugLevel, entries[1].Level)
	}
}

func TestNilZapLoggerIsSilent(t *testing.T) {
	logger := NewZapLogger(nil, "query")

	assert.Equal(t, logger, logger.Extend("child"))
	logger.Errorf("nothing %s", "happens")
}
