package logger

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNewWithWriterUsesPrefixAndLevel(t *testing.T) {
	prev := log.GetLevel()
	defer log.SetLevel(prev)
	log.SetLevel(log.WarnLevel)

	var buf bytes.Buffer
	l := NewWithWriter(&buf, "search")
	l.Info("hidden")
	l.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "search")
}

func TestNewWithConfigLevel(t *testing.T) {
	l := NewWithConfig("x", log.ErrorLevel, false, false, log.JSONFormatter)
	assert.Equal(t, log.ErrorLevel, l.GetLevel())
}
