package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNew_ParsesLevel(t *testing.T) {
	log := New("debug")
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log = New("nonsense")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
}
