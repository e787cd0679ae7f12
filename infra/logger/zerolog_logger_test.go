package logger

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZerologLoggerMethods(t *testing.T) {
	assert.NoError(t, os.Setenv("APP_ENV", "dev"))
	defer assert.NoError(t, os.Unsetenv("APP_ENV"))
	l := NewZerologLogger("test")
	if l == nil {
		t.Fatalf("nil logger")
	}
	l.Debugf("debug %d", 1)
	l.Debugw("debug", map[string]any{"k": 1})
	l.Infof("info %s", "test")
	l.Warnf("warn")
	l.Errorf("error")
}

func TestSetGlobalLevel(t *testing.T) {
	if err := SetGlobalLevel("warn"); err != nil {
		t.Fatalf("set level: %v", err)
	}
	if err := SetGlobalLevel("verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if err := SetGlobalLevel("debug"); err != nil {
		t.Fatalf("reset level: %v", err)
	}
}
