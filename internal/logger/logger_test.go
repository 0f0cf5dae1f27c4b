package logger

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitializeWithWriter(t *testing.T) {
	var buf bytes.Buffer
	InitializeWithWriter(&buf, "debug", "json")
	t.Cleanup(func() { InitializeWithWriter(io.Discard, "info", "text") })

	Calculation("due_date", "due_date", "2020-07-05")
	assert.Contains(t, buf.String(), `"step":"due_date"`)
	assert.Contains(t, buf.String(), `"level":"DEBUG"`)

	buf.Reset()
	InitializeWithWriter(&buf, "info", "text")
	Debug("hidden")
	Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestGet_Concurrent(t *testing.T) {
	defaultLogger.Store(nil)
	t.Cleanup(func() { InitializeWithWriter(io.Discard, "info", "text") })

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NotNil(t, Get())
			EnterMethod("Concurrent")
		}()
		go func() {
			defer wg.Done()
			InitializeWithWriter(io.Discard, "error", "text")
		}()
	}
	wg.Wait()

	assert.NotNil(t, Get())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", ParseLevel("debug").String())
	assert.Equal(t, "WARN", ParseLevel("Warning").String())
	assert.Equal(t, "ERROR", ParseLevel("error").String())
	assert.Equal(t, "INFO", ParseLevel("verbose").String())
}
