package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestWithModel_DoesNotMutateReceiver(t *testing.T) {
	base := DefaultConfig()
	custom := base.WithModel("gemini-2.5-pro")

	assert.Equal(t, "gemini-2.5-pro", custom.Model)
	assert.Equal(t, "gemini-2.5-flash", base.Model)
	assert.Equal(t, base.Provider, custom.Provider)
}
