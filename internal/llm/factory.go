package llm

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// EnvMode is the environment variable name for mode selection.
	EnvMode = "CHARCHAT_MODE"
	// ModeMock indicates the mock client should be used.
	ModeMock = "MOCK"
)

// NewCompletionClient creates a completion client based on CHARCHAT_MODE.
// If CHARCHAT_MODE=MOCK, returns a MockClient; otherwise a real Client.
func NewCompletionClient(baseURL, apiKey string, timeout time.Duration) CompletionClient {
	if os.Getenv(EnvMode) == ModeMock {
		log.Info().Msg("CHARCHAT_MODE=MOCK detected, using mock completion client")
		return NewMockClient()
	}
	return NewClient(baseURL, apiKey, timeout)
}
