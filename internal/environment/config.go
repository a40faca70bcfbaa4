package environment

import (
	"os"

	"github.com/joho/godotenv"
)

const defaultAPIBase = "http://localhost:5000/api"

type EnvConfig struct {
	// APIBase is the backend origin all requests go to,
	// e.g. http://localhost:5000/api
	APIBase string
	// NatsURL, when set, enables mirroring run-sweep progress to NATS
	NatsURL string
	// ProgressSubject is the NATS subject progress messages are published to
	ProgressSubject string
}

// ReadEnvConfig loads configuration from the environment, with a .env file
// as an optional source. A missing .env file is not an error; the client
// has sensible defaults for local development.
func ReadEnvConfig() *EnvConfig {
	_ = godotenv.Load()

	result := &EnvConfig{
		APIBase:         os.Getenv("DCODE_API_BASE"),
		NatsURL:         os.Getenv("DCODE_NATS_URL"),
		ProgressSubject: os.Getenv("DCODE_PROGRESS_SUBJECT"),
	}

	if result.APIBase == "" {
		result.APIBase = defaultAPIBase
	}
	if result.ProgressSubject == "" {
		result.ProgressSubject = "dcode.run.progress"
	}

	return result
}
