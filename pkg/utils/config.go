package utils

import (
	"os"
	"strconv"
	"time"
)

type AuthConfig struct {
	JWTSecret   string
	JWTIssuer   string
	JWTDuration time.Duration
}

func LoadAuthConfig() AuthConfig {
	secret := os.Getenv("RECOHUB_JWT_SECRET")
	if secret == "" {
		// dev default (change for demo / production)
		secret = "dev-secret-change-me"
	}

	issuer := os.Getenv("RECOHUB_JWT_ISSUER")
	if issuer == "" {
		issuer = "recohub"
	}

	duration := 24 * time.Hour
	if ttl := os.Getenv("RECOHUB_JWT_TTL_HOURS"); ttl != "" {
		if hours, err := strconv.Atoi(ttl); err == nil && hours > 0 {
			duration = time.Duration(hours) * time.Hour
		}
	}

	return AuthConfig{
		JWTSecret:   secret,
		JWTIssuer:   issuer,
		JWTDuration: duration,
	}
}

// GenConfig configures the remote generation endpoint (an OpenAI-style
// chat-completions service).
type GenConfig struct {
	Endpoint string
	APIKey   string
	Model    string
}

func LoadGenConfig() GenConfig {
	endpoint := os.Getenv("RECOHUB_AI_ENDPOINT")
	if endpoint == "" {
		endpoint = "https://ai.gateway.lovable.dev/v1/chat/completions"
	}

	model := os.Getenv("RECOHUB_AI_MODEL")
	if model == "" {
		model = "google/gemini-2.5-flash"
	}

	return GenConfig{
		Endpoint: endpoint,
		APIKey:   os.Getenv("RECOHUB_AI_API_KEY"),
		Model:    model,
	}
}
