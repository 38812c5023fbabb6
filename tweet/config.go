package tweet

import (
	"fmt"
	"os"
	"strings"
)

// Environment variables consumed by LoadConfig.
const (
	EnvAPIToken         = "REPLICATE_API_TOKEN"
	EnvAPITokenFallback = "REPLICATE_API_KEY"
	EnvTextModel        = "TEXT_MODEL"
	EnvImageModel       = "IMAGE_MODEL"
)

// Config carries the environment-derived settings for a run. It is populated
// once at startup and passed to the components that need it; nothing reads
// the environment after that.
type Config struct {
	APIToken   string
	TextModel  string
	ImageModel string
}

// LoadConfig reads the required environment variables. The API credential may
// be supplied as REPLICATE_API_TOKEN or REPLICATE_API_KEY; the first one
// present wins.
func LoadConfig() (Config, error) {
	token, err := requireEnv(EnvAPIToken, EnvAPITokenFallback)
	if err != nil {
		return Config{}, err
	}
	textModel, err := requireEnv(EnvTextModel)
	if err != nil {
		return Config{}, err
	}
	imageModel, err := requireEnv(EnvImageModel)
	if err != nil {
		return Config{}, err
	}
	return Config{APIToken: token, TextModel: textModel, ImageModel: imageModel}, nil
}

func requireEnv(name string, fallbacks ...string) (string, error) {
	for _, n := range append([]string{name}, fallbacks...) {
		if v := os.Getenv(n); v != "" {
			return v, nil
		}
	}
	if len(fallbacks) > 0 {
		return "", fmt.Errorf("missing required environment variable %s (also checked %s)", name, strings.Join(fallbacks, ", "))
	}
	return "", fmt.Errorf("missing required environment variable %s", name)
}
