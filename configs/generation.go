package configs

// GenerationConfig holds the connection settings for the external
// image/3D generation service. The base URL is injected into the
// gateway at construction; nothing reads it globally.
type GenerationConfig struct {
	BaseURL        string `yaml:"base_url"`
	ApiKey         string `yaml:"api_key"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}
