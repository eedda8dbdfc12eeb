// Package settings owns the JSON configuration document that the DeskDev
// application reads at startup: its shape, the shipped defaults and the
// writer that installs it.
package settings

// Document is the on-disk configuration. Field order is the serialized order.
type Document struct {
	LLM      LLM      `json:"llm"`
	App      App      `json:"app"`
	Features Features `json:"features"`
}

// LLM selects the model backend.
type LLM struct {
	Provider    string  `json:"provider" validate:"required"`
	Model       string  `json:"model" validate:"required"`
	BaseURL     string  `json:"base_url" validate:"required,url"`
	APIKey      string  `json:"api_key"`
	Temperature float64 `json:"temperature" validate:"gte=0,lte=2"`
	MaxTokens   int     `json:"max_tokens" validate:"gt=0"`
}

type App struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	LandingPage bool   `json:"landing_page"`
	GitHubAuth  bool   `json:"github_auth"`
}

type Features struct {
	AutoConfigureLLM bool `json:"auto_configure_llm"`
	ShowLandingPage  bool `json:"show_landing_page"`
	RequireAuth      bool `json:"require_auth"`
}

// Default returns the configuration shipped with a fresh install: a local
// Ollama backend, landing page and GitHub sign-in enabled.
func Default() Document {
	return Document{
		LLM: LLM{
			Provider:    "ollama",
			Model:       "deepseek-coder:base",
			BaseURL:     "http://host.docker.internal:11434",
			APIKey:      "ollama",
			Temperature: 0.1,
			MaxTokens:   4096,
		},
		App: App{
			Name:        "DeskDev.ai",
			Description: "AI-Powered Software Development Assistant",
			LandingPage: true,
			GitHubAuth:  true,
		},
		Features: Features{
			AutoConfigureLLM: true,
			ShowLandingPage:  true,
			RequireAuth:      true,
		},
	}
}
