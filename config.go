package f6k

import (
	"errors"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

type (
	// configFile is the top-level JSON structure.
	configFile struct {
		Policies map[string]PolicyConfig `json:"policies"`
	}

	// PolicyConfig holds the decoded configuration for a single fallback
	// policy. Export it to embed in your own app config structs for JSON or
	// YAML unmarshaling, then call [BuildConfig] to obtain a [Config] for
	// [NewEngine].
	PolicyConfig struct {
		// Strategy is the fallback strategy name.
		// Required. One of: "default_value", "fallback_operation",
		// "cached_value", "throw_error", "return_null".
		Strategy *string `json:"strategy,omitempty" yaml:"strategy,omitempty"`
		// LogFallback enables a diagnostic log entry on every fallback.
		// Optional. Defaults to false.
		LogFallback *bool `json:"log_fallback,omitempty" yaml:"log_fallback,omitempty"`
	}
)

// LoadConfig reads a JSON configuration file and stores the policy
// configurations in a [Registry]. Actual [Engine] instances are not created
// until [GetEngine] is called, allowing the caller to provide the type
// parameter and additional code-level options (default values are typed and
// therefore cannot come from configuration).
func LoadConfig(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("f6k: read config: %w", err)
	}

	var cfg configFile
	if err = json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("f6k: parse config: %w", err)
	}

	// Validate all policies eagerly so errors surface at load time.
	for name, pc := range cfg.Policies {
		if _, buildErr := BuildConfig(name, &pc); buildErr != nil {
			return nil, fmt.Errorf("f6k: policy %q: %w", name, buildErr)
		}
	}

	reg := NewRegistry()
	reg.mu.Lock()
	reg.configs = cfg.Policies
	reg.mu.Unlock()

	return reg, nil
}

// BuildConfig converts a [PolicyConfig] into a [Config] for [NewEngine].
// Use this when you embed [PolicyConfig] in your own config struct and want
// to build an engine without going through [LoadConfig].
func BuildConfig(name string, pc *PolicyConfig) (Config, error) {
	if pc.Strategy == nil {
		return Config{}, errors.New("strategy is required")
	}

	strategy, err := ParseStrategy(*pc.Strategy)
	if err != nil {
		return Config{}, fmt.Errorf("strategy: %w", err)
	}

	cfg := Config{
		Strategy: strategy,
		Name:     name,
	}

	if pc.LogFallback != nil {
		cfg.LogFallback = *pc.LogFallback
	}

	return cfg, nil
}

// GetEngine retrieves a named policy configuration from a config-loaded
// [Registry] and returns a typed [Engine] ready for use. If the name is not
// found in the stored configs, an engine is created with only the provided
// opts and the throw-error strategy.
//
// Additional options can be provided to augment the config-loaded settings
// (e.g., adding hooks, a logger, or a default value).
func GetEngine[T any](reg *Registry, name string, opts ...EngineOption[T]) *Engine[T] {
	reg.mu.Lock()
	pc, ok := reg.configs[name]
	reg.mu.Unlock()

	cfg := Config{
		Strategy: StrategyThrowError,
		Name:     name,
	}

	if ok {
		built, err := BuildConfig(name, &pc)
		if err == nil {
			cfg = built
		}
	}

	allOpts := append([]EngineOption[T]{WithRegistry[T](reg)}, opts...)

	return NewEngine(cfg, allOpts...)
}
