// SPDX-License-Identifier: MPL-2.0

package config

import "context"

type (
	// LoadOptions defines explicit configuration loading inputs.
	LoadOptions struct {
		// ConfigFilePath forces loading from a specific config file when set.
		ConfigFilePath string
		// ConfigDirPath overrides the config directory lookup when set.
		ConfigDirPath string
	}

	// LoadResult is a loaded configuration and where it came from.
	LoadResult struct {
		Config *Config
		// Path is the config file that was read, or "" when defaults were used.
		Path string
	}

	// Provider loads configuration from explicit options.
	Provider interface {
		Load(ctx context.Context, opts LoadOptions) (LoadResult, error)
	}

	fileProvider struct{}
)

// NewProvider creates a configuration provider.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load reads configuration from the requested source.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (LoadResult, error) {
	cfg, path, err := loadWithOptions(ctx, opts)
	if err != nil {
		return LoadResult{}, err
	}

	return LoadResult{Config: cfg, Path: path}, nil
}
