// Package config handles configuration management for sortie.
// It layers embedded defaults, the user's config.toml and SORTIE_
// environment variables, in that order.
package config
