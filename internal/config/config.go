// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration of the descriptor server
// and the terminal client. It is assembled from a .env file, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the version string and the log level.
	App App `envPrefix:"APP_"`

	// Server holds listen addresses and timeouts of the HTTP and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Gateway controls the bogus gateway routes.
	Gateway Gateway `envPrefix:"GATEWAY_"`

	// Metrics controls the Prometheus endpoint.
	Metrics Metrics `envPrefix:"METRICS_"`

	// Adapter holds the settings the client uses to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the host:port the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the host:port the gRPC server listens on. The gRPC
	// server is not started when it is empty.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Gateway controls the /api/gateway/{action} routes.
type Gateway struct {
	// Disabled removes the gateway routes.
	// Env: GATEWAY_DISABLED
	Disabled bool `env:"DISABLED"`
}

// Metrics controls the Prometheus exposition endpoint.
type Metrics struct {
	// Disabled removes the endpoint and the HTTP metrics middleware.
	// Env: METRICS_DISABLED
	Disabled bool `env:"DISABLED"`

	// Path is the route the registry is served on.
	// Env: METRICS_PATH
	Path string `env:"PATH"`
}

// Adapter holds the client's view of the server.
type Adapter struct {
	// HTTPAddress is the base URL or host:port of the descriptor server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// LogFile is where the terminal client writes its log.
	// Env: ADAPTER_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Defaults fill whatever no source provided.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
	DefaultLogLevel        = "debug"
	DefaultMetricsPath     = "/metrics"
	DefaultClientLogFile   = "logs"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Metrics: Metrics{
			Path: DefaultMetricsPath,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			LogFile:        DefaultClientLogFile,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration.
// Sources are consulted in this order, and the first one to set a field
// wins:
//  1. Environment variables (after loading .env, which never overrides
//     variables that are already set)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// ClientConfig is the subset of [StructuredConfig] the terminal client needs.
type ClientConfig struct {
	App     App
	Adapter Adapter
}

// GetClientConfig builds and validates the client view of the merged
// configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		App:     cfg.App,
		Adapter: cfg.Adapter,
	}

	return clientCfg, clientCfg.validate()
}
