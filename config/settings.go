// Copyright (C) 2025 Alemaksus
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at <https://mozilla.org/MPL/2.0/>.

// Package config loads runtime settings for the framework from the
// environment, with an optional .env file for local development.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Client modes. Mock mode runs without any external system; live mode
// targets a real endpoint and requires a base URL.
const (
	ClientModeMock = "mock"
	ClientModeLive = "live"
)

const defaultRequestTimeoutSec = 10

// ErrInvalidSettings indicates that the environment holds an invalid
// configuration value.
var ErrInvalidSettings = errors.New("invalid settings")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Settings holds the runtime configuration loaded from the environment.
type Settings struct {
	// BaseURL is the base URL of the system under test. Required in
	// live mode, unused in mock mode.
	BaseURL string `validate:"omitempty,url"`
	// AuthToken authenticates requests against the system under test.
	AuthToken string
	// ClientMode selects how actual outputs would be obtained.
	ClientMode string `validate:"oneof=mock live"`
	// RequestTimeoutSec bounds individual requests in live mode.
	RequestTimeoutSec int `validate:"gt=0"`
}

// Load reads settings from the environment. A .env file in the working
// directory is loaded first when present; existing environment variables
// take precedence over the file.
func Load() (Settings, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	settings := Settings{
		BaseURL:           os.Getenv("BASE_URL"),
		AuthToken:         os.Getenv("AUTH_TOKEN"),
		ClientMode:        envOrDefault("CLIENT_MODE", ClientModeMock),
		RequestTimeoutSec: defaultRequestTimeoutSec,
	}

	if raw := os.Getenv("REQUEST_TIMEOUT_SEC"); raw != "" {
		timeout, err := strconv.Atoi(raw)
		if err != nil {
			return Settings{}, fmt.Errorf("%w: REQUEST_TIMEOUT_SEC: %v", ErrInvalidSettings, err)
		}
		settings.RequestTimeoutSec = timeout
	}

	if err := validate.Struct(settings); err != nil {
		return Settings{}, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if settings.ClientMode == ClientModeLive && settings.BaseURL == "" {
		return Settings{}, fmt.Errorf("%w: BASE_URL is required in live mode", ErrInvalidSettings)
	}
	return settings, nil
}

func envOrDefault(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
