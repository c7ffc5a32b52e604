// Marquee - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"context"
	"strings"
	"sync"

	"github.com/tomtom215/marquee/internal/app"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/logging"
)

// commandContext lazily loads the config and engine shared by subcommands.
type commandContext struct {
	configPath  string
	datasetPath string
	logLevel    string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext() *commandContext {
	return &commandContext{}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, err := config.LoadWithKoanf(strings.TrimSpace(c.configPath))
		if err != nil {
			c.configErr = err
			return
		}
		if p := strings.TrimSpace(c.datasetPath); p != "" {
			cfg.Dataset.Path = p
		}
		logging.Init(logging.Config{
			Level:     c.logLevel,
			Format:    "console",
			Timestamp: true,
		})
		c.config = cfg
	})
	return c.config, c.configErr
}

// withEngine builds the engine, hands it to fn and releases it afterwards.
func (c *commandContext) withEngine(ctx context.Context, fn func(*app.Components) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	components, err := app.Build(ctx, cfg, logging.WithComponent("cli"))
	if err != nil {
		return err
	}
	defer components.Close()
	return fn(components)
}
