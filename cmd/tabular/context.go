package main

import (
	"log/slog"
	"strings"
	"sync"

	"tabular/internal/config"
	"tabular/internal/logging"
	"tabular/internal/workflow"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// newRunner builds a workflow runner with logging wired from config; verbose
// drops the log level to debug.
func (c *commandContext) newRunner(verbose bool) (*workflow.Runner, *slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.NewFromConfig(cfg, verbose)
	if err != nil {
		return nil, nil, err
	}
	return workflow.NewRunner(logger), logger, nil
}
