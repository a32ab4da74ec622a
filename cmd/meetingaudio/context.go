package main

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"meetingaudio/internal/api"
	"meetingaudio/internal/config"
	"meetingaudio/internal/logging"
)

type globalFlags struct {
	config    string
	logLevel  string
	logFormat string
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if level := strings.TrimSpace(c.flags.logLevel); level != "" {
			cfg.Logging.Level = level
		}
		if format := strings.TrimSpace(c.flags.logFormat); format != "" {
			cfg.Logging.Format = format
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) service() (*api.Service, error) {
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return api.NewService(logger), nil
}

// lookupLogger builds a stderr-only logger for single lookups. A config file
// or environment that fails to load degrades to default logging instead of
// failing the lookup, and nothing is created on disk.
func (c *commandContext) lookupLogger() *slog.Logger {
	opts := logging.Options{Level: "warn", Format: "console"}
	cfg, _, _, cfgErr := config.Load(strings.TrimSpace(c.flags.config))
	if cfgErr == nil {
		opts.Level = cfg.Logging.Level
		opts.Format = cfg.Logging.Format
	}
	if level := strings.TrimSpace(c.flags.logLevel); level != "" {
		opts.Level = level
	}
	if format := strings.TrimSpace(c.flags.logFormat); format != "" {
		opts.Format = format
	}

	logger, err := logging.New(opts)
	if err != nil {
		logger, _ = logging.NewFromConfig(nil)
		logger.Warn("logging options ignored", logging.Error(err))
	}
	if cfgErr != nil {
		logger.Warn("configuration ignored for lookup", logging.Error(cfgErr))
	}
	return logger
}

// withCorrelation tags ctx with a fresh identifier for this invocation.
func (c *commandContext) withCorrelation(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := logging.CorrelationIDFromContext(ctx); ok {
		return ctx
	}
	return logging.WithCorrelationID(ctx, "")
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
