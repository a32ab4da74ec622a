package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	if c.Scan.Workers == 0 {
		c.Scan.Workers = defaultScanWorkers
	}
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("MEETINGAUDIO_MEETINGS_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.MeetingsDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.MeetingsDir) == "" {
		c.Paths.MeetingsDir = defaultMeetingsDir
	}

	var err error
	if c.Paths.MeetingsDir, err = expandPath(strings.TrimSpace(c.Paths.MeetingsDir)); err != nil {
		return fmt.Errorf("paths.meetings_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	if value, ok := os.LookupEnv("MEETINGAUDIO_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	if value, ok := os.LookupEnv("MEETINGAUDIO_LOG_FORMAT"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Format = value
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
