package config

const (
	defaultConfigPath  = "~/.config/meetingaudio/config.toml"
	projectConfigName  = "meetingaudio.toml"
	defaultMeetingsDir = "~/meetings"
	defaultLogFormat   = "console"
	defaultLogLevel    = "warn"
	defaultScanWorkers = 4
	maxScanWorkers     = 64
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			MeetingsDir: defaultMeetingsDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Scan: Scan{
			Workers: defaultScanWorkers,
		},
	}
}
