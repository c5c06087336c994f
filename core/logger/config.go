package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format is the log encoding (console or json).
	Format string `mapstructure:"format" default:"console"`
	// ChangeLog is the file merge decisions are appended to.
	ChangeLog string `mapstructure:"change_log" default:"change.log"`
	// Mirror copies change log entries to the console.
	Mirror bool `mapstructure:"mirror" default:"true"`
	// MirrorTo is the console stream mirrored entries go to (stdout or stderr).
	MirrorTo string `mapstructure:"mirror_to" default:"stdout"`
}
