package dedupe

// Config holds the consolidation settings loaded from the environment.
type Config struct {
	// Keys is the ordered list of identifying fields.
	Keys []string `mapstructure:"keys" default:"_id,email"`
	// TimestampField orders records inside a duplicate group.
	TimestampField string `mapstructure:"timestamp_field" default:"entryDate"`
	// MaxPasses bounds the number of consolidation passes.
	MaxPasses int `mapstructure:"max_passes" default:"50"`
	// SkipMissing excludes records lacking a key from that key's detection.
	SkipMissing bool `mapstructure:"skip_missing" default:"false"`
}

// Options converts the configuration into consolidator options.
func (c Config) Options() Options {
	keys := make([]string, len(c.Keys))
	copy(keys, c.Keys)
	return Options{
		Keys:           keys,
		TimestampField: c.TimestampField,
		MaxPasses:      c.MaxPasses,
		SkipMissing:    c.SkipMissing,
	}
}
