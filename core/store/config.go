package store

// Config holds the locations of the leads files.
type Config struct {
	// Input is the leads file to read.
	Input string `mapstructure:"input" default:"leads.json"`
	// Output is the file the consolidated leads are written to.
	Output string `mapstructure:"output" default:"consolidated-leads.json"`
	// Indent is the number of spaces used to indent written files.
	Indent int `mapstructure:"indent" default:"2"`
}
