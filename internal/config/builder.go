package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build validates and returns the built Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithJSON enables JSON output.
func (b *ConfigBuilder) WithJSON(enabled bool) *ConfigBuilder {
	b.cfg.JSONOutput = enabled
	return b
}

// WithFEN sets the starting position.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.InitialFEN = fen
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Log.Verbosity = level
	return b
}

// WithLogFile sends log output to a file.
func (b *ConfigBuilder) WithLogFile(path string) *ConfigBuilder {
	b.cfg.Log.File = path
	return b
}

// WithColor sets the colour mode.
func (b *ConfigBuilder) WithColor(mode ColorMode) *ConfigBuilder {
	b.cfg.Display.Color = mode
	return b
}

// WithFlipped draws the board from Black's side.
func (b *ConfigBuilder) WithFlipped(flipped bool) *ConfigBuilder {
	b.cfg.Display.Flipped = flipped
	return b
}

// WithPerft sets the perft depth and worker count.
func (b *ConfigBuilder) WithPerft(depth, workers int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Workers = workers
	return b
}

// WithHash sets the perft transposition table size.
func (b *ConfigBuilder) WithHash(entries int) *ConfigBuilder {
	b.cfg.Perft.HashEntries = entries
	return b
}

// WithDivide enables per-move perft output.
func (b *ConfigBuilder) WithDivide(divide bool) *ConfigBuilder {
	b.cfg.Perft.Divide = divide
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}
