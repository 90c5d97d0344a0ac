package profile

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for profiling configuration.
type Flags struct {
	CPUProfile    string
	HeapProfile   string
	AllocsProfile string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds profile output paths. Empty paths are disabled, so the zero
// value profiles nothing.
type Config struct {
	Flags Flags

	CPUProfile    string
	HeapProfile   string
	AllocsProfile string
}

// NewConfig creates a [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		CPUProfile:    "cpu-profile",
		HeapProfile:   "heap-profile",
		AllocsProfile: "allocs-profile",
	}

	return f.NewConfig()
}

// RegisterFlags adds profiling flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.CPUProfile, c.Flags.CPUProfile, "", "write CPU profile to file")
	flags.StringVar(&c.HeapProfile, c.Flags.HeapProfile, "", "write heap profile to file on exit")
	flags.StringVar(&c.AllocsProfile, c.Flags.AllocsProfile, "", "write allocs profile to file on exit")
}

// RegisterCompletions marks the profile flags as taking file names.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	for _, name := range []string{c.Flags.CPUProfile, c.Flags.HeapProfile, c.Flags.AllocsProfile} {
		err := cmd.MarkFlagFilename(name, "prof", "pprof")
		if err != nil {
			return err
		}
	}

	return nil
}

// NewProfiler creates a [Profiler] using this [Config].
func (c *Config) NewProfiler() *Profiler {
	return &Profiler{
		Config: *c,
	}
}
