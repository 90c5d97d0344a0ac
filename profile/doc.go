// Package profile writes runtime profiles of a playback run.
//
// CPU profiling covers the whole run; heap and allocs snapshots are written
// when the run ends. Each profile is enabled by giving its flag a path:
//
//	cfg := profile.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//
//	p := cfg.NewProfiler()
//	err := p.Start()
//	// Play.
//	err = p.Stop()
package profile
