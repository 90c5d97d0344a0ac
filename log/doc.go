// Package log builds [log/slog] handlers for the player.
//
// Handlers come in three formats ([FormatJSON], [FormatLogfmt], and
// [FormatText], the latter rendered by charm.land/log) and four levels
// ([LevelError], [LevelWarn], [LevelInfo], and [LevelDebug]). [Config] binds
// both to CLI flags:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.Flags())
//
//	logger, err := cfg.NewLogger(os.Stderr)
//	slog.SetDefault(logger)
//
// While frames are drawn, log lines written to the terminal would tear the
// picture. A [Publisher] collects them instead and fans them out to
// subscribers, such as a status row:
//
//	pub := log.NewPublisher()
//	handler := log.NewHandler(pub, log.LevelInfo, log.FormatLogfmt)
//	sub := pub.Subscribe()
//	for entry := range sub.C() {
//	    // Show entry.
//	}
package log
