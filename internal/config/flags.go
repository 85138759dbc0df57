package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile   = flag.String("log-file", "", "Write logs to this file as well")
	flagSeed      = flag.Uint64("seed", 0, "Random seed (0 = new seed per generation)")
	flagFootprint = flag.Float64("footprint", 0, "World-space edge length of the terrain")
	flagMaxDepth  = flag.Int("max-depth", 0, "Largest accepted recursion depth")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments left after ParseFlags.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagSeed != 0 {
		cfg.Terrain.Seed = *flagSeed
	}
	if *flagFootprint > 0 {
		cfg.Terrain.FootprintSize = *flagFootprint
	}
	if *flagMaxDepth > 0 {
		cfg.Terrain.MaxDepth = *flagMaxDepth
	}
}
