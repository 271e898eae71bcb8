package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagSeed   = flag.Int64("seed", -1, "Terrain and track seed")
	flagSize   = flag.Int("size", 0, "Terrain cells per side")
	flagScale  = flag.Float64("scale", 0, "World units per cell")
	flagSteps  = flag.Int("steps", -1, "Track waypoint count")
	flagRadius = flag.Int("radius", -1, "Road half-width in cells")
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
// Unset flags keep their sentinel value and change nothing.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSeed >= 0 {
		cfg.Terrain.Seed = uint32(*flagSeed)
	}
	if *flagSize > 0 {
		cfg.Terrain.Size = *flagSize
	}
	if *flagScale > 0 {
		cfg.Terrain.Scale = float32(*flagScale)
	}
	if *flagSteps >= 0 {
		cfg.Track.Steps = *flagSteps
	}
	if *flagRadius >= 0 {
		cfg.Road.Radius = *flagRadius
	}
}
