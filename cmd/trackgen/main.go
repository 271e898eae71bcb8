// trackgen generates race-track terrain and inspects the result.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/ridgeline/internal/config"
	"github.com/Faultbox/ridgeline/internal/logger"
)

func main() {
	flag.Usage = printUsage
	config.ParseFlags()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]

	var run func(*config.Config, []string) error
	switch command {
	case "generate", "gen":
		run = cmdGenerate
	case "track":
		run = cmdTrack
	case "query", "q":
		run = cmdQuery
	case "heightmap", "hm":
		run = cmdHeightmap
	case "config":
		run = cmdConfig
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	logger.Sugar.Debugf("config: %+v", cfg)

	if err := run(cfg, args); err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func printUsage() {
	fmt.Println(`trackgen - procedural race-track terrain generator

Usage:
  trackgen [global options] <command> [options]

Global options:
  --config <file>   Config file (default ./ridgeline.yaml or the user config dir)
  --seed <n>        Terrain and track seed
  --size <n>        Terrain cells per side
  --scale <f>       World units per cell
  --steps <n>       Track waypoint count
  --radius <n>      Road half-width in cells
  --debug           Debug logging

Commands:
  generate [-smooth]              Build the world and print a summary
  track                           Print the track waypoints
  query [-r radius] <x> <z>       Sample the finished terrain at a world position
  heightmap [-bands] [-o file]    Write a BMP preview of the terrain
  config show | save [path]       Print or save the effective config

Examples:
  trackgen generate
  trackgen --seed 7 --size 256 heightmap -bands -o seed7.bmp
  trackgen query -r 3 0 -9
  trackgen --steps 200 track`)
}
