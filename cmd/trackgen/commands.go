package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/ridgeline/internal/config"
	"github.com/Faultbox/ridgeline/internal/terrain"
	"github.com/Faultbox/ridgeline/internal/world"
)

var errUsage = errors.New("invalid usage")

func cmdGenerate(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	smooth := fs.Bool("smooth", cfg.Mesh.SmoothNormals, "Average normals across quads")
	fs.Parse(args)
	cfg.Mesh.SmoothNormals = *smooth

	w, err := world.Generate(cfg, nil)
	if err != nil {
		return err
	}

	s := w.Stats
	fmt.Printf("Seed:        %d\n", w.Seed)
	fmt.Printf("Terrain:     %d×%d cells, scale %.2f\n", w.Query.Size(), w.Query.Size(), w.Query.Scale())
	fmt.Printf("Heights:     %.2f .. %.2f\n", s.MinHeight, s.MaxHeight)
	fmt.Printf("Track:       %d waypoints, %.1f units\n", len(w.Path), s.TrackLength)
	fmt.Printf("Road:        %d points, %d windows, %d skipped\n", s.Carve.Points, s.Carve.Windows, s.Carve.Skipped)
	fmt.Printf("Geometry:    %d vertices, %d triangles\n", w.Render.VertexCount(), w.Render.TriangleCount())
	fmt.Printf("Checkpoints: %d\n", len(w.Checkpoints))
	fmt.Printf("Start:       (%.2f, %.2f, %.2f)\n", w.Start.Position.X, w.Start.Position.Y, w.Start.Position.Z)
	fmt.Printf("Elapsed:     %v\n", s.Elapsed)
	fmt.Println()
	fmt.Println("Cells by band:")

	bands := make([]terrain.Band, 0, len(s.Bands))
	for b := range s.Bands {
		bands = append(bands, b)
	}
	sort.Slice(bands, func(i, j int) bool {
		return s.Bands[bands[i]] > s.Bands[bands[j]]
	})
	total := w.Query.Size() * w.Query.Size()
	for _, b := range bands {
		n := s.Bands[b]
		fmt.Printf("  %-10s %8d  %5.1f%%\n", b, n, 100*float64(n)/float64(total))
	}
	return nil
}

func cmdTrack(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("track", flag.ExitOnError)
	fs.Parse(args)

	path := world.Track(cfg)
	for i, p := range path {
		fmt.Printf("%d\t%.3f\t%.3f\n", i, p.X, p.Y)
	}
	fmt.Fprintf(os.Stderr, "%d waypoints, %.1f units\n", len(path), path.Length())
	return nil
}

func cmdQuery(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	radius := fs.Int("r", 2, "Neighborhood radius in cells")
	fs.Parse(args)

	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: trackgen query [-r radius] <x> <z>")
		return errUsage
	}
	x, err := strconv.ParseFloat(fs.Arg(0), 32)
	if err != nil {
		return fmt.Errorf("parsing x: %w", err)
	}
	z, err := strconv.ParseFloat(fs.Arg(1), 32)
	if err != nil {
		return fmt.Errorf("parsing z: %w", err)
	}

	w, err := world.Generate(cfg, nil)
	if err != nil {
		return err
	}
	q := w.Query
	px, pz := float32(x), float32(z)

	cell, ok := q.Cell(px, pz)
	if !ok {
		lo, hi := q.Dimensions()
		fmt.Printf("(%.2f, %.2f) is off the terrain [%.1f, %.1f]\n", px, pz, lo.X, hi.X)
		return nil
	}
	smooth, _ := q.InterpolatedHeight(px, pz)
	fmt.Printf("Position:     (%.2f, %.2f)\n", px, pz)
	fmt.Printf("Band:         %s\n", cell.Band)
	fmt.Printf("Height:       %.3f\n", cell.Height)
	fmt.Printf("Interpolated: %.3f\n", smooth)
	fmt.Println()

	side := 2*max(*radius, 0) + 1
	for i, s := range q.Surroundings(px, pz, *radius) {
		if s.Kind < 0 {
			fmt.Printf("%9s", ".")
		} else {
			fmt.Printf("%7.2f%-2s", s.Height, bandMark(terrain.Band(s.Kind)))
		}
		if (i+1)%side == 0 {
			fmt.Println()
		}
	}
	return nil
}

func cmdHeightmap(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("heightmap", flag.ExitOnError)
	bands := fs.Bool("bands", false, "Color cells by band instead of height")
	output := fs.String("o", "heightmap.bmp", "Output file")
	fs.Parse(args)

	w, err := world.Generate(cfg, nil)
	if err != nil {
		return err
	}

	img := renderHeightmap(w.Query, *bands)
	if err := writeBMP(*output, img); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%dx%d)\n", *output, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}

func cmdConfig(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: trackgen config show | save [path]")
		return errUsage
	}

	switch args[0] {
	case "show":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		os.Stdout.Write(data)
	case "save":
		if len(args) > 1 {
			if err := cfg.SaveTo(args[1]); err != nil {
				return err
			}
			fmt.Printf("Saved %s\n", args[1])
			return nil
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Printf("Saved to %s\n", config.ConfigDir())
	default:
		return fmt.Errorf("%w: unknown config action %q", errUsage, args[0])
	}
	return nil
}
