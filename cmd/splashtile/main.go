package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dixieflatline76/SplashTile/config"
	"github.com/dixieflatline76/SplashTile/pkg/tile"
	"github.com/dixieflatline76/SplashTile/util/log"
)

const usage = `usage: splashtile <command> [flags]

commands:
  build [-monitor WxH]... [-name tile] [-min N] [-floor WxH] [-out dir] image...
  solve -image WxH -monitor WxH [-min N] [-floor WxH]
  merge left right [out]
`

// resolutionList collects repeated -monitor flags.
type resolutionList []tile.Resolution

func (l *resolutionList) String() string {
	parts := make([]string, 0, len(*l))
	for _, r := range *l {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, ",")
}

func (l *resolutionList) Set(s string) error {
	r, err := tile.ParseResolution(s)
	if err != nil {
		return err
	}
	*l = append(*l, r)
	return nil
}

// resolutionFlag is a single optional WxH flag.
type resolutionFlag struct {
	tile.Resolution
}

func (f *resolutionFlag) Set(s string) error {
	r, err := tile.ParseResolution(s)
	if err != nil {
		return err
	}
	f.Resolution = r
	return nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.GetConfig()

	var err error
	switch os.Args[1] {
	case "build":
		err = runBuild(cfg, os.Args[2:])
	case "solve":
		err = runSolve(cfg, os.Args[2:])
	case "merge":
		err = runMerge(cfg, os.Args[2:])
	case "-h", "--help", "help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func newBuilder(cfg *config.Config) (*tile.Builder, error) {
	crop, err := tile.ParseCropMode(cfg.CropMode)
	if err != nil {
		return nil, err
	}
	return tile.NewBuilder(tile.Options{
		Quality: cfg.JPEGQuality,
		Workers: cfg.Workers,
		Crop:    crop,
		Progress: func(done, total int) {
			log.Debugf("prepared %d/%d images", done, total)
		},
	}), nil
}

// configMonitors parses the monitors listed in the config file.
func configMonitors(cfg *config.Config) (resolutionList, error) {
	var monitors resolutionList
	for _, m := range cfg.Monitors {
		if err := monitors.Set(m); err != nil {
			return nil, fmt.Errorf("config monitors: %w", err)
		}
	}
	return monitors, nil
}

func floorFlag(fs *flag.FlagSet, cfg *config.Config) *resolutionFlag {
	floor := &resolutionFlag{tile.Resolution{Width: cfg.MinTileWidth, Height: cfg.MinTileHeight}}
	fs.Var(floor, "floor", "smallest acceptable cropped tile, WxH")
	return floor
}

func runBuild(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	var monitors resolutionList
	fs.Var(&monitors, "monitor", "target monitor resolution WxH (repeatable)")
	name := fs.String("name", config.DefaultTileName, "output file name without extension")
	minCount := fs.Int("min", -1, "layout needs more cells than this; -1 uses the image count")
	out := fs.String("out", cfg.OutputDir, "output directory (default: next to the first image)")
	crop := fs.String("crop", cfg.CropMode, "crop mode: center or smart")
	floor := floorFlag(fs, cfg)
	fs.Parse(args)

	if len(monitors) == 0 {
		var err error
		if monitors, err = configMonitors(cfg); err != nil {
			return err
		}
	}
	if len(monitors) == 0 {
		return fmt.Errorf("no monitor resolution given (use -monitor or the config file)")
	}

	cfg.CropMode = *crop
	b, err := newBuilder(cfg)
	if err != nil {
		return err
	}
	req := tile.Request{
		Images:    fs.Args(),
		MinCount:  *minCount,
		MinTile:   floor.Resolution,
		Name:      *name,
		OutputDir: *out,
	}

	ctx := context.Background()
	if len(monitors) == 1 {
		req.Container = monitors[0]
		result, ok, err := b.Build(ctx, req)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("No layout fits; try a lower -floor or -min.")
			return nil
		}
		fmt.Println(result.Path)
		return nil
	}

	results, err := b.BuildForMonitors(ctx, req, tile.MonitorsFromResolutions(monitors))
	for _, r := range results {
		fmt.Println(r.Path)
	}
	return err
}

func runSolve(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	native := &resolutionFlag{}
	container := &resolutionFlag{}
	fs.Var(native, "image", "native source resolution WxH")
	fs.Var(container, "monitor", "container resolution WxH")
	minCount := fs.Int("min", 0, "layout needs more cells than this")
	floor := floorFlag(fs, cfg)
	fs.Parse(args)

	if !native.Valid() || !container.Valid() {
		return fmt.Errorf("both -image and -monitor are required")
	}

	layout, ok := tile.Solve(native.Resolution, container.Resolution, *minCount, floor.Resolution)
	if !ok {
		fmt.Println("No feasible layout.")
		return nil
	}
	fmt.Println(layout)
	return nil
}

func runMerge(cfg *config.Config, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("merge needs a left and a right image and an optional output path")
	}
	var out string
	if len(args) == 3 {
		out = args[2]
	}

	b, err := newBuilder(cfg)
	if err != nil {
		return err
	}
	path, err := b.Merge(args[0], args[1], out)
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}
