package tile

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/dixieflatline76/SplashTile/util/log"
)

// DefaultName is the output name used when a request has none.
const DefaultName = "tile"

// Request describes one tile build.
type Request struct {
	Images    []string   // Ordered source paths, all with the same aspect ratio
	Container Resolution // Size the tile must cover
	MinCount  int        // The layout needs more cells than this; < 0 means len(Images)
	MinTile   Resolution // Smallest acceptable cropped tile; zero means no floor
	Name      string     // Output file name without extension
	OutputDir string     // Empty means the directory of the first image
}

// Result is a written tile.
type Result struct {
	Path   string
	Layout Layout
}

// Options configures a Builder.
type Options struct {
	Quality      int
	Workers      int
	Crop         CropMode
	MaxLooseness int
	Progress     func(done, total int)
}

// Builder runs the solve, composite and export pipeline.
type Builder struct {
	Solver     *Solver
	Compositor *Compositor
	Exporter   *Exporter
}

// NewBuilder creates a Builder from opts.
func NewBuilder(opts Options) *Builder {
	compositor := NewCompositor()
	compositor.Crop = opts.Crop
	compositor.Progress = opts.Progress
	if opts.Workers > 0 {
		compositor.Workers = opts.Workers
	}

	solver := NewSolver()
	if opts.MaxLooseness > 0 {
		solver.MaxLooseness = opts.MaxLooseness
	}

	return &Builder{
		Solver:     solver,
		Compositor: compositor,
		Exporter:   NewExporter(opts.Quality),
	}
}

// Build writes one tile for req. It returns ok == false with a nil error when no
// layout satisfies the request's constraints; the caller may retry with a lower
// floor or count.
func (b *Builder) Build(ctx context.Context, req Request) (Result, bool, error) {
	if len(req.Images) == 0 {
		return Result{}, false, fmt.Errorf("%w: no images", ErrInvalidInput)
	}
	if !req.Container.Valid() {
		return Result{}, false, fmt.Errorf("%w: container %s has no area", ErrInvalidInput, req.Container)
	}

	native, err := NativeResolution(req.Images[0])
	if err != nil {
		return Result{}, false, err
	}

	minCount := req.MinCount
	if minCount < 0 {
		minCount = len(req.Images)
	}

	floor := "none"
	if !req.MinTile.IsZero() {
		floor = req.MinTile.String()
	}

	log.Printf("Calculating optimal tile for %d images (%s) in %s, min tile %s...", len(req.Images), native, req.Container, floor)
	layout, ok := b.Solver.Solve(native, req.Container, minCount, req.MinTile)
	if !ok {
		log.Printf("No feasible layout for %s in %s (min count %d, min tile %s)", native, req.Container, minCount, floor)
		return Result{}, false, nil
	}
	log.Printf("Layout: %s", layout)

	canvas, err := b.Compositor.Composite(ctx, req.Images, layout)
	if err != nil {
		return Result{}, false, err
	}

	path := b.outputPath(req)
	if err := b.Exporter.Export(canvas, path); err != nil {
		return Result{}, false, err
	}
	log.Printf("Tile written to %s", path)
	return Result{Path: path, Layout: layout}, true, nil
}

// BuildForMonitors builds one tile per unique monitor resolution, named
// "<name>_<W>x<H>". Resolutions without a feasible layout are skipped.
func (b *Builder) BuildForMonitors(ctx context.Context, req Request, monitors []Monitor) ([]Result, error) {
	var results []Result
	for _, res := range UniqueResolutions(monitors) {
		r := req
		r.Container = res.Resolution
		r.Name = fmt.Sprintf("%s_%s", req.Name, res.Resolution)

		result, ok, err := b.Build(ctx, r)
		if err != nil {
			return results, fmt.Errorf("building tile for %s: %w", res.Resolution, err)
		}
		if !ok {
			log.Printf("Skipping monitors %v: no feasible layout for %s", res.Monitors, res.Resolution)
			continue
		}
		results = append(results, result)
	}
	return results, nil
}

func (b *Builder) outputPath(req Request) string {
	name := req.Name
	if name == "" {
		name = DefaultName
	}
	if req.OutputDir != "" {
		return filepath.Join(req.OutputDir, name+".jpg")
	}
	return OutputPath(req.Images[0], name)
}

// NativeResolution reads the stored pixel size of an image without decoding it fully.
// EXIF orientation is ignored, matching how the compositor and Merge decode sources.
func NativeResolution(path string) (Resolution, error) {
	f, err := os.Open(path)
	if err != nil {
		return Resolution{}, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return Resolution{}, &DecodeError{Path: path, Err: err}
	}
	res := Resolution{Width: cfg.Width, Height: cfg.Height}
	if !res.Valid() {
		return Resolution{}, &DecodeError{Path: path, Err: fmt.Errorf("empty image %s", res)}
	}
	return res, nil
}
