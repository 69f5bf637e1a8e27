package tile

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// Resolution is a width and height in pixels.
type Resolution struct {
	Width, Height int
}

// String returns the resolution as "WxH".
func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// IsZero reports whether both dimensions are zero, which callers use for "no floor".
func (r Resolution) IsZero() bool {
	return r.Width == 0 && r.Height == 0
}

// Valid reports whether both dimensions are positive.
func (r Resolution) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

// AtLeast reports whether r is no smaller than floor on both axes.
func (r Resolution) AtLeast(floor Resolution) bool {
	return r.Width >= floor.Width && r.Height >= floor.Height
}

// ParseResolution parses "WxH" (e.g. "3840x1600"). The separator is case insensitive.
func ParseResolution(s string) (Resolution, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return Resolution{}, fmt.Errorf("invalid resolution %q: want WxH", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return Resolution{}, fmt.Errorf("invalid resolution width %q: %w", s, err)
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return Resolution{}, fmt.Errorf("invalid resolution height %q: %w", s, err)
	}
	r := Resolution{Width: width, Height: height}
	if !r.Valid() {
		return Resolution{}, fmt.Errorf("invalid resolution %q: dimensions must be positive", s)
	}
	return r, nil
}

// Monitor represents a connected display
type Monitor struct {
	ID   int             // Internal ID (0, 1, 2)
	Name string          // OS-specific name (e.g. "DP-1")
	Rect image.Rectangle // Dimensions (X, Y, W, H)
}

// Resolution returns the monitor's size.
func (m Monitor) Resolution() Resolution {
	return Resolution{Width: m.Rect.Dx(), Height: m.Rect.Dy()}
}

// MonitorResolution is a unique display resolution and the monitors that use it.
type MonitorResolution struct {
	Resolution
	Monitors []int // Monitor IDs using this resolution
}

// UniqueResolutions groups monitors by resolution, in order of first appearance.
// Monitors with an empty rectangle are skipped.
func UniqueResolutions(monitors []Monitor) []MonitorResolution {
	index := make(map[Resolution]int)
	var unique []MonitorResolution

	for _, m := range monitors {
		res := m.Resolution()
		if !res.Valid() {
			continue
		}
		i, exists := index[res]
		if !exists {
			i = len(unique)
			index[res] = i
			unique = append(unique, MonitorResolution{Resolution: res})
		}
		unique[i].Monitors = append(unique[i].Monitors, m.ID)
	}
	return unique
}

// MonitorsFromResolutions builds monitors with sequential IDs for the given sizes.
func MonitorsFromResolutions(resolutions []Resolution) []Monitor {
	monitors := make([]Monitor, 0, len(resolutions))
	for i, r := range resolutions {
		monitors = append(monitors, Monitor{
			ID:   i,
			Name: fmt.Sprintf("monitor-%d", i),
			Rect: image.Rect(0, 0, r.Width, r.Height),
		})
	}
	return monitors
}
