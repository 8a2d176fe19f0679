// Command dxfdemo renders a small sample drawing, records the frame and
// writes it as a recording file and optionally as a PNG.
//
// Settings come from an optional YAML file and DXFRENDER_* environment
// variables, see package config.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	dxfrender "github.com/wieslawsoltes/DxfParser-sub001"
	"github.com/wieslawsoltes/DxfParser-sub001/config"
	"github.com/wieslawsoltes/DxfParser-sub001/geom"
	"github.com/wieslawsoltes/DxfParser-sub001/recording"
	_ "github.com/wieslawsoltes/DxfParser-sub001/recording/backends/raster"
	"github.com/wieslawsoltes/DxfParser-sub001/scene"
)

func main() {
	var (
		cfgPath = flag.String("config", "", "YAML settings file")
		output  = flag.String("output", "", "recording file (overrides the config)")
		png     = flag.String("png", "", "also rasterize to this PNG file")
		backend = flag.String("backend", "raster", "playback backend for -png")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *output != "" {
		cfg.Output = *output
	}
	if cfg.Output == "" {
		cfg.Output = "demo.dxfr"
	}

	log := cfg.Logger(os.Stderr)
	dxfrender.SetLogger(log)
	if err := run(cfg, *png, *backend, log); err != nil {
		log.Error("dxfdemo failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.RenderConfig, pngPath, backendName string, log *slog.Logger) error {
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	f, err := dxfrender.Render(sampleScene(), opts...)
	if err != nil {
		return err
	}
	st := f.Stats
	log.Info("rendered",
		"frame", f.ID,
		"polylines", len(f.Polylines),
		"fills", len(f.Fills),
		"texts", len(f.Texts),
		"points", len(f.Points),
		"inserts", st.Inserts,
		"skipped", st.Skipped,
		"culled", st.Culled)

	rec := recording.Record(f)
	if err := writeFile(cfg.Output, func(w io.Writer) error {
		return recording.Encode(w, rec)
	}); err != nil {
		return err
	}
	log.Info("recording written", "path", cfg.Output, "commands", rec.Len(), "colors", rec.Pool().Len())

	if pngPath == "" {
		return nil
	}
	b, err := recording.NewBackend(backendName)
	if err != nil {
		return err
	}
	if err := rec.Playback(b); err != nil {
		return err
	}
	wt, ok := b.(io.WriterTo)
	if !ok {
		return fmt.Errorf("backend %q cannot write images", backendName)
	}
	if err := writeFile(pngPath, func(w io.Writer) error {
		_, err := wt.WriteTo(w)
		return err
	}); err != nil {
		return err
	}
	log.Info("image written", "path", pngPath, "width", rec.Width, "height", rec.Height)
	return nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return write(out)
}

// sampleScene builds a floor plan fragment: dashed walls, a nested window
// block placed as an array, a hatched slab with an opening, a dimension and
// a title.
func sampleScene() *scene.Scene {
	on := func(layer string) scene.Common { return scene.Common{Layer: layer} }
	wall := func(h string, x0, y0, x1, y1 float64) *scene.Line {
		c := on("WALLS")
		c.Handle = h
		return &scene.Line{Common: c, Start: geom.V3(x0, y0, 0), End: geom.V3(x1, y1, 0)}
	}
	loop := func(x0, y0, x1, y1 float64) scene.HatchLoop {
		return scene.HatchLoop{
			Polyline: true,
			Closed:   true,
			Vertices: []geom.Vec2{geom.V2(x0, y0), geom.V2(x1, y0), geom.V2(x1, y1), geom.V2(x0, y1)},
		}
	}

	return &scene.Scene{
		Header: scene.Header{PDMode: 3},
		Tables: scene.Tables{
			Layers: []scene.Layer{
				{Name: "0", Color: 7},
				{Name: "WALLS", Color: 1, Linetype: "DASHED"},
				{Name: "SLAB", Color: 3},
				{Name: "ANNO", Color: 2},
			},
			Linetypes: []scene.Linetype{
				{Name: "DASHED", Pattern: []float64{1.5, -0.5}},
			},
		},
		Blocks: map[string]*scene.Block{
			"PANE": {
				Name: "PANE",
				Entities: []scene.Entity{
					&scene.Line{Common: on("0"), Start: geom.V3(0, 0, 0), End: geom.V3(1, 0, 0)},
					&scene.Arc{Common: on("0"), Center: geom.V3(0, 0, 0), Radius: 1, StartAngle: 0, EndAngle: 90},
				},
			},
			"WINDOW": {
				Name: "WINDOW",
				Entities: []scene.Entity{
					&scene.Insert{Common: on("0"), Block: "PANE"},
					&scene.Insert{Common: on("0"), Block: "PANE", Position: geom.V3(2, 0, 0), Scale: geom.V3(-1, 1, 1)},
				},
			},
		},
		Entities: []scene.Entity{
			wall("10", 0, 0, 20, 0),
			wall("11", 20, 0, 20, 12),
			wall("12", 20, 12, 0, 12),
			wall("13", 0, 12, 0, 0),
			&scene.Hatch{
				Common: scene.Common{Handle: "20", Layer: "SLAB"},
				Solid:  true,
				Loops:  []scene.HatchLoop{loop(1, 1, 19, 11), loop(8, 4, 12, 8)},
			},
			&scene.Insert{
				Common:        scene.Common{Handle: "30", Layer: "0"},
				Block:         "WINDOW",
				Position:      geom.V3(2, 0, 0),
				Columns:       3,
				ColumnSpacing: 6,
				Rows:          1,
			},
			&scene.Circle{Common: scene.Common{Handle: "40", Layer: "0"}, Center: geom.V3(10, 6, 0), Radius: 1.5},
			&scene.Point{Common: scene.Common{Handle: "41", Layer: "0"}, Position: geom.V3(10, 6, 0)},
			&scene.Dimension{
				Common:   scene.Common{Handle: "50", Layer: "ANNO"},
				Type:     scene.DimLinear,
				Def1:     geom.V3(0, 0, 0),
				Def2:     geom.V3(20, 0, 0),
				DefPoint: geom.V3(0, -3, 0),
			},
			&scene.Text{
				Common:     scene.Common{Handle: "60", Layer: "ANNO"},
				Position:   geom.V3(10, 14, 0),
				HasAlign:   true,
				AlignPoint: geom.V3(10, 14, 0),
				HAlign:     scene.AlignCenter,
				Height:     1,
				Content:    "GROUND FLOOR",
			},
		},
	}
}
