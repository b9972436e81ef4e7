// Command uidemo renders a UI through the raster backend and saves it as
// PNG. The UI is either a built-in demo or a TOML/YAML document.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/gogpu/ui"
	"github.com/gogpu/ui/config"
	"github.com/gogpu/ui/geom"
	"github.com/gogpu/ui/inspect"
	"github.com/gogpu/ui/recording/backends/gpu"
	"github.com/gogpu/ui/recording/backends/raster"
)

func main() {
	var (
		width   = flag.Int("width", 480, "image width")
		height  = flag.Int("height", 320, "image height")
		output  = flag.String("output", "uidemo.png", "output file")
		frames  = flag.Int("frames", 3, "frames to run before saving")
		cfgPath = flag.String("config", "", "UI document (.toml, .yaml); empty runs the built-in demo")
		tree    = flag.Bool("tree", false, "print the element tree after rendering")
		watch   = flag.Bool("watch", false, "re-render whenever the -config document changes")
		gpuDump = flag.String("gpu-dump", "", "directory to write the gpu backend's vertex buffer and SPIR-V for a final frame")
		verbose = flag.Bool("v", false, "log at debug level")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	ui.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *watch && *cfgPath == "" {
		log.Fatal("-watch requires -config")
	}

	opts := []ui.EngineOption{ui.WithViewport(*width, *height)}
	var doc *config.Document
	if *cfgPath != "" {
		var err error
		if doc, err = config.Load(*cfgPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		opts = append(opts, doc.EngineOptions()...)
	}

	eng, err := ui.NewEngine(opts...)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}
	defer eng.Close()

	var script []ui.Input
	if doc != nil {
		if _, err := config.Build(eng, doc); err != nil {
			log.Printf("Config built with errors: %v", err)
		}
	} else {
		script, err = buildDemo(eng)
		if err != nil {
			log.Fatalf("Failed to build demo: %v", err)
		}
	}

	if err := render(eng, *frames, script, *output); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if *gpuDump != "" {
		if err := dumpGPU(eng, *gpuDump); err != nil {
			log.Fatalf("Failed to dump GPU frame: %v", err)
		}
	}
	if *tree {
		fmt.Println(inspect.Engine(eng))
	}
	if !*watch {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := watchLoop(ctx, eng, *cfgPath, *frames, *output, *tree); err != nil {
		log.Fatalf("Watch failed: %v", err)
	}
}

// render runs frames frames, feeding script entries as input, and saves
// the last frame to output.
func render(eng *ui.Engine, frames int, script []ui.Input, output string) error {
	b, err := eng.NewBackend(raster.Name)
	if err != nil {
		return err
	}
	for i := 0; i < frames; i++ {
		var in ui.Input
		if i < len(script) {
			in = script[i]
		}
		if err := eng.Frame(in, b); err != nil {
			log.Printf("Frame %d: %v", i, err)
		}
	}

	rb, ok := b.(*raster.Backend)
	if !ok {
		return fmt.Errorf("backend %q is not a raster backend", raster.Name)
	}
	if err := rb.SavePNG(output); err != nil {
		return err
	}
	w, h := eng.Viewport()
	log.Printf("Saved %s (%dx%d, %d frames)", output, w, h, eng.Frames())
	return nil
}

// dumpGPU runs one more frame through the gpu backend and writes its
// upload data and compiled shader to dir.
func dumpGPU(eng *ui.Engine, dir string) error {
	b, err := eng.NewBackend(gpu.Name)
	if err != nil {
		return err
	}
	if err := eng.Frame(ui.Input{}, b); err != nil {
		log.Printf("GPU frame: %v", err)
	}
	gb, ok := b.(*gpu.Backend)
	if !ok {
		return fmt.Errorf("backend %q is not a gpu backend", gpu.Name)
	}
	p, err := gb.Pipeline()
	if err != nil {
		log.Printf("Shader not compiled, skipping SPIR-V: %v", err)
	}
	if err := gpu.Dump(dir, gb.Frame(), p); err != nil {
		return err
	}
	f := gb.Frame()
	log.Printf("GPU frame written to %s (%d vertices, %d textures)", dir, f.VertexCount, len(f.Textures))
	return nil
}

func watchLoop(ctx context.Context, eng *ui.Engine, path string, frames int, output string, tree bool) error {
	docs := make(chan *config.Document)
	errc := make(chan error, 1)
	go func() {
		errc <- config.Watch(ctx, path, func(doc *config.Document, err error) {
			if err != nil {
				log.Printf("Reload: %v", err)
				return
			}
			select {
			case docs <- doc:
			case <-ctx.Done():
			}
		})
	}()

	log.Printf("Watching %s, press Ctrl-C to stop", path)
	for {
		select {
		case doc := <-docs:
			if doc.Width > 0 && doc.Height > 0 {
				eng.SetViewport(doc.Width, doc.Height)
			}
			if _, err := config.Apply(eng, doc); err != nil {
				log.Printf("Reload applied with errors: %v", err)
			}
			if err := render(eng, frames, nil, output); err != nil {
				log.Printf("Render: %v", err)
			}
			if tree {
				fmt.Println(inspect.Engine(eng))
			}
		case err := <-errc:
			return err
		}
	}
}

// buildDemo adds a toolbar and a confirmation dialog to eng. It returns an
// input script that clicks the counter button once.
func buildDemo(eng *ui.Engine) ([]ui.Input, error) {
	w, h := eng.Viewport()
	fw, fh := float32(w), float32(h)

	bar, err := eng.NewContainer("toolbar")
	if err != nil {
		return nil, err
	}
	bar.SetVec2(ui.Size, geom.V2(fw, 48))
	bar.SetColor(ui.BackgroundColor, geom.RGB(0.12, 0.14, 0.18))

	title, err := ui.NewElement("title", ui.WithText("uidemo"),
		ui.WithValue(ui.Position.Property(), ui.Vec2Value(geom.V2(12, 8))),
		ui.WithValue(ui.Size.Property(), ui.Vec2Value(geom.V2(120, 32))),
		ui.WithValue(ui.FontSize.Property(), ui.FloatValue(18)),
		ui.WithValue(ui.FontColor.Property(), ui.ColorValue(geom.RGB(0.9, 0.92, 0.95))))
	if err != nil {
		return nil, err
	}
	rule, err := ui.NewElement("rule", ui.WithKind(ui.KindLine),
		ui.WithValue(ui.Position.Property(), ui.Vec2Value(geom.V2(0, 47))),
		ui.WithValue(ui.Size.Property(), ui.Vec2Value(geom.V2(fw, 0))),
		ui.WithValue(ui.LineWidth.Property(), ui.FloatValue(2)),
		ui.WithValue(ui.BackgroundColor.Property(), ui.ColorValue(geom.RGB(0.23, 0.48, 0.84))))
	if err != nil {
		return nil, err
	}

	clicks := 0
	counterPos, counterSize := geom.V2(fw-132, 8), geom.V2(120, 32)
	counter, err := ui.NewElement("counter", ui.WithText("clicks: 0"),
		ui.WithValue(ui.Position.Property(), ui.Vec2Value(counterPos)),
		ui.WithValue(ui.Size.Property(), ui.Vec2Value(counterSize)),
		ui.WithValue(ui.CornerRadius.Property(), ui.FloatValue(6)),
		ui.WithValue(ui.BorderWidth.Property(), ui.FloatValue(1)),
		ui.WithValue(ui.BackgroundColor.Property(), ui.ColorValue(geom.RGB(0.23, 0.48, 0.84))),
		ui.WithValue(ui.BorderColor.Property(), ui.ColorValue(geom.RGB(0.9, 0.92, 0.95))),
		ui.WithValue(ui.FontColor.Property(), ui.ColorValue(geom.RGB(1, 1, 1))),
		ui.WithOnPress(func(e *ui.Element) {
			clicks++
			e.SetText("clicks: " + strconv.Itoa(clicks))
		}))
	if err != nil {
		return nil, err
	}
	for _, e := range []*ui.Element{title, rule, counter} {
		if _, err := bar.Add(e); err != nil {
			return nil, err
		}
	}

	dialog, err := eng.NewModal("dialog")
	if err != nil {
		return nil, err
	}
	dw, dh := float32(260), float32(140)
	dialog.SetVec2(ui.Position, geom.V2((fw-dw)/2, (fh-dh)/2))
	dialog.SetVec2(ui.Size, geom.V2(dw, dh))
	dialog.SetColor(ui.BackgroundColor, geom.RGB(0.18, 0.2, 0.25))
	dialog.SetColor(ui.BorderColor, geom.RGB(0.35, 0.38, 0.45))
	dialog.SetFloat(ui.BorderWidth, 2)
	dialog.SetFloat(ui.CornerRadius, 10)

	msg, err := ui.NewElement("message", ui.WithText("Save changes?"),
		ui.WithValue(ui.Position.Property(), ui.Vec2Value(geom.V2(0, 20))),
		ui.WithValue(ui.Size.Property(), ui.Vec2Value(geom.V2(dw, 40))),
		ui.WithValue(ui.FontSize.Property(), ui.FloatValue(16)),
		ui.WithValue(ui.FontColor.Property(), ui.ColorValue(geom.RGB(1, 1, 1))))
	if err != nil {
		return nil, err
	}
	if _, err := dialog.Add(msg); err != nil {
		return nil, err
	}
	for i, label := range []string{"OK", "Cancel"} {
		btn, err := ui.NewElement(label, ui.WithText(label),
			ui.WithValue(ui.Position.Property(), ui.Vec2Value(geom.V2(30+float32(i)*110, 84))),
			ui.WithValue(ui.Size.Property(), ui.Vec2Value(geom.V2(90, 32))),
			ui.WithValue(ui.CornerRadius.Property(), ui.FloatValue(6)),
			ui.WithValue(ui.BackgroundColor.Property(), ui.ColorValue(geom.RGB(0.3, 0.33, 0.4))),
			ui.WithValue(ui.FontColor.Property(), ui.ColorValue(geom.RGB(1, 1, 1))))
		if err != nil {
			return nil, err
		}
		if _, err := dialog.Add(btn); err != nil {
			return nil, err
		}
	}

	click := ui.Input{Pointer: counterPos.Add(counterSize.Mul(0.5)), Buttons: ui.ButtonLeft}
	release := ui.Input{Pointer: click.Pointer}
	return []ui.Input{release, click, release}, nil
}
