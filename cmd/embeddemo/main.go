// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command embeddemo renders a scene of embedded platform views through
// viewembed and writes each composited frame as a PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/viewembed"
	"github.com/gogpu/viewembed/surface"
	"github.com/gogpu/viewembed/threadmerge"
)

func main() {
	var (
		scenePath = flag.String("scene", "", "scene TOML file (default: built-in scene)")
		outDir    = flag.String("out", ".", "output directory")
		verbose   = flag.Bool("v", false, "log frame decisions")
	)
	flag.Parse()

	if *verbose {
		viewembed.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	scene, err := loadScene(*scenePath)
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	files, err := run(scene, *outDir)
	if err != nil {
		log.Fatal(err)
	}
	for _, f := range files {
		log.Printf("Frame saved to %s (%dx%d)\n", f, scene.Width, scene.Height)
	}
}

// run renders every frame of scene and returns the written files.
func run(scene *Scene, outDir string) ([]string, error) {
	host := newScreenHost(scene.Views)
	opts := []viewembed.Option{
		viewembed.WithHost(host),
		viewembed.WithSurfaceFactory(host.surfaceFactory),
	}
	if scene.MaxOverlayRegions >= 0 {
		opts = append(opts, viewembed.WithMaxOverlayRegions(scene.MaxOverlayRegions))
	}
	e := viewembed.NewEmbedder(opts...)
	defer e.Close()

	// The demo runs everything on one goroutine, which plays the render
	// thread until the merge makes it the platform thread.
	merger := threadmerge.New(nil)
	screen := surface.NewImageSurface()
	defer screen.Close()

	var files []string
	for n := 0; n < scene.Frames; {
		resubmit, err := renderFrame(e, merger, screen, scene, n)
		if err != nil {
			return files, fmt.Errorf("embeddemo: frame %d: %w", n, err)
		}
		if resubmit {
			continue
		}

		name := filepath.Join(outDir, fmt.Sprintf("frame-%02d.png", n))
		if err := writePNG(name, host.composite(screen.Snapshot())); err != nil {
			return files, err
		}
		files = append(files, name)
		n++
	}
	return files, nil
}

// renderFrame produces frame n. It reports true when the frame was
// cancelled and must be rendered again on merged threads.
func renderFrame(e *viewembed.Embedder, merger *threadmerge.Merger, screen *surface.ImageSurface, scene *Scene, n int) (bool, error) {
	size := image.Pt(scene.Width, scene.Height)
	e.BeginFrame(size, scene.PixelRatio, merger)

	frame, err := screen.AcquireFrame(size)
	if err != nil {
		return false, err
	}
	for _, sh := range scene.Background {
		sh.draw(frame.Canvas())
	}

	for _, v := range scene.Views {
		e.PrerollCompositeEmbeddedView(v.ID, v.params(n, scene.PixelRatio))
	}
	if e.PostPrerollAction(merger) == viewembed.ResubmitFrame {
		e.EndFrame(true, merger)
		return true, nil
	}

	for _, v := range scene.Views {
		c := e.CompositeEmbeddedView(v.ID)
		for _, sh := range v.Draw {
			sh.draw(c)
		}
	}
	if err := e.SubmitFrame(nil, frame); err != nil {
		return false, err
	}
	e.EndFrame(false, merger)
	merger.DecrementLease()
	return false, nil
}

func writePNG(name string, img image.Image) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("embeddemo: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
