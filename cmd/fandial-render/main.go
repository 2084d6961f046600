// Command fandial-render draws the fan dial at each speed in cycle
// order and writes the frames as PNG images. Optionally stitches them
// into an animated GIF of the full cycle using ffmpeg.
//
// Usage:
//
//	fandial-render -out frames/ -size 800 -gif cycle.gif
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/satindergrewal/fandial"
)

func main() {
	outDir := flag.String("out", "frames", "Output directory for PNG frames")
	size := flag.Int("size", 800, "Image size in pixels (square)")
	gifPath := flag.String("gif", "", "Output GIF path (requires ffmpeg)")
	fps := flag.Int("fps", 1, "GIF frames per second")
	low := flag.String("low", fandial.DefaultConfig().LowColor.Hex(), "Low speed color (hex)")
	medium := flag.String("medium", fandial.DefaultConfig().MediumColor.Hex(), "Medium speed color (hex)")
	high := flag.String("high", fandial.DefaultConfig().HighColor.Hex(), "High speed color (hex)")
	flag.Parse()

	cfg := fandial.DefaultConfig()
	var err error
	if cfg.LowColor, err = fandial.ParseHex(*low); err != nil {
		fmt.Fprintf(os.Stderr, "error: -low: %v\n", err)
		os.Exit(1)
	}
	if cfg.MediumColor, err = fandial.ParseHex(*medium); err != nil {
		fmt.Fprintf(os.Stderr, "error: -medium: %v\n", err)
		os.Exit(1)
	}
	if cfg.HighColor, err = fandial.ParseHex(*high); err != nil {
		fmt.Fprintf(os.Stderr, "error: -high: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "error creating output dir: %v\n", err)
		os.Exit(1)
	}

	dial := fandial.New(cfg)
	dial.Resize(float64(*size), float64(*size))

	speeds := fandial.Speeds()
	fmt.Printf("Rendering %d frames (%dx%d): off → low → medium → high\n", len(speeds), *size, *size)

	for i := range speeds {
		if i > 0 {
			dial.Activate(false)
		}

		surface := fandial.NewImageSurface(*size, *size)
		dial.Render(surface)

		filename := filepath.Join(*outDir, fmt.Sprintf("frame_%03d.png", i))
		f, err := os.Create(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error creating %s: %v\n", filename, err)
			os.Exit(1)
		}
		if err := png.Encode(f, surface.Image()); err != nil {
			f.Close()
			fmt.Fprintf(os.Stderr, "error encoding PNG: %v\n", err)
			os.Exit(1)
		}
		f.Close()
		fmt.Printf("  %s (%s) → %s\n", dial.Speed(), dial.Description(), filename)
	}

	// Generate GIF with ffmpeg if requested
	if *gifPath != "" {
		if _, err := exec.LookPath("ffmpeg"); err != nil {
			fmt.Fprintln(os.Stderr, "warning: ffmpeg not found, skipping GIF generation")
		} else {
			inputPattern := filepath.Join(*outDir, "frame_%03d.png")
			rate := fmt.Sprintf("%d", *fps)

			// Two-pass for better GIF quality: generate palette first, then apply
			palettePath := filepath.Join(*outDir, "palette.png")
			cmd1 := exec.Command("ffmpeg", "-y",
				"-framerate", rate,
				"-i", inputPattern,
				"-vf", "palettegen=max_colors=64",
				palettePath,
			)
			cmd1.Stderr = os.Stderr
			if err := cmd1.Run(); err != nil {
				fmt.Fprintf(os.Stderr, "ffmpeg palette error: %v\n", err)
				os.Exit(1)
			}

			cmd2 := exec.Command("ffmpeg", "-y",
				"-framerate", rate,
				"-i", inputPattern,
				"-i", palettePath,
				"-lavfi", "paletteuse=dither=none",
				"-loop", "0",
				*gifPath,
			)
			cmd2.Stderr = os.Stderr
			if err := cmd2.Run(); err != nil {
				fmt.Fprintf(os.Stderr, "ffmpeg GIF error: %v\n", err)
				os.Exit(1)
			}

			os.Remove(palettePath)
			fmt.Printf("  GIF → %s (%d FPS, loop forever)\n", *gifPath, *fps)
		}
	}

	fmt.Println("Done.")
}
