// mkicons renders the app branding assets (logo PNGs, badge and favicon)
// from images/logo.svg.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/Mavwarf/mkicons/internal/gen"
	"github.com/Mavwarf/mkicons/internal/paths"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	watch := false
	for _, arg := range os.Args[1:] {
		switch arg {
		case "help", "-h", "--help":
			printUsage()
			return
		case "version", "-V", "--version":
			printVersion()
			return
		case "--watch", "-w":
			watch = true
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown argument %q\n", arg)
			fmt.Fprintf(os.Stderr, "Run 'mkicons help' for usage.\n")
			os.Exit(1)
		}
	}

	if watch {
		runWatch()
		return
	}
	runOnce()
}

// runOnce generates the asset set a single time. Failures are reported on
// stdout with a remediation hint and the process still exits 0, so a build
// step invoking mkicons never fails the surrounding build.
func runOnce() {
	if err := gen.Generate(paths.SourceSVG, paths.OutputDir); err != nil {
		fmt.Printf("Error generating icons: %v\n", err)
		fmt.Println()
		fmt.Println(gen.InstallHint)
		return
	}
	fmt.Println("Icons generated successfully!")
}

func runWatch() {
	w, err := gen.NewWatcher(paths.SourceSVG, paths.OutputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer w.Close()
	fmt.Printf("Watching %s (Ctrl+C to stop)\n", paths.SourceSVG)
	if err := w.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("mkicons %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage() {
	fmt.Printf("mkicons %s - Generate branding assets from images/logo.svg\n", version)
	fmt.Println(`
Usage:
  mkicons [options]

Options:
  --watch, -w            Stay running and regenerate whenever the SVG changes

Commands:
  version, -V            Show version and build date
  help, -h, --help       Show this help message

Outputs (written to images/, overwriting existing files):
  logo-192x192.png       App icon
  logo-512x512.png       Large-format icon
  badge-72x72.png        Notification badge
  favicon.ico            16/32/48 px multi-resolution favicon`)
}
