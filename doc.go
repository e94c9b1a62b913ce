// Package figmaconverter converts Figma design files into static HTML and
// CSS via the Figma API. It fetches a file's document tree, walks it once,
// and produces a complete web page plus a standalone stylesheet mirroring
// the design's layout, fills, typography, borders, and shadows.
//
// The CLI lives in cmd/figma-converter; this root package exposes the same
// pipeline as a Go API so that callers can embed conversion in their own
// tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named figmaconverter:
//
//	import "github.com/hellenic-development/figma-converter" // package figmaconverter
//
// # Quick start
//
//	result, err := figmaconverter.Run(figmaconverter.Options{
//	    AccessToken: os.Getenv("FIGMA_ACCESS_TOKEN"),
//	    FileKey:     "ABC123",
//	    OutputDir:   "output",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("wrote", result.HTMLPath, "and", result.CSSPath)
//
// A full figma.com file URL is accepted in [Options.FileKey] in place of a
// bare key; the key is extracted from the URL before fetching.
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
//	type myLogger struct{}
//	func (l *myLogger) Infof(f string, a ...any)  { log.Printf("[INFO]  "+f, a...) }
//	func (l *myLogger) Warnf(f string, a ...any)  { log.Printf("[WARN]  "+f, a...) }
//	func (l *myLogger) Errorf(f string, a ...any) { log.Printf("[ERROR] "+f, a...) }
//
// # Generated output
//
// Conversion writes two artifacts into the output directory: index.html, a
// complete page embedding the generated styles, and styles.css, the same
// generated rules as a standalone stylesheet. Every Figma node becomes one
// element with a deterministic class name derived from its type and id, so
// the markup and the stylesheet stay in step.
package figmaconverter
