package figmaconverter

import (
	"fmt"
	"strings"

	"github.com/hellenic-development/figma-converter/pkg/convert"
	"github.com/hellenic-development/figma-converter/pkg/figma"
	"github.com/hellenic-development/figma-converter/pkg/output"
	"github.com/hellenic-development/figma-converter/pkg/page"
)

// Options configures a conversion run.
type Options struct {
	AccessToken string
	FileKey     string // Figma file key, or a full figma.com file URL
	OutputDir   string // directory for the generated files, default "output"
	Logger      Logger // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the conversion output.
type Result struct {
	FileName  string // Figma file name
	HTML      string // complete HTML document
	CSS       string // generated stylesheet
	HTMLPath  string
	CSSPath   string
	RuleCount int // number of generated style rules
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

// Run executes the fetch, convert, and save pipeline and returns the result.
// Options are validated before the first network request, so a missing token
// or file key never leaves the process.
func Run(opts Options) (*Result, error) {
	if opts.OutputDir == "" {
		opts.OutputDir = output.DefaultDir
	}

	if opts.AccessToken == "" {
		return nil, fmt.Errorf("access token is required")
	}
	if opts.FileKey == "" {
		return nil, fmt.Errorf("file key is required")
	}

	// A full Figma URL is accepted in place of a bare file key.
	fileKey := opts.FileKey
	if strings.Contains(fileKey, "figma.com/") {
		key, err := figma.ExtractFileKey(fileKey)
		if err != nil {
			return nil, fmt.Errorf("extract file key: %w", err)
		}
		fileKey = key
	}

	client := figma.NewClient(opts.AccessToken)

	opts.logInfo("Fetching Figma file...")
	fileResp, err := client.GetFile(fileKey)
	if err != nil {
		return nil, fmt.Errorf("fetch file: %w", err)
	}

	opts.logInfo("Converting to HTML/CSS...")
	root, rules := convert.Convert(&fileResp.Document)
	css := page.Stylesheet(rules)
	html := page.Document(root, css)

	opts.logInfo("Saving output files...")
	files, err := output.Write(opts.OutputDir, html, css)
	if err != nil {
		return nil, fmt.Errorf("save output: %w", err)
	}

	opts.logInfo("Conversion complete!")

	return &Result{
		FileName:  fileResp.Name,
		HTML:      html,
		CSS:       css,
		HTMLPath:  files.HTMLPath,
		CSSPath:   files.CSSPath,
		RuleCount: len(rules),
	}, nil
}
