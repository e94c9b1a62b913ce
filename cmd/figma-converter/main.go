package main

import (
	"fmt"
	"os"

	figmaconverter "github.com/hellenic-development/figma-converter"
	"github.com/hellenic-development/figma-converter/pkg/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "figma-converter",
		Short: "Convert Figma designs to static HTML and CSS",
		Long:  "A tool to convert a Figma design file into an HTML page and a CSS stylesheet via the Figma API",
		Run:   run,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("figma-converter version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)

	cyan.Println("\n🎨 Figma Design Converter")
	cyan.Println("==========================")
	cyan.Println()

	// Load FIGMA_ACCESS_TOKEN and FIGMA_FILE_KEY from the environment or a
	// local .env file, and make sure both are present before touching the
	// network.
	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}
	if err := cfg.Validate(); err != nil {
		fail(err)
	}

	result, err := figmaconverter.Run(figmaconverter.Options{
		AccessToken: cfg.AccessToken,
		FileKey:     cfg.FileKey,
		Logger:      &cliLogger{},
	})
	if err != nil {
		fail(err)
	}

	// Display conversion stats.
	cyan.Println("\n📊 Conversion Summary:")
	fmt.Printf("  • File: %s\n", result.FileName)
	fmt.Printf("  • Style Rules: %d\n", result.RuleCount)

	green.Println("\nFiles saved to output/ directory:")
	fmt.Printf("- %s\n", result.HTMLPath)
	fmt.Printf("- %s\n", result.CSSPath)

	green.Printf("\n✨ Successfully converted %s to HTML/CSS\n\n", result.FileName)
}

// fail prints the error followed by the environment checklist and exits.
func fail(err error) {
	color.New(color.FgRed).Printf("Error: %v\n", err)
	fmt.Println()
	fmt.Println("Make sure you have:")
	fmt.Println("1. Created a .env file with your FIGMA_ACCESS_TOKEN")
	fmt.Println("2. Copied the Figma file to your workspace")
	fmt.Println("3. Updated the FIGMA_FILE_KEY in your .env file")
	os.Exit(1)
}

// cliLogger implements figmaconverter.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
