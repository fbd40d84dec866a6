// Command routereport generates the route risk PDF report from a JSON input
// document.
//
//	routereport --input data.json --out ./reports
//
// The input document may be partial or malformed in any way; missing data is
// rendered as placeholders rather than failing the run. When --input is
// omitted the document is read from stdin. The output directory can also be
// set through ROUTEREPORT_OUT (a .env file is honored when present).
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lvillar/routereport"
	"github.com/lvillar/routereport/input"
	"github.com/lvillar/routereport/pdfrender"
)

var (
	inputPath string
	outDir    string
	verbose   bool
)

func main() {
	root := &cobra.Command{
		Use:   "routereport",
		Short: "Generate the route risk PDF report",
		RunE:  run,
	}

	root.Flags().StringVarP(&inputPath, "input", "i", "", "path to the JSON input document (stdin when omitted)")
	root.Flags().StringVarP(&outDir, "out", "o", "", "directory the PDF is written into (default \".\" or ROUTEREPORT_OUT)")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !verbose {
		logger = logger.Level(zerolog.InfoLevel)
	}
	ctx := logger.WithContext(cmd.Context())

	data, err := readInput(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	dir := outDir
	if dir == "" {
		dir = os.Getenv("ROUTEREPORT_OUT")
	}
	if dir == "" {
		dir = "."
	}

	doc := pdfrender.New(pdfrender.WithOutputDir(dir))
	if err := routereport.Generate(ctx, doc, input.Parse(data)); err != nil {
		return err
	}

	logger.Info().Str("dir", dir).Msg("report generated")
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
