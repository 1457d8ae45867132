package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/preston-bernstein/soccer-prophet/internal/catalog"
	"github.com/preston-bernstein/soccer-prophet/internal/config"
	"github.com/preston-bernstein/soccer-prophet/internal/domain"
	"github.com/preston-bernstein/soccer-prophet/internal/fixture"
	"github.com/preston-bernstein/soccer-prophet/internal/logging"
)

func main() {
	_ = godotenv.Load()
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run writes the bundled sample dataset into the data directory.
func run(args []string, out io.Writer) error {
	cfg := config.MustLoad()

	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.SetOutput(out)
	dir := fs.String("dir", cfg.DataDir, "directory that receives the resource documents")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := logging.NewLogger(logging.Config{
		Level:  cfg.Logging.Level,
		Format: "text",
		Output: out,
	})

	writer := catalog.NewWriter(*dir)
	if err := writer.WriteDataset(fixture.Dataset()); err != nil {
		return fmt.Errorf("seed %s: %w", *dir, err)
	}

	manifest, err := catalog.ReadManifest(writer.BasePath())
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}
	for _, res := range domain.Resources {
		entry := manifest.Resources[string(res)]
		logging.Info(logger, "document written",
			logging.FieldResource, string(res),
			logging.FieldCount, entry.Records,
			"file", entry.File,
		)
	}
	return nil
}
