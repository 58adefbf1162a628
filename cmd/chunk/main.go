package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nvalent/textchunk/ingest"
	"github.com/nvalent/textchunk/internal/config"
	"github.com/nvalent/textchunk/observer"
)

func main() {
	configPath := flag.String("config", os.Getenv("TEXTCHUNK_CONFIG"), "path to TOML config file")
	kind := flag.String("kind", "", "chunker kind: recursive, markdown, window, snapping")
	size := flag.Int("size", 0, "maximum chunk size in bytes (sentences for snapping)")
	overlap := flag.Int("overlap", 0, "overlap between adjacent chunks")
	contentType := flag.String("type", "", "content type for stdin input: text, md, html, csv, json")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configPath, *kind, *size, *overlap, *contentType, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, configPath, kind string, size, overlap int, contentType string, paths []string) error {
	cfg := config.Load(configPath)
	if kind != "" {
		cfg.Chunker.Kind = kind
	}
	if size > 0 {
		cfg.Chunker.Size = size
	}
	if overlap > 0 {
		cfg.Chunker.Overlap = overlap
	}

	chunker, err := cfg.Chunker.Chunker()
	if err != nil {
		return err
	}

	opts := []ingest.Option{}
	if cfg.Observer.Enabled {
		inst, shutdown, err := observer.Init(ctx, cfg.Observer.Service)
		if err != nil {
			return fmt.Errorf("init observability: %w", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("observability shutdown: %v", err)
			}
		}()
		chunker = observer.WrapChunker(ctx, chunker, cfg.Chunker.Kind, inst)
		opts = append(opts, ingest.WithTracer(observer.NewTracer()))
	}
	opts = append(opts, ingest.WithChunker(chunker))
	pipeline := ingest.NewPipeline(opts...)

	if len(paths) == 0 {
		return runStdin(ctx, pipeline, contentType)
	}
	for _, path := range paths {
		res, err := pipeline.RunFile(ctx, path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := ingest.WriteJSONL(os.Stdout, res); err != nil {
			return err
		}
	}
	return nil
}

func runStdin(ctx context.Context, pipeline *ingest.Pipeline, contentType string) error {
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	ct := ingest.TypePlainText
	if contentType != "" {
		ct = ingest.ContentTypeFromExtension(contentType)
	}
	res, err := pipeline.Run(ctx, content, ct, "stdin", "")
	if err != nil {
		return err
	}
	return ingest.WriteJSONL(os.Stdout, res)
}
