package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"har-to-openapi/internal/assembler"
	"har-to-openapi/internal/config"
	"har-to-openapi/internal/har"
	"har-to-openapi/internal/llm"
	"har-to-openapi/internal/logger"
	"har-to-openapi/internal/spec"
)

func main() {
	harFile := flag.String("har-file", "", "Path to the HAR file")
	output := flag.String("output", "", "Output YAML file path")
	pathPrefix := flag.String("path-prefix", "", "Filter endpoints by path prefix (e.g., /api)")
	appendMode := flag.Bool("append", false, "Append new endpoints to existing spec file instead of replacing it")
	validate := flag.Bool("validate", false, "Validate the generated specification")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	appLogger, err := logger.New(*debug)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Sync()

	// Load configuration; flags override file values
	cfg, err := config.LoadConfig()
	if err != nil {
		appLogger.Fatal("Failed to load configuration", zap.Error(err))
	}
	if *harFile != "" {
		cfg.Convert.HARFile = *harFile
	}
	if *output != "" {
		cfg.Convert.Output = *output
	}
	if *pathPrefix != "" {
		cfg.Convert.PathPrefix = *pathPrefix
	}
	if *appendMode {
		cfg.Convert.Append = true
	}
	if *validate {
		cfg.Convert.Validate = true
	}

	fmt.Printf("Converting %s to OpenAPI specification...\n", cfg.Convert.HARFile)
	if cfg.Convert.PathPrefix != "" {
		fmt.Printf("Filtering endpoints with path prefix: %s\n", cfg.Convert.PathPrefix)
	}

	archive, err := har.Load(cfg.Convert.HARFile)
	if err != nil {
		appLogger.Fatal("Failed to load HAR file", zap.Error(err))
	}

	// Optional LLM enrichment; a misconfigured client disables enrichment
	// rather than failing the conversion
	var enricher assembler.Enricher
	if cfg.LLM.Enabled {
		client, err := llm.NewClient(&llm.Config{
			Provider:    cfg.LLM.Provider,
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
		}, appLogger)
		if err != nil {
			appLogger.Warn("Description enrichment disabled", zap.Error(err))
		} else {
			enricher = client
		}
	}

	ctx := context.Background()
	asm := assembler.New(assembler.Options{
		PathPrefix: cfg.Convert.PathPrefix,
		Title:      cfg.Info.Title,
		Version:    cfg.Info.Version,
		Enricher:   enricher,
	}, appLogger)
	newDoc := asm.Assemble(ctx, archive)

	// Handle appending to an existing spec file
	finalDoc := newDoc
	if cfg.Convert.Append {
		if _, err := os.Stat(cfg.Convert.Output); err == nil {
			fmt.Printf("Appending to existing spec file: %s\n", cfg.Convert.Output)
			existing, err := spec.ReadFile(cfg.Convert.Output)
			if err != nil {
				appLogger.Error("Failed to read existing spec file", zap.Error(err))
				fmt.Println("Creating new spec file instead.")
			} else {
				finalDoc = spec.Merge(existing, newDoc)
			}
		}
	}

	data, err := finalDoc.Marshal()
	if err != nil {
		appLogger.Fatal("Failed to marshal specification", zap.Error(err))
	}

	if cfg.Convert.Validate {
		if err := spec.Validate(ctx, data); err != nil {
			appLogger.Warn("Validation failed", zap.Error(err))
		} else {
			fmt.Println("Generated specification is valid.")
		}
	}

	if err := os.WriteFile(cfg.Convert.Output, data, 0644); err != nil {
		appLogger.Fatal("Failed to write specification", zap.Error(err))
	}

	fmt.Printf("OpenAPI specification has been written to %s\n", cfg.Convert.Output)
}
