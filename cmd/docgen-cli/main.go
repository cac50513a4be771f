package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	docgen "github.com/goliatone/go-docgen"
	"github.com/goliatone/go-docgen/pkg/orchestrator"
	"github.com/goliatone/go-docgen/pkg/template"
)

func main() {
	input := flag.String("input", "sample.json", "record set JSON file")
	templates := flag.String("templates", template.DefaultFileName, "template configuration YAML file")
	output := flag.String("output", "generated_document.docx", "output document path")
	renderer := flag.String("renderer", "docx", "renderer to use")
	verbose := flag.Bool("v", false, "log pipeline debug events")
	flag.Parse()

	ctx := context.Background()

	explicitTemplates := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "templates" {
			explicitTemplates = true
		}
	})

	options := []orchestrator.Option{
		orchestrator.WithDefaultRenderer(*renderer),
	}
	opt, err := templateOption(*templates, explicitTemplates)
	if err != nil {
		log.Fatalf("Failed to read templates: %v", err)
	}
	if opt != nil {
		options = append(options, opt)
	}
	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			log.Fatalf("Failed to initialise logger: %v", err)
		}
		defer logger.Sync()
		options = append(options, orchestrator.WithLogger(logger))
	}

	gen := docgen.NewGenerator(options...)

	req := docgen.Request{
		Source:   docgen.SourceFromFile(*input),
		Renderer: *renderer,
	}

	if err := gen.GenerateToFile(ctx, req, *output); err != nil {
		log.Fatalf("Failed to generate document: %v", err)
	}

	absPath, err := filepath.Abs(*output)
	if err != nil {
		absPath = *output
	}
	fmt.Println("\nDocument generated successfully!")
	fmt.Printf("Location: %s\n", absPath)
}

// templateOption resolves the -templates flag. A path the user asked for
// must exist; only the conventional default may fall back to the embedded
// templates when absent.
func templateOption(path string, explicit bool) (orchestrator.Option, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return orchestrator.WithTemplateFile(path), nil
	case explicit || !os.IsNotExist(err):
		return nil, err
	default:
		return nil, nil
	}
}
