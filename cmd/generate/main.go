// Command main renders a generator form from a YAML values file and
// optionally sends the prompt to the configured model.
//
//	go run ./cmd/generate -form education/quiz -values quiz.yml -send
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"vibestudio/internal/config"
	"vibestudio/internal/generation"
	"vibestudio/internal/prompt"

	"github.com/joho/godotenv"
)

func main() {
	formKey := flag.String("form", "", "Form as category/slug, e.g. marketing/email")
	valuesPath := flag.String("values", "", "YAML file with form values")
	send := flag.Bool("send", false, "Send the prompt to the model and print the result")
	preview := flag.String("preview", "", "Write the generated content as a standalone HTML page to this path")
	list := flag.Bool("list", false, "List available forms")
	flag.Parse()

	if *list {
		for _, d := range prompt.Catalog() {
			fmt.Printf("%-28s %s\n", d.Key, d.ContentType)
		}
		return
	}

	category, slug, ok := strings.Cut(*formKey, "/")
	if !ok {
		log.Fatal("-form must be category/slug (see -list)")
	}

	form, err := prompt.Lookup(category, slug)
	if err != nil {
		log.Fatalf("Unknown form: %v", err)
	}

	if *valuesPath != "" {
		doc, err := os.ReadFile(*valuesPath)
		if err != nil {
			log.Fatalf("Failed to read values: %v", err)
		}
		if err := prompt.LoadValues(form, doc); err != nil {
			log.Fatalf("Failed to load values: %v", err)
		}
	}

	if err := form.Validate(); err != nil {
		log.Fatalf("Invalid form: %v", err)
	}

	promptText := form.Prompt()
	fmt.Println(promptText)

	if !*send {
		return
	}

	_ = godotenv.Load()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	client := generation.NewClient(generation.Config{
		BaseURL:     cfg.GenerationBaseURL,
		APIKey:      cfg.GenerationAPIKey,
		Model:       cfg.GenerationModel,
		Temperature: cfg.GenerationTemperature,
		MaxTokens:   cfg.GenerationMaxTokens,
		Timeout:     cfg.GenerationTimeout(),
	})

	content, err := client.Generate(context.Background(), promptText, string(form.Category()), form.ContentType())
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	fmt.Println("\n---")
	fmt.Println(content)

	if *preview != "" {
		if err := os.WriteFile(*preview, []byte(generation.WrapDocument(content)), 0o644); err != nil {
			log.Fatalf("Failed to write preview: %v", err)
		}
		log.Printf("Preview written to %s", *preview)
	}
}
