package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/text/language"

	"aitrustyou/outfit-recommender/internal/config"
	"aitrustyou/outfit-recommender/internal/i18n"
	"aitrustyou/outfit-recommender/internal/models"
	"aitrustyou/outfit-recommender/internal/services"
)

// pathList collects a repeatable flag, keeping the order given.
type pathList []string

func (p *pathList) String() string {
	return strings.Join(*p, ",")
}

func (p *pathList) Set(value string) error {
	*p = append(*p, value)
	return nil
}

func main() {
	os.Exit(run(context.Background(), config.Load(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one recommendation and returns the process exit code.
func run(ctx context.Context, cfg *config.Config, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("recommend", flag.ContinueOnError)
	flags.SetOutput(stderr)

	var shoes pathList
	top := flags.String("top", "", "Path to the top garment image")
	bottom := flags.String("bottom", "", "Path to the bottom garment image")
	flags.Var(&shoes, "shoes", "Path to a shoe image (repeat for each shoe)")
	endpoint := flags.String("url", cfg.Recommender.URL, "Recommendation service endpoint")
	lang := flags.String("lang", cfg.Locale.Default, "Language for the output (es, en)")
	asJSON := flags.Bool("json", false, "Print the result as JSON")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	tag, ok := i18n.ParseTag(*lang)
	if !ok {
		tag = language.Spanish
	}
	printer := i18n.Printer(tag)

	fail := func(err error) int {
		log.Printf("❌ Recommendation failed: %v", err)
		fmt.Fprintln(stderr, "❌", services.UserMessage(printer, err))
		return 1
	}

	loader := services.NewGarmentLoader(cfg.Upload.MaxFileSize)
	selection, err := loadSelection(loader, *top, *bottom, shoes)
	if err != nil {
		return fail(err)
	}

	log.Printf("📦 Top: %s", *top)
	log.Printf("📦 Bottom: %s", *bottom)
	log.Printf("👟 Shoes: %d file(s)", len(selection.Shoes))

	recommender := services.NewRecommenderService(*endpoint, cfg.Recommender.Timeout)
	rec, err := recommender.Recommend(ctx, selection)
	if err != nil {
		return fail(err)
	}

	if *asJSON {
		out, err := json.MarshalIndent(models.RecommendResponse{
			BestIndex:  rec.BestIndex,
			BestOption: rec.BestOption(),
			Results:    rec.Results,
		}, "", "  ")
		if err != nil {
			return fail(fmt.Errorf("failed to encode result: %w", err))
		}
		fmt.Fprintln(stdout, string(out))
		return 0
	}

	text, err := services.NewRenderer(tag).Text(rec)
	if err != nil {
		return fail(err)
	}
	fmt.Fprint(stdout, text)
	return 0
}

func loadSelection(loader services.GarmentLoader, top, bottom string, shoes []string) (*models.Selection, error) {
	selection := &models.Selection{}

	if top != "" {
		garment, err := loader.FromPath(top, models.FieldTop)
		if err != nil {
			return nil, err
		}
		selection.Top = garment
	}

	if bottom != "" {
		garment, err := loader.FromPath(bottom, models.FieldBottom)
		if err != nil {
			return nil, err
		}
		selection.Bottom = garment
	}

	for _, path := range shoes {
		garment, err := loader.FromPath(path, models.FieldShoes)
		if err != nil {
			return nil, err
		}
		selection.Shoes = append(selection.Shoes, *garment)
	}

	return selection, nil
}
