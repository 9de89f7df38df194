// Command valuate prices a single used asset from the command line.
//
//	valuate --category electronics --price 100000 --year 2023 \
//	        --condition good --brand-tier premium [--image photo.jpg]
//
// It exits 0 on success, 1 on a configuration or input error and 2 when the
// pricing service cannot value the item.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"smartval/internal/config"
	apperrors "smartval/internal/errors"
	"smartval/internal/logger"
	"smartval/internal/pricing"
	"smartval/internal/services"
	"smartval/internal/valuation"
)

const (
	exitOK            = 0
	exitInputError    = 1
	exitPricingFailed = 2
)

func main() {
	_ = godotenv.Load()
	logger.Init(envOr("VALUATE_LOG", "silent"))
	defer logger.Sync()

	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, time.Now))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// run executes one valuation and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, now func() time.Time) int {
	fs := pflag.NewFlagSet("valuate", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	category := fs.String("category", "", "asset category: "+joinTags(valuation.Categories))
	price := fs.Float64("price", 0, "original purchase price in rupees")
	year := fs.Int("year", 0, "purchase year")
	condition := fs.String("condition", "", "condition: "+joinTags(valuation.Conditions))
	brandTier := fs.String("brand-tier", "", "brand tier: "+joinTags(valuation.BrandTiers))
	imagePath := fs.String("image", "", "optional photo of the item")
	fs.String("pricing-url", "", "pricing service base URL (PRICING_URL)")
	fs.String("pricing-api-key", "", "pricing service API key (PRICING_API_KEY)")
	fs.String("timeout", "", "pricing request timeout, 0 for none (PRICING_TIMEOUT)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitInputError
	}

	v := config.NewViper()
	for key, flag := range map[string]string{
		"PRICING_URL":     "pricing-url",
		"PRICING_API_KEY": "pricing-api-key",
		"PRICING_TIMEOUT": "timeout",
	} {
		if fs.Changed(flag) {
			_ = v.BindPFlag(key, fs.Lookup(flag))
		}
	}
	cfg, err := config.FromViper(v)
	if err != nil {
		fmt.Fprintf(stderr, "valuate: %v\n", err)
		return exitInputError
	}

	form := services.ValuationForm{
		Category:  *category,
		Condition: *condition,
		BrandTier: *brandTier,
	}
	if fs.Changed("price") {
		form.OriginalPrice = price
	}
	if fs.Changed("year") {
		form.PurchaseYear = year
	}
	if *imagePath != "" {
		img, err := readImage(*imagePath, cfg.MaxImageBytes)
		if err != nil {
			fmt.Fprintf(stderr, "valuate: %v\n", err)
			return exitInputError
		}
		form.Image = img
	}

	client := pricing.NewClient(cfg.PricingURL, cfg.PricingAPIKey, &http.Client{Timeout: cfg.PricingTimeout})
	svc := services.NewValuationService(client, now, cfg.MaxImageBytes)

	sub, err := svc.Submit(ctx, "cli", form)
	if err != nil {
		fmt.Fprintf(stderr, "valuate: %v\n", err)
		if errors.Is(err, apperrors.ErrPricingUnavailable) {
			return exitPricingFailed
		}
		return exitInputError
	}

	printSubmission(stdout, sub)
	return exitOK
}

// readImage loads at most one byte past limit so oversized files are
// rejected by the service rather than read whole.
func readImage(path string, limit int64) (*services.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	return &services.Image{Filename: filepath.Base(path), Data: data}, nil
}

func printSubmission(w io.Writer, sub *services.Submission) {
	d := valuation.Describe(sub.Input, sub.Result)

	fmt.Fprintf(w, "%s · %s · %s\n\n", d.Category, d.Condition, d.BrandTier)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Estimated value\t%s\t(%d%% below %s)\n", d.CurrentValue, d.DepreciatedPercent, d.OriginalPrice)
	fmt.Fprintf(tw, "Local estimate\t%s\t\n", valuation.FormatRupee(sub.LocalCurrentValue))
	fmt.Fprintf(tw, "Age\t%s\t\n", d.Age)
	fmt.Fprintf(tw, "Depreciation\t%s\t\n", d.DepreciationRate)
	fmt.Fprintf(tw, "Multipliers\t%s\t\n", d.Multipliers)
	if sub.ImageURL != "" {
		mime := strings.TrimPrefix(strings.SplitN(sub.ImageURL, ";", 2)[0], "data:")
		fmt.Fprintf(tw, "Photo\t%s\t\n", mime)
	}
	_ = tw.Flush()

	fmt.Fprintln(w, "\nProjection")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, p := range d.FuturePrices {
		fmt.Fprintf(tw, "  %d\t%s\t\n", p.Year, p.Price)
	}
	_ = tw.Flush()
}

func joinTags[T ~string](tags []T) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
