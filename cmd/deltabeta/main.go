// Command deltabeta downloads a form-factor table from the NIST FFAST
// service for a material formula and prints it with derived delta and
// beta columns: energy (keV), f1, f2, wavelength (cm), delta, beta.
//
// Usage:
//
//	deltabeta [-min 10] [-max 200] [-config defaults.toml] [-timeout 30s] Au
//
// A TOML config file may provide default energy bounds; explicit flags
// win over the file.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/serebrin/xrayopt/nist"
)

// config carries the optional TOML defaults.
type config struct {
	MinEnergy float64 `toml:"min_energy"` // keV
	MaxEnergy float64 `toml:"max_energy"` // keV
}

// httpFetcher implements nist.Fetcher over net/http. Transport policy
// (timeout, cancellation) comes from the request context; the parsing
// pipeline imposes none.
type httpFetcher struct {
	client *http.Client
}

func (f httpFetcher) Fetch(ctx context.Context, formulaStr string, minEnergyKeV, maxEnergyKeV float64) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		nist.QueryURL(formulaStr, minEnergyKeV, maxEnergyKeV), nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", formulaStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: unexpected status %s", formulaStr, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("fetch %s: read body: %w", formulaStr, err)
	}

	return string(body), nil
}

func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags)

	var (
		minEnergy  = flag.Float64("min", 10, "minimum energy (keV)")
		maxEnergy  = flag.Float64("max", 200, "maximum energy (keV)")
		configPath = flag.String("config", "", "TOML file with default energy bounds")
		timeout    = flag.Duration("timeout", 30*time.Second, "fetch timeout")
	)
	flag.Parse()

	material := "Au"
	if flag.NArg() > 0 {
		material = flag.Arg(0)
	}

	// Config file supplies defaults; flags given explicitly win.
	if *configPath != "" {
		var cfg config
		if _, err := toml.DecodeFile(*configPath, &cfg); err != nil {
			logger.Fatal(fmt.Errorf("config: %w", err))
		}
		set := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if !set["min"] && cfg.MinEnergy > 0 {
			*minEnergy = cfg.MinEnergy
		}
		if !set["max"] && cfg.MaxEnergy > 0 {
			*maxEnergy = cfg.MaxEnergy
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	svc := nist.NewService(httpFetcher{client: http.DefaultClient})
	table, err := svc.FormattedTable(ctx, material, *minEnergy, *maxEnergy)
	if err != nil {
		logger.Fatal(fmt.Errorf("%s: %w", material, err))
	}

	fmt.Print(table)
}
