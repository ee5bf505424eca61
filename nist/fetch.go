package nist

import (
	"context"
	"net/url"
	"strconv"
)

// BaseURL is the lookup endpoint of the NIST FFAST service.
const BaseURL = "https://physics.nist.gov/cgi-bin/ffast/ffast.pl"

// QueryURL builds the service's fixed query template for a formula and an
// energy window in keV. The parameter set (gtype=4, range=S, empty
// density, frames=no, htmltable=1) is part of the remote contract and not
// configurable.
func QueryURL(formulaStr string, minEnergyKeV, maxEnergyKeV float64) string {
	q := url.Values{}
	q.Set("Formula", formulaStr)
	q.Set("gtype", "4")
	q.Set("range", "S")
	q.Set("lower", strconv.FormatFloat(minEnergyKeV, 'g', -1, 64))
	q.Set("upper", strconv.FormatFloat(maxEnergyKeV, 'g', -1, 64))
	q.Set("density", "")
	q.Set("frames", "no")
	q.Set("htmltable", "1")

	return BaseURL + "?" + q.Encode()
}

// Fetcher retrieves the raw lookup page for a formula and energy window.
// Implementations own the transport policy: timeouts, retries and backoff
// all live behind this interface (typically via the context), never in the
// parsing pipeline.
type Fetcher interface {
	Fetch(ctx context.Context, formulaStr string, minEnergyKeV, maxEnergyKeV float64) (string, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, formulaStr string, minEnergyKeV, maxEnergyKeV float64) (string, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, formulaStr string, minEnergyKeV, maxEnergyKeV float64) (string, error) {
	return f(ctx, formulaStr, minEnergyKeV, maxEnergyKeV)
}

// Service runs the full lookup pipeline over an injected Fetcher.
type Service struct {
	fetcher Fetcher
}

// NewService returns a service over the given fetcher.
func NewService(f Fetcher) *Service {
	return &Service{fetcher: f}
}

// Table fetches and parses the scattering table for a material formula
// over [minEnergyKeV, maxEnergyKeV], with optical columns computed from
// the page's nominal density.
func (s *Service) Table(ctx context.Context, materialFormula string, minEnergyKeV, maxEnergyKeV float64) (Table, error) {
	raw, err := s.fetcher.Fetch(ctx, materialFormula, minEnergyKeV, maxEnergyKeV)
	if err != nil {
		return Table{}, err
	}
	if err = Validate(raw); err != nil {
		return Table{}, err
	}

	table, err := Parse(raw)
	if err != nil {
		return Table{}, err
	}
	atomsPerVolume, err := ExtractDensity(raw)
	if err != nil {
		return Table{}, err
	}

	return table.WithOpticalColumns(atomsPerVolume), nil
}

// FormattedTable is Table serialized through Format: the end-to-end
// fetch → validate → parse → extract-density → compute → serialize run.
func (s *Service) FormattedTable(ctx context.Context, materialFormula string, minEnergyKeV, maxEnergyKeV float64) (string, error) {
	table, err := s.Table(ctx, materialFormula, minEnergyKeV, maxEnergyKeV)
	if err != nil {
		return "", err
	}

	return Format(table)
}
