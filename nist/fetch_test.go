package nist_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serebrin/xrayopt/nist"
)

// TestQueryURL verifies the fixed query template of the remote contract.
func TestQueryURL(t *testing.T) {
	u := nist.QueryURL("Au", 9, 210)

	assert.True(t, strings.HasPrefix(u, nist.BaseURL+"?"))
	for _, param := range []string{
		"Formula=Au", "gtype=4", "range=S", "lower=9", "upper=210",
		"density=", "frames=no", "htmltable=1",
	} {
		assert.Contains(t, u, param)
	}
}

// pageFetcher serves a fixed payload and records the requested window.
type pageFetcher struct {
	page       string
	err        error
	formula    string
	minE, maxE float64
}

func (f *pageFetcher) Fetch(_ context.Context, formulaStr string, minEnergyKeV, maxEnergyKeV float64) (string, error) {
	f.formula, f.minE, f.maxE = formulaStr, minEnergyKeV, maxEnergyKeV

	return f.page, f.err
}

// TestService_FormattedTable runs the whole pipeline over a canned page
// and spot-checks the serialized output.
func TestService_FormattedTable(t *testing.T) {
	fetcher := &pageFetcher{page: samplePage}
	svc := nist.NewService(fetcher)

	text, err := svc.FormattedTable(context.Background(), "W", 10, 20)
	require.NoError(t, err)
	assert.Equal(t, "W", fetcher.formula)
	assert.Equal(t, 10.0, fetcher.minE)
	assert.Equal(t, 20.0, fetcher.maxE)

	// The output re-parses into the same two rows the page carried.
	table, err := nist.ParseFormatted(text)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, 10.0, table.Rows[0].Energy)
	assert.Equal(t, 73.1, table.Rows[0].F1)
	assert.InEpsilon(t, 0.12398e-7, table.Rows[0].WavelengthCM, 1e-12)
	assert.Positive(t, table.Rows[0].Delta)
	assert.Positive(t, table.Rows[0].Beta)
}

// TestService_ErrorPage: a payload with the error marker stops the
// pipeline with ErrRemotePage before any parsing.
func TestService_ErrorPage(t *testing.T) {
	svc := nist.NewService(&pageFetcher{page: "<html>Error: no such formula</html>"})

	_, err := svc.FormattedTable(context.Background(), "Zz", 10, 20)
	assert.ErrorIs(t, err, nist.ErrRemotePage)
}

// TestService_FetchError: transport failures propagate unwrapped; the
// pipeline adds no retry or fallback of its own.
func TestService_FetchError(t *testing.T) {
	boom := errors.New("connection reset")
	svc := nist.NewService(&pageFetcher{err: boom})

	_, err := svc.Table(context.Background(), "Au", 10, 20)
	assert.ErrorIs(t, err, boom)
}

// TestService_MissingDensity: a page with a table but no density line is
// ErrNoDensity.
func TestService_MissingDensity(t *testing.T) {
	page := `<html><table>
<tr><td>1</td><td>2</td><td>3</td><td>4</td></tr>
</table></html>`
	svc := nist.NewService(&pageFetcher{page: page})

	_, err := svc.Table(context.Background(), "Au", 10, 20)
	assert.ErrorIs(t, err, nist.ErrNoDensity)
}
