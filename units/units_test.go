package units_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etherealcomputing/converge/ast"
	"github.com/etherealcomputing/converge/diagnostic"
	"github.com/etherealcomputing/converge/units"
)

func qty(value float64, unit string) ast.Quantity {
	var u *ast.Ident
	if unit != "" {
		id := ast.NewIdent(unit, diagnostic.NewSpan(0, 0))
		u = &id
	}
	return ast.Quantity{Value: value, Unit: u, Span: diagnostic.NewSpan(0, 0)}
}

func TestTimeToNanosAllUnits(t *testing.T) {
	cases := []struct {
		unit string
		want int64
	}{
		{"s", 1_000_000_000},
		{"ms", 1_000_000},
		{"us", 1_000},
		{"ns", 1},
	}
	for _, c := range cases {
		got, err := units.TimeToNanos(qty(1, c.unit), "test")
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
}

func TestTimeToNanosRounds(t *testing.T) {
	got, err := units.TimeToNanos(qty(1.5, "ns"), "test")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got)
}

func TestRateToHzUnits(t *testing.T) {
	got, err := units.RateToHz(qty(1, "kHz"), "test")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, got)

	got, err = units.RateToHz(qty(50, "Hz"), "test")
	require.NoError(t, err)
	assert.Equal(t, 50.0, got)
}

func TestMissingUnitIsError(t *testing.T) {
	_, err := units.TimeToNanos(qty(5, ""), "tau_m")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing unit")
}

func TestUnknownTimeUnitIsError(t *testing.T) {
	_, err := units.TimeToNanos(qty(5, "Hz"), "tau_m")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported time unit")
}

func TestUnknownRateUnitIsError(t *testing.T) {
	_, err := units.RateToHz(qty(5, "ms"), "rate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported rate unit")
}
