package format

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCurrency(t *testing.T) {
	t.Parallel()

	en := Currency(249, "en")
	require.Contains(t, en, "€")
	require.Contains(t, en, "249")

	es := Currency(189.5, "es")
	require.Contains(t, es, "€")
	require.Contains(t, es, "189")
}

func TestCurrencyFallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount float64
		lang   string
		want   string
	}{
		{name: "unparsable tag", amount: 249, lang: "not a tag!", want: "€249.00"},
		{name: "empty tag", amount: 0, lang: "", want: "€0.00"},
		{name: "rounds to two decimals", amount: 1234.567, lang: "@@", want: "€1234.57"},
		{name: "not a number", amount: math.NaN(), lang: "en", want: "€NaN"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Currency(tc.amount, tc.lang))
		})
	}
}

func TestDate(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	require.Equal(t, "Aug 23, 2026", Date(ts, "en"))
	require.Equal(t, "23/08/2026", Date(ts, "es"))
	require.Equal(t, "Aug 23, 2026", Date(ts, ""))
}
