package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func deriveFixture() []Product {
	return []Product{
		{ID: "1", Name: "Heritage Six", Price: 189, Slots: 6, Finish: "walnut"},
		{ID: "2", Name: "Marina Ten", Price: 249, Slots: 10, Finish: "ocean blue"},
		{ID: "3", Name: "Atelier Twelve", Price: 329, Slots: 12, Finish: "smoked oak"},
		{ID: "4", Name: "Compact Trio", Price: 89, Slots: 3, Finish: "natural beech"},
		{ID: "5", Name: "Marina Grande", Price: 249, Slots: 16, Finish: "ocean blue"},
	}
}

func ids(records []Product) []string {
	out := make([]string, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.ID.String())
	}
	return out
}

func TestDeriveQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty query matches all", query: "", want: []string{"1", "2", "3", "4", "5"}},
		{name: "whitespace query matches all", query: "   ", want: []string{"1", "2", "3", "4", "5"}},
		{name: "matches finish", query: "blue", want: []string{"2", "5"}},
		{name: "case insensitive", query: "MARINA", want: []string{"2", "5"}},
		{name: "matches slot count", query: "12", want: []string{"3"}},
		{name: "substring of slot count", query: "6", want: []string{"1", "5"}},
		{name: "no match", query: "mahogany", want: []string{}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Derive(deriveFixture(), tc.query, SortRelevance)
			require.Equal(t, tc.want, ids(got))
		})
	}
}

func TestDeriveSort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  SortKey
		want []string
	}{
		{name: "relevance keeps feed order", key: SortRelevance, want: []string{"1", "2", "3", "4", "5"}},
		{name: "price ascending", key: SortPriceAsc, want: []string{"4", "1", "2", "5", "3"}},
		{name: "price descending", key: SortPriceDesc, want: []string{"3", "2", "5", "4", "1"}},
		{name: "slots ascending", key: SortSlotsAsc, want: []string{"4", "1", "2", "3", "5"}},
		{name: "slots descending", key: SortSlotsDesc, want: []string{"5", "3", "2", "1", "4"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Derive(deriveFixture(), "", tc.key)
			require.Equal(t, tc.want, ids(got))
		})
	}
}

// Records 2 and 5 share a price; a stable sort must keep their feed order in
// both directions.
func TestDeriveSortStable(t *testing.T) {
	t.Parallel()

	asc := Derive(deriveFixture(), "", SortPriceAsc)
	require.Equal(t, []string{"4", "1", "2", "5", "3"}, ids(asc))

	desc := Derive(deriveFixture(), "", SortPriceDesc)
	require.Equal(t, []string{"3", "2", "5", "4", "1"}, ids(desc))
}

func TestDeriveNaNOrdersLast(t *testing.T) {
	t.Parallel()

	var unparsed Number
	require.NoError(t, json.Unmarshal([]byte(`"call for price"`), &unparsed))

	records := []Product{
		{ID: "a", Name: "Priced", Price: 120},
		{ID: "b", Name: "Unpriced", Price: unparsed},
		{ID: "c", Name: "Also unpriced", Price: unparsed},
		{ID: "d", Name: "Cheap", Price: 40},
	}

	asc := Derive(records, "", SortPriceAsc)
	require.Equal(t, []string{"d", "a", "b", "c"}, ids(asc))

	desc := Derive(records, "", SortPriceDesc)
	require.Equal(t, []string{"a", "d", "b", "c"}, ids(desc))
}

func TestDeriveDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	records := deriveFixture()
	_ = Derive(records, "", SortPriceDesc)
	require.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(records))
}

func TestDeriveIdempotent(t *testing.T) {
	t.Parallel()

	first := Derive(deriveFixture(), "marina", SortPriceAsc)
	second := Derive(deriveFixture(), "marina", SortPriceAsc)
	require.Equal(t, first, second)
}

func TestParseSortKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want SortKey
	}{
		{in: "relevance", want: SortRelevance},
		{in: "price-asc", want: SortPriceAsc},
		{in: "PRICE-DESC", want: SortPriceDesc},
		{in: " slots-asc ", want: SortSlotsAsc},
		{in: "slots-desc", want: SortSlotsDesc},
		{in: "", want: SortRelevance},
		{in: "price", want: SortRelevance},
		{in: "newest", want: SortRelevance},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, ParseSortKey(tc.in), "input %q", tc.in)
	}
}
