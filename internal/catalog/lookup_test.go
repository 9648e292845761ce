package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	t.Parallel()

	var records []Product
	raw := `[
		{"id": "case-01", "name": "Heritage Six"},
		{"id": 3, "name": "Marina Ten"},
		{"id": "3", "name": "Shadow Of Three"}
	]`
	require.NoError(t, json.Unmarshal([]byte(raw), &records))

	tests := []struct {
		name     string
		id       string
		wantName string
		ok       bool
	}{
		{name: "string id", id: "case-01", wantName: "Heritage Six", ok: true},
		{name: "numeric feed id from string param", id: "3", wantName: "Marina Ten", ok: true},
		{name: "decimal param matches integer id", id: "3.0", wantName: "Marina Ten", ok: true},
		{name: "padded param", id: " 3 ", wantName: "Marina Ten", ok: true},
		{name: "miss", id: "99", ok: false},
		{name: "non numeric miss", id: "case-99", ok: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Find(records, tc.id)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				require.Equal(t, tc.wantName, got.Name)
			}
		})
	}
}

// Two records answer to "3"; the first one in feed order wins.
func TestFindFirstMatchWins(t *testing.T) {
	t.Parallel()

	records := []Product{
		{ID: "3", Name: "First"},
		{ID: "3", Name: "Second"},
	}
	got, ok := Find(records, "3")
	require.True(t, ok)
	require.Equal(t, "First", got.Name)
}

func TestFindEmptyRecords(t *testing.T) {
	t.Parallel()

	_, ok := Find(nil, "1")
	require.False(t, ok)
}
