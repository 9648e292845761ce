package seo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProductSchema(t *testing.T) {
	t.Parallel()

	m := Product("Marina Ten", "Ten-slot case.", "https://veltacases.com/products/2", "https://veltacases.com/img/m.jpg", "2", 249, "EUR")
	require.Equal(t, "Product", m["@type"])

	offer, ok := m["offers"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "249.00", offer["price"])
	require.Equal(t, "EUR", offer["priceCurrency"])

	free := Product("Sample", "No price.", "", "", "", 0, "EUR")
	_, ok = free["offers"]
	require.False(t, ok, "no offer without a positive price")
}

func TestBreadcrumbList(t *testing.T) {
	t.Parallel()

	m := BreadcrumbList([]BreadcrumbItem{
		{Name: "Shop", Item: "https://veltacases.com/"},
		{Name: "Marina Ten", Item: "https://veltacases.com/products/2"},
	})

	raw := JSON(m)
	require.NotEmpty(t, raw)

	var decoded struct {
		Elements []struct {
			Position int    `json:"position"`
			Name     string `json:"name"`
		} `json:"itemListElement"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	require.Len(t, decoded.Elements, 2)
	require.Equal(t, 1, decoded.Elements[0].Position)
	require.Equal(t, "Marina Ten", decoded.Elements[1].Name)
}
