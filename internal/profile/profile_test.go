package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/invoice-parser/constants"
	"github.com/joseph-ayodele/invoice-parser/internal/entity"
)

func TestRegistrySelect(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		lowered string
		want    string
	}{
		{"fatura trendyol pazaryeri", "trendyol"},
		{"dsm grup danışmanlık", "trendyol"},
		{"vkn 3130557669", "trendyol"},
		{"hepsiburada siparişiniz", "hepsiburada"},
		{"vkn 2910131190", "hepsiburada"},
		{"abc fırma a.ş.", "generic"},
		{"", "generic"},
	}
	for _, tc := range tests {
		t.Run(tc.want+"/"+tc.lowered, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Select(tc.lowered).Name())
		})
	}
}

func TestTrendyolApplyFillsMissingIdentity(t *testing.T) {
	inv := entity.NewInvoice()
	trendyolProfile{}.Apply(inv, "", nil)

	assert.Equal(t, "3130557669", inv.VendorTaxID)
	assert.Contains(t, inv.VendorName, "DSM Grup")
	assert.Equal(t, "trendyol", inv.Metadata[constants.MetadataKeyMarketplace])
}

func TestTrendyolApplyKeepsExtractedIdentity(t *testing.T) {
	inv := entity.NewInvoice()
	inv.VendorName = "Mağaza Satıcı Ltd. Şti."
	inv.VendorTaxID = "1234567890"
	trendyolProfile{}.Apply(inv, "", nil)

	assert.Equal(t, "Mağaza Satıcı Ltd. Şti.", inv.VendorName)
	assert.Equal(t, "1234567890", inv.VendorTaxID)
}

func TestPriorityRegions(t *testing.T) {
	region, ok := trendyolProfile{}.PriorityRegion()
	require.True(t, ok)
	assert.Greater(t, region.Y, constants.FooterBandMinY)

	_, ok = hepsiburadaProfile{}.PriorityRegion()
	assert.False(t, ok)

	_, ok = genericProfile{}.PriorityRegion()
	assert.False(t, ok)
}
