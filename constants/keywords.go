package constants

// Keyword lists for zone-scoped heuristics. All entries are lowercase with
// Turkish casing applied (dotless ı, dotted i), so matching code must lower
// input text with the Turkish case mapper first.

// BuyerKeywords disqualify a header-left line from being the vendor name:
// they mark the buyer/customer block, not the issuer block.
var BuyerKeywords = []string{
	"sayın",
	"alıcı",
	"müşteri",
	"teslimat adresi",
	"fatura adresi",
}

// CompanySuffixes are legal-entity markers that identify a company name line.
var CompanySuffixes = []string{
	"a.ş",
	"a.s.",
	"anonim",
	"ltd",
	"şti",
	"sti.",
	"limited",
	"ticaret",
	"tic.",
	"san.",
	"sanayi",
	"holding",
	"kooperatif",
}

// TaxIDLabels precede the issuer tax identifier (VKN, 10 digits) or a
// personal identifier (TCKN, 11 digits).
var TaxIDLabels = []string{
	"vkn",
	"vergi no",
	"vergi numarası",
	"vergi kimlik no",
	"tckn",
}

// InvoiceNumberLabels precede the invoice number.
var InvoiceNumberLabels = []string{
	"fatura no",
	"fatura numarası",
	"belge no",
	"seri no",
}

// DateLabels mark a line carrying the invoice date.
var DateLabels = []string{
	"fatura tarihi",
	"düzenlenme tarihi",
	"düzenleme tarihi",
	"tarih",
}

// DateBlacklist disqualifies a line from the date search even when a date
// label matches ("tarih" is a substring of all of these).
var DateBlacklist = []string{
	"sipariş tarihi",
	"sevk tarihi",
	"son ödeme tarihi",
	"vade tarihi",
}

// ETTNLabels precede the unique transaction identifier of an e-invoice.
var ETTNLabels = []string{
	"ettn",
}

// TableHeaderKeywords locate the item table's header row in the body zone.
var TableHeaderKeywords = []string{
	"mal hizmet",
	"mal/hizmet",
	"açıklama",
	"cinsi",
	"hizmet",
}

// TableFooterKeywords locate the first row after the last item row.
var TableFooterKeywords = []string{
	"ara toplam",
	"mal hizmet toplam",
	"vergi hariç",
	"toplam",
	"kdv",
}

// StrictTotalAnchors are the canonical total-due phrases. The first footer
// line matching one of these, scanning bottom-up, wins outright.
var StrictTotalAnchors = []string{
	"ödenecek tutar",
	"genel toplam",
	"vergiler dahil toplam tutar",
	"toplam tutar (kdv dahil)",
}

// LooseTotalKeywords accept a footer line as the total when no strict anchor
// matched, unless one of LooseTotalExclusions is also present.
var LooseTotalKeywords = []string{
	"toplam",
	"tutar",
}

// LooseTotalExclusions keep subtotal and tax lines out of the loose match.
var LooseTotalExclusions = []string{
	"ara",
	"kdv",
}

// SubtotalAnchors mark the pre-tax base.
var SubtotalAnchors = []string{
	"ara toplam",
	"mal hizmet toplam tutarı",
	"matrah",
	"vergi hariç tutar",
}

// TaxAnchors mark the computed VAT figure.
var TaxAnchors = []string{
	"hesaplanan kdv",
	"kdv tutarı",
	"toplam kdv",
}

// MarketplacePhrases indicate an intermediary marketplace invoice; their
// presence is annotated in record metadata, never written over the vendor.
var MarketplacePhrases = []string{
	"pazaryeri",
	"aracı hizmet sağlayıcı",
	"elektronik ticaret aracı",
}

// MetadataKeyMarketplace is the metadata key set when a marketplace phrase
// is found on the page.
const MetadataKeyMarketplace = "marketplace"

// KnownIssuerTaxIDs maps hard-coded high-confidence issuer VKN literals to
// issuer names. A hit sets vendor name and tax id directly, bypassing the
// generic header-left scan.
var KnownIssuerTaxIDs = map[string]string{
	"3130557669": "DSM Grup Danışmanlık İletişim ve Satış Tic. A.Ş.",
	"2910131190": "D-Market Elektronik Hizmetler ve Tic. A.Ş.",
	"0650061374": "Amazon Turkey Perakende Hizmetleri Ltd. Şti.",
}
