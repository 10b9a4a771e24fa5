package entities

import "regexp"

// CardBrand is the card network detected from the card number prefix.
type CardBrand string

const (
	CardBrandVisa       CardBrand = "Visa"
	CardBrandMastercard CardBrand = "Mastercard"
	CardBrandAmex       CardBrand = "Amex"
	CardBrandElo        CardBrand = "Elo"
	CardBrandHipercard  CardBrand = "Hipercard"
	CardBrandDiners     CardBrand = "Diners"
	CardBrandDiscover   CardBrand = "Discover"
	CardBrandJCB        CardBrand = "JCB"
	CardBrandUnknown    CardBrand = "Unknown"
)

// Elo and Hipercard ranges overlap Visa/Mastercard/Discover prefixes, so the
// order of this slice matters.
var cardBrandPatterns = []struct {
	brand   CardBrand
	pattern *regexp.Regexp
}{
	{CardBrandElo, regexp.MustCompile(`^(4011(78|79)|43(1274|8935)|45(1416|7393|763(1|2))|50(4175|6699|67[0-7][0-9]|9000)|627780|63(6297|6368)|650(03[^4]|04[0-9]|05[01]|4(0[5-9]|3[0-9]|8[5-9]|9[0-9])|5([0-2][0-9]|3[0-8])|9([2-6][0-9]|7[0-8])|541|700|720|901)|651652|655000|655021)`)},
	{CardBrandHipercard, regexp.MustCompile(`^(606282|3841)`)},
	{CardBrandAmex, regexp.MustCompile(`^3[47]`)},
	{CardBrandDiners, regexp.MustCompile(`^3(0[0-5]|[68])`)},
	{CardBrandJCB, regexp.MustCompile(`^35(2[89]|[3-8])`)},
	{CardBrandDiscover, regexp.MustCompile(`^6(011|5)`)},
	{CardBrandMastercard, regexp.MustCompile(`^(5[1-5]|2(2(2[1-9]|[3-9])|[3-6]|7([01]|20)))`)},
	{CardBrandVisa, regexp.MustCompile(`^4`)},
}

// DetectCardBrand never fails: numbers that match no known range are Unknown.
// The input is expected to contain digits only.
func DetectCardBrand(number string) CardBrand {
	for _, p := range cardBrandPatterns {
		if p.pattern.MatchString(number) {
			return p.brand
		}
	}
	return CardBrandUnknown
}

// ProviderMethodID returns the Mercado Pago payment_method_id for the brand, or
// an empty string when the provider has no dedicated id for it.
func (b CardBrand) ProviderMethodID() string {
	switch b {
	case CardBrandVisa:
		return "visa"
	case CardBrandMastercard:
		return "master"
	case CardBrandAmex:
		return "amex"
	case CardBrandElo:
		return "elo"
	case CardBrandHipercard:
		return "hipercard"
	case CardBrandDiners:
		return "diners"
	}
	return ""
}
