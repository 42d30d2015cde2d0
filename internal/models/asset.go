package models

import "errors"

// ErrUnknownAsset rejects symbols outside the supported registry. The
// services and facades packages expose it under the same name, so errors.Is
// matches regardless of which layer raised it.
var ErrUnknownAsset = errors.New("unknown asset")

// Synthetic asset symbol codes supported by the engine.
const (
	SUSD = "sUSD"
	SEUR = "sEUR"
	SRUB = "sRUB"
	SBTC = "sBTC"
	SETH = "sETH"
)

// SupportedAssets lists every asset the engine will quote or exchange.
var SupportedAssets = []string{SUSD, SEUR, SRUB, SBTC, SETH}

// IsSupportedAsset reports whether the symbol is a known synthetic asset.
func IsSupportedAsset(asset string) bool {
	for _, a := range SupportedAssets {
		if a == asset {
			return true
		}
	}
	return false
}
