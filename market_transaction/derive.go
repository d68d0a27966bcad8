package market_transaction

import (
	"github.com/pdcgo/rogueswap/token_ledger"
)

// AddressPrefix is the namespace seed shared by every market derivation.
const AddressPrefix = "rogue_swapper"

// DeriveMarketAddress computes the address of the market for a
// (seller, item mint, payment mint) triple. The bump is fixed by the seller
// at creation and must be passed again on every later operation. The
// resulting value is also the vault authority.
func DeriveMarketAddress(seller string, itemMint string, paymentMint string, bump uint8) string {
	return token_ledger.DeriveAuthority(
		[]byte(AddressPrefix),
		[]byte(seller),
		[]byte(itemMint),
		[]byte(paymentMint),
		[]byte{bump},
	)
}

// FindMarketAddress derives the market address with the canonical bump for
// callers that do not need to pick their own.
func FindMarketAddress(seller string, itemMint string, paymentMint string) (string, uint8) {
	var bump uint8 = 255
	return DeriveMarketAddress(seller, itemMint, paymentMint, bump), bump
}

// marketAddressCandidates enumerates every address the triple can derive
// across the bump space. A triple owns one market no matter which bump the
// seller picked, so creation checks all of them.
func marketAddressCandidates(seller string, itemMint string, paymentMint string) []string {
	candidates := make([]string, 0, 256)
	for bump := 0; bump < 256; bump++ {
		candidates = append(
			candidates,
			DeriveMarketAddress(seller, itemMint, paymentMint, uint8(bump)),
		)
	}
	return candidates
}
