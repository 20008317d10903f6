package shop

import (
	"crypto/ed25519"
	"encoding/binary"

	"github.com/solshop/shop-client/pkg/solana"
)

var (
	shopStatePrefix = []byte("shop")
	itemPrefix      = []byte("item")
	historyPrefix   = []byte("history")
)

// GetShopStateAddress derives the address of the shop singleton account.
func GetShopStateAddress() (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		shopStatePrefix,
	)
}

type GetItemAddressArgs struct {
	Id uint64
}

// GetItemAddress derives the address of the item account for a catalog entry.
func GetItemAddress(args *GetItemAddressArgs) (ed25519.PublicKey, uint8, error) {
	idBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(idBytes, args.Id)

	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		itemPrefix,
		idBytes,
	)
}

type GetPurchaseHistoryAddressArgs struct {
	Buyer ed25519.PublicKey
}

// GetPurchaseHistoryAddress derives the address of a buyer's purchase history
// account. The account is created lazily by the program on the buyer's first
// purchase.
func GetPurchaseHistoryAddress(args *GetPurchaseHistoryAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		historyPrefix,
		args.Buyer,
	)
}
