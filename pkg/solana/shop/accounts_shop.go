package shop

import (
	"bytes"
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"
)

// ShopAccountSize is the full allocated size of the shop singleton account.
const ShopAccountSize = (8 + // discriminator
	32 + // admin
	8) // item_count

var shopAccountDiscriminator = []byte{57, 31, 123, 216, 254, 72, 11, 77}

// ShopAccount is the shop singleton. It is created once by the admin and the
// admin key is immutable thereafter.
type ShopAccount struct {
	Admin     ed25519.PublicKey
	ItemCount uint64
}

func (obj *ShopAccount) Marshal() []byte {
	data := make([]byte, ShopAccountSize)

	var offset int

	putDiscriminator(data, shopAccountDiscriminator, &offset)
	putKey(data, obj.Admin, &offset)
	putUint64(data, obj.ItemCount, &offset)

	return data
}

func (obj *ShopAccount) Unmarshal(data []byte) error {
	if len(data) < ShopAccountSize {
		return ErrTruncatedAccountData
	}

	var offset int

	var discriminator []byte
	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator, shopAccountDiscriminator) {
		return ErrInvalidAccountData
	}

	getKey(data, &obj.Admin, &offset)
	getUint64(data, &obj.ItemCount, &offset)

	return nil
}

func (obj *ShopAccount) String() string {
	return fmt.Sprintf(
		"ShopAccount{admin=%s,item_count=%d}",
		base58.Encode(obj.Admin),
		obj.ItemCount,
	)
}
