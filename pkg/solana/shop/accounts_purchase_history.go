package shop

import (
	"bytes"
	"crypto/ed25519"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

// PurchaseHistoryAccountFixedSize is the serialized size of a purchase
// history account up to, and including, the purchases count prefix.
const PurchaseHistoryAccountFixedSize = (8 + // discriminator
	32 + // user
	4) // purchases length

var purchaseHistoryAccountDiscriminator = []byte{146, 182, 21, 190, 99, 157, 221, 104}

// PurchaseHistoryAccount is a buyer's append-only purchase log, keyed by the
// buyer's identity. The user key is immutable after creation and always
// matches the identity the account address was derived from.
type PurchaseHistoryAccount struct {
	User      ed25519.PublicKey
	Purchases []PurchaseRecord
}

func (obj *PurchaseHistoryAccount) Marshal() []byte {
	data := make([]byte, PurchaseHistoryAccountFixedSize+len(obj.Purchases)*PurchaseRecordSize)

	var offset int

	putDiscriminator(data, purchaseHistoryAccountDiscriminator, &offset)
	putKey(data, obj.User, &offset)
	putUint32(data, uint32(len(obj.Purchases)), &offset)
	for _, record := range obj.Purchases {
		putPurchaseRecord(data, record, &offset)
	}

	return data
}

// Unmarshal decodes a purchase history account. The declared record count is
// validated against the remaining buffer before any record is read; a count
// that overruns the buffer is a truncation failure, never a partial decode.
func (obj *PurchaseHistoryAccount) Unmarshal(data []byte) error {
	if len(data) < PurchaseHistoryAccountFixedSize {
		return ErrTruncatedAccountData
	}

	var offset int

	var discriminator []byte
	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator, purchaseHistoryAccountDiscriminator) {
		return ErrInvalidAccountData
	}

	getKey(data, &obj.User, &offset)

	var count uint32
	getUint32(data, &count, &offset)
	if uint64(len(data)) < uint64(offset)+uint64(count)*PurchaseRecordSize {
		return ErrTruncatedAccountData
	}

	obj.Purchases = make([]PurchaseRecord, count)
	for i := range obj.Purchases {
		getPurchaseRecord(data, &obj.Purchases[i], &offset)
	}

	return nil
}

func (obj *PurchaseHistoryAccount) String() string {
	purchases := make([]string, len(obj.Purchases))
	for i, record := range obj.Purchases {
		purchases[i] = record.String()
	}

	return fmt.Sprintf(
		"PurchaseHistoryAccount{user=%s,purchases=[%s]}",
		base58.Encode(obj.User),
		strings.Join(purchases, ","),
	)
}
