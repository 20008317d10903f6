package shop

import (
	"fmt"
	"time"
)

// PurchaseRecordSize is the serialized size of a single purchase record.
const PurchaseRecordSize = (8 + // item_id
	8) // timestamp

// PurchaseRecord is a single entry in a buyer's purchase history. Records are
// append-only; the on-chain program never reorders or removes them.
type PurchaseRecord struct {
	ItemId    uint64
	Timestamp int64
}

func (obj *PurchaseRecord) Time() time.Time {
	return time.Unix(obj.Timestamp, 0)
}

func (obj *PurchaseRecord) String() string {
	return fmt.Sprintf(
		"PurchaseRecord{item_id=%d,timestamp=%d}",
		obj.ItemId,
		obj.Timestamp,
	)
}

func putPurchaseRecord(dst []byte, v PurchaseRecord, offset *int) {
	putUint64(dst, v.ItemId, offset)
	putInt64(dst, v.Timestamp, offset)
}

func getPurchaseRecord(src []byte, dst *PurchaseRecord, offset *int) {
	getUint64(src, &dst.ItemId, offset)
	getInt64(src, &dst.Timestamp, offset)
}
