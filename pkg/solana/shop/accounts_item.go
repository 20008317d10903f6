package shop

import (
	"bytes"
	"fmt"
)

const (
	// ItemAccountFixedSize is the serialized size of an item account up to,
	// and including, the metadata_uri length prefix.
	ItemAccountFixedSize = (8 + // discriminator
		8 + // id
		8 + // price
		4) // metadata_uri length

	// MaxMetadataUriSize bounds the metadata_uri so an item account fits in
	// the space the program allocates for it.
	MaxMetadataUriSize = 200
)

var itemAccountDiscriminator = []byte{92, 157, 163, 130, 72, 254, 86, 216}

// ItemAccount is a single catalog entry. Items are created by the admin and
// never mutated once written. The price is expressed in lamports, the
// smallest currency unit; balance comparisons must be made in this unit.
type ItemAccount struct {
	Id          uint64
	Price       uint64
	MetadataUri string
}

func (obj *ItemAccount) Marshal() []byte {
	data := make([]byte, ItemAccountFixedSize+len(obj.MetadataUri))

	var offset int

	putDiscriminator(data, itemAccountDiscriminator, &offset)
	putUint64(data, obj.Id, &offset)
	putUint64(data, obj.Price, &offset)
	putString(data, obj.MetadataUri, &offset)

	return data
}

// Unmarshal decodes an item account. Accounts are allocated with fixed space
// on-chain, so trailing zero padding beyond the declared string length is
// tolerated; a declared length that exceeds the buffer is not.
func (obj *ItemAccount) Unmarshal(data []byte) error {
	if len(data) < ItemAccountFixedSize {
		return ErrTruncatedAccountData
	}

	var offset int

	var discriminator []byte
	getDiscriminator(data, &discriminator, &offset)
	if !bytes.Equal(discriminator, itemAccountDiscriminator) {
		return ErrInvalidAccountData
	}

	getUint64(data, &obj.Id, &offset)
	getUint64(data, &obj.Price, &offset)
	if err := getString(data, &obj.MetadataUri, &offset); err != nil {
		return err
	}

	return nil
}

func (obj *ItemAccount) String() string {
	return fmt.Sprintf(
		"ItemAccount{id=%d,price=%d,metadata_uri=%s}",
		obj.Id,
		obj.Price,
		obj.MetadataUri,
	)
}
