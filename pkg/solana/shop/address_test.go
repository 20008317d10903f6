package shop

import (
	"testing"

	"github.com/mr-tron/base58/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetShopStateAddress(t *testing.T) {
	address, bump, err := GetShopStateAddress()
	require.NoError(t, err)
	assert.Equal(t, "Dc4pwVSzmJjSyjn3ETCpMSfZ8wRMJbPp62AxrhX8WzTu", base58.Encode(address))
	assert.EqualValues(t, 253, bump)
}

func TestGetItemAddress(t *testing.T) {
	address, bump, err := GetItemAddress(&GetItemAddressArgs{
		Id: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "8qs8MEgaUcFRNVFhGw4NTXo4ZofhGg5YWJ7HN3KNcu39", base58.Encode(address))
	assert.EqualValues(t, 255, bump)

	address, bump, err = GetItemAddress(&GetItemAddressArgs{
		Id: 42,
	})
	require.NoError(t, err)
	assert.Equal(t, "8SjN44soKkgBk1WcsmVf1MhNBR37F64VaMe87D6jkYY8", base58.Encode(address))
	assert.EqualValues(t, 254, bump)
}

func TestGetPurchaseHistoryAddress(t *testing.T) {
	address, bump, err := GetPurchaseHistoryAddress(&GetPurchaseHistoryAddressArgs{
		Buyer: mustBase58Decode("codeHy87wGD5oMRLG75qKqsSi1vWE3oxNyYmXo5F9YR"),
	})
	require.NoError(t, err)
	assert.Equal(t, "CDVD24pndDRXVvxciQqM74CMgtVf7TWrnHphWthbHNR", base58.Encode(address))
	assert.EqualValues(t, 255, bump)
}

func TestGetItemAddress_DistinctIds(t *testing.T) {
	seen := make(map[string]struct{})
	for id := uint64(1); id <= 16; id++ {
		address, _, err := GetItemAddress(&GetItemAddressArgs{Id: id})
		require.NoError(t, err)

		encoded := base58.Encode(address)
		_, ok := seen[encoded]
		require.False(t, ok)
		seen[encoded] = struct{}{}
	}
}
