package shop

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solshop/shop-client/pkg/solana"
)

func TestInitializeShopInstruction(t *testing.T) {
	keys := generateKeys(t, 2)

	instruction := NewInitializeShopInstruction(&InitializeShopInstructionAccounts{
		Admin: keys[0],
		Shop:  keys[1],
	})

	assert.Equal(t, PROGRAM_ID, instruction.Program)
	assert.Equal(t, initializeShopInstructionDiscriminator, instruction.Data)

	require.Len(t, instruction.Accounts, 3)
	assert.EqualValues(t, keys[0], instruction.Accounts[0].PublicKey)
	assert.True(t, instruction.Accounts[0].IsSigner)
	assert.True(t, instruction.Accounts[0].IsWritable)
	assert.EqualValues(t, keys[1], instruction.Accounts[1].PublicKey)
	assert.False(t, instruction.Accounts[1].IsSigner)
	assert.True(t, instruction.Accounts[1].IsWritable)
	assert.EqualValues(t, SYSTEM_PROGRAM_ID, instruction.Accounts[2].PublicKey)
	assert.False(t, instruction.Accounts[2].IsSigner)
	assert.False(t, instruction.Accounts[2].IsWritable)
}

func TestAddItemInstruction_RoundTrip(t *testing.T) {
	keys := generateKeys(t, 3)

	instruction := NewAddItemInstruction(
		&AddItemInstructionAccounts{
			Admin: keys[0],
			Shop:  keys[1],
			Item:  keys[2],
		},
		&AddItemInstructionArgs{
			Id:          42,
			Price:       1_000_000_000,
			MetadataUri: "ipfs://QmItemFortyTwo",
		},
	)

	var tx solana.Transaction
	require.NoError(t, tx.Unmarshal(solana.NewTransaction(keys[0], instruction).Marshal()))

	decompiled, err := DecompileAddItem(tx.Message, 0)
	require.NoError(t, err)
	assert.EqualValues(t, keys[0], decompiled.Accounts.Admin)
	assert.EqualValues(t, keys[1], decompiled.Accounts.Shop)
	assert.EqualValues(t, keys[2], decompiled.Accounts.Item)
	assert.EqualValues(t, 42, decompiled.Args.Id)
	assert.EqualValues(t, 1_000_000_000, decompiled.Args.Price)
	assert.Equal(t, "ipfs://QmItemFortyTwo", decompiled.Args.MetadataUri)
}

func TestDecompileAddItem_Invalid(t *testing.T) {
	keys := generateKeys(t, 3)

	instruction := NewAddItemInstruction(
		&AddItemInstructionAccounts{
			Admin: keys[0],
			Shop:  keys[1],
			Item:  keys[2],
		},
		&AddItemInstructionArgs{
			Id:          1,
			Price:       5,
			MetadataUri: "ipfs://QmItemOne",
		},
	)

	_, err := DecompileAddItem(solana.NewTransaction(keys[0], instruction).Message, 1)
	assert.Error(t, err)

	truncated := instruction
	truncated.Data = truncated.Data[:len(addItemInstructionDiscriminator)+8]
	_, err = DecompileAddItem(solana.NewTransaction(keys[0], truncated).Message, 0)
	assert.Equal(t, ErrInvalidInstructionData, err)

	wrongOpcode := NewFirstPurchaseInstruction(&PurchaseInstructionAccounts{
		Buyer:   keys[0],
		Shop:    keys[1],
		Item:    keys[2],
		Admin:   keys[0],
		History: keys[1],
	})
	_, err = DecompileAddItem(solana.NewTransaction(keys[0], wrongOpcode).Message, 0)
	assert.Equal(t, solana.ErrIncorrectInstruction, err)
}

func TestPurchaseInstructions(t *testing.T) {
	keys := generateKeys(t, 5)
	accounts := &PurchaseInstructionAccounts{
		Buyer:   keys[0],
		Shop:    keys[1],
		Item:    keys[2],
		Admin:   keys[3],
		History: keys[4],
	}

	for _, tc := range []struct {
		instruction   solana.Instruction
		discriminator []byte
	}{
		{NewFirstPurchaseInstruction(accounts), firstPurchaseInstructionDiscriminator},
		{NewSubsequentPurchaseInstruction(accounts), subsequentPurchaseInstructionDiscriminator},
	} {
		assert.Equal(t, PROGRAM_ID, tc.instruction.Program)
		assert.Equal(t, tc.discriminator, tc.instruction.Data)

		require.Len(t, tc.instruction.Accounts, 6)

		// buyer is the sole signer
		assert.EqualValues(t, keys[0], tc.instruction.Accounts[0].PublicKey)
		assert.True(t, tc.instruction.Accounts[0].IsSigner)
		assert.True(t, tc.instruction.Accounts[0].IsWritable)

		// shop and item are read-only
		assert.EqualValues(t, keys[1], tc.instruction.Accounts[1].PublicKey)
		assert.False(t, tc.instruction.Accounts[1].IsWritable)
		assert.EqualValues(t, keys[2], tc.instruction.Accounts[2].PublicKey)
		assert.False(t, tc.instruction.Accounts[2].IsWritable)

		// admin and history are written
		assert.EqualValues(t, keys[3], tc.instruction.Accounts[3].PublicKey)
		assert.False(t, tc.instruction.Accounts[3].IsSigner)
		assert.True(t, tc.instruction.Accounts[3].IsWritable)
		assert.EqualValues(t, keys[4], tc.instruction.Accounts[4].PublicKey)
		assert.True(t, tc.instruction.Accounts[4].IsWritable)

		assert.EqualValues(t, SYSTEM_PROGRAM_ID, tc.instruction.Accounts[5].PublicKey)
	}
}

func TestDecompilePurchase_RoundTrip(t *testing.T) {
	keys := generateKeys(t, 5)
	accounts := &PurchaseInstructionAccounts{
		Buyer:   keys[0],
		Shop:    keys[1],
		Item:    keys[2],
		Admin:   keys[3],
		History: keys[4],
	}

	var tx solana.Transaction
	require.NoError(t, tx.Unmarshal(solana.NewTransaction(keys[0], NewFirstPurchaseInstruction(accounts)).Marshal()))

	decompiled, err := DecompileFirstPurchase(tx.Message, 0)
	require.NoError(t, err)
	assert.Equal(t, *accounts, decompiled.Accounts)

	// opcodes are not interchangeable
	_, err = DecompileSubsequentPurchase(tx.Message, 0)
	assert.Equal(t, solana.ErrIncorrectInstruction, err)

	require.NoError(t, tx.Unmarshal(solana.NewTransaction(keys[0], NewSubsequentPurchaseInstruction(accounts)).Marshal()))

	subsequent, err := DecompileSubsequentPurchase(tx.Message, 0)
	require.NoError(t, err)
	assert.Equal(t, *accounts, subsequent.Accounts)

	_, err = DecompileFirstPurchase(tx.Message, 0)
	assert.Equal(t, solana.ErrIncorrectInstruction, err)
}

func generateKeys(t *testing.T, n int) []ed25519.PublicKey {
	keys := make([]ed25519.PublicKey, n)
	for i := range keys {
		pub, _, err := ed25519.GenerateKey(rand.Reader)
		require.NoError(t, err)
		keys[i] = pub
	}
	return keys
}
