package shop

import (
	"crypto/ed25519"

	"github.com/solshop/shop-client/pkg/solana"
)

var initializeShopInstructionDiscriminator = []byte{
	76, 158, 246, 22, 47, 236, 107, 186,
}

type InitializeShopInstructionAccounts struct {
	Admin ed25519.PublicKey
	Shop  ed25519.PublicKey
}

// NewInitializeShopInstruction creates the shop singleton with the signing
// admin as its immutable authority. Invoked once per deployment.
func NewInitializeShopInstruction(
	accounts *InitializeShopInstructionAccounts,
) solana.Instruction {
	var offset int

	data := make([]byte, len(initializeShopInstructionDiscriminator))
	putDiscriminator(data, initializeShopInstructionDiscriminator, &offset)

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		solana.NewAccountMeta(accounts.Admin, true),
		solana.NewAccountMeta(accounts.Shop, false),
		solana.NewReadonlyAccountMeta(SYSTEM_PROGRAM_ID, false),
	)
}
