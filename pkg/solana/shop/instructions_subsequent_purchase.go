package shop

import (
	"github.com/solshop/shop-client/pkg/solana"
)

var subsequentPurchaseInstructionDiscriminator = []byte{
	223, 75, 242, 206, 210, 168, 187, 166,
}

// NewSubsequentPurchaseInstruction purchases an item for a buyer whose
// purchase history account already exists. The program appends to the history
// rather than allocating it.
func NewSubsequentPurchaseInstruction(
	accounts *PurchaseInstructionAccounts,
) solana.Instruction {
	var offset int

	data := make([]byte, len(subsequentPurchaseInstructionDiscriminator))
	putDiscriminator(data, subsequentPurchaseInstructionDiscriminator, &offset)

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		solana.NewAccountMeta(accounts.Buyer, true),
		solana.NewReadonlyAccountMeta(accounts.Shop, false),
		solana.NewReadonlyAccountMeta(accounts.Item, false),
		solana.NewAccountMeta(accounts.Admin, false),
		solana.NewAccountMeta(accounts.History, false),
		solana.NewReadonlyAccountMeta(SYSTEM_PROGRAM_ID, false),
	)
}

type DecompiledSubsequentPurchase struct {
	Accounts PurchaseInstructionAccounts
}

func DecompileSubsequentPurchase(m solana.Message, index int) (*DecompiledSubsequentPurchase, error) {
	accounts, err := decompilePurchase(m, index, subsequentPurchaseInstructionDiscriminator)
	if err != nil {
		return nil, err
	}

	return &DecompiledSubsequentPurchase{Accounts: *accounts}, nil
}
