package shop

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/solshop/shop-client/pkg/solana"
)

var firstPurchaseInstructionDiscriminator = []byte{
	109, 212, 45, 217, 228, 42, 205, 63,
}

// PurchaseInstructionAccounts is the account shape shared by the first and
// subsequent purchase instructions. The order is part of the wire contract
// with the program and must not change.
type PurchaseInstructionAccounts struct {
	Buyer   ed25519.PublicKey
	Shop    ed25519.PublicKey
	Item    ed25519.PublicKey
	Admin   ed25519.PublicKey
	History ed25519.PublicKey
}

// NewFirstPurchaseInstruction purchases an item for a buyer with no existing
// purchase history account. The program allocates and initializes the history
// account as part of the purchase, which is why this is a distinct opcode from
// a subsequent purchase.
func NewFirstPurchaseInstruction(
	accounts *PurchaseInstructionAccounts,
) solana.Instruction {
	var offset int

	data := make([]byte, len(firstPurchaseInstructionDiscriminator))
	putDiscriminator(data, firstPurchaseInstructionDiscriminator, &offset)

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

type DecompiledFirstPurchase struct {
	Accounts PurchaseInstructionAccounts
}

func DecompileFirstPurchase(m solana.Message, index int) (*DecompiledFirstPurchase, error) {
	accounts, err := decompilePurchase(m, index, firstPurchaseInstructionDiscriminator)
	if err != nil {
		return nil, err
	}

	return &DecompiledFirstPurchase{Accounts: *accounts}, nil
}

func decompilePurchase(m solana.Message, index int, discriminator []byte) (*PurchaseInstructionAccounts, error) {
	if index >= len(m.Instructions) {
		return nil, errors.Errorf("instruction doesn't exist at %d", index)
	}

	i := m.Instructions[index]

	if !bytes.Equal(m.Accounts[i.ProgramIndex], PROGRAM_ID) {
		return nil, solana.ErrIncorrectProgram
	}
	if !bytes.Equal(i.Data, discriminator) {
		return nil, solana.ErrIncorrectInstruction
	}

	if len(i.Accounts) != 6 {
		return nil, errors.Errorf("invalid number of accounts: %d", len(i.Accounts))
	}

	return &PurchaseInstructionAccounts{
		Buyer:   m.Accounts[i.Accounts[0]],
		Shop:    m.Accounts[i.Accounts[1]],
		Item:    m.Accounts[i.Accounts[2]],
		Admin:   m.Accounts[i.Accounts[3]],
		History: m.Accounts[i.Accounts[4]],
	}, nil
}
