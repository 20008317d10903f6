package shop

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/solshop/shop-client/pkg/solana"
)

var addItemInstructionDiscriminator = []byte{
	225, 38, 79, 147, 116, 142, 147, 57,
}

type AddItemInstructionArgs struct {
	Id          uint64
	Price       uint64
	MetadataUri string
}

type AddItemInstructionAccounts struct {
	Admin ed25519.PublicKey
	Shop  ed25519.PublicKey
	Item  ed25519.PublicKey
}

// NewAddItemInstruction adds a catalog entry. Admin only; the id is caller
// chosen and must not collide with an existing item.
func NewAddItemInstruction(
	accounts *AddItemInstructionAccounts,
	args *AddItemInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte,
		len(addItemInstructionDiscriminator)+
			8+ // id
			8+ // price
			4+len(args.MetadataUri)) // metadata_uri

	putDiscriminator(data, addItemInstructionDiscriminator, &offset)
	putUint64(data, args.Id, &offset)
	putUint64(data, args.Price, &offset)
	putString(data, args.MetadataUri, &offset)

	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		solana.NewAccountMeta(accounts.Admin, true),
		solana.NewAccountMeta(accounts.Shop, false),
		solana.NewAccountMeta(accounts.Item, false),
		solana.NewReadonlyAccountMeta(SYSTEM_PROGRAM_ID, false),
	)
}

type DecompiledAddItem struct {
	Accounts AddItemInstructionAccounts
	Args     AddItemInstructionArgs
}

func DecompileAddItem(m solana.Message, index int) (*DecompiledAddItem, error) {
	if index >= len(m.Instructions) {
		return nil, errors.Errorf("instruction doesn't exist at %d", index)
	}

	i := m.Instructions[index]

	if !bytes.Equal(m.Accounts[i.ProgramIndex], PROGRAM_ID) {
		return nil, solana.ErrIncorrectProgram
	}
	if !bytes.HasPrefix(i.Data, addItemInstructionDiscriminator) {
		return nil, solana.ErrIncorrectInstruction
	}

	if len(i.Accounts) != 4 {
		return nil, errors.Errorf("invalid number of accounts: %d", len(i.Accounts))
	}
	if len(i.Data) < len(addItemInstructionDiscriminator)+8+8+4 {
		return nil, ErrInvalidInstructionData
	}

	v := &DecompiledAddItem{
		Accounts: AddItemInstructionAccounts{
			Admin: m.Accounts[i.Accounts[0]],
			Shop:  m.Accounts[i.Accounts[1]],
			Item:  m.Accounts[i.Accounts[2]],
		},
	}

	offset := len(addItemInstructionDiscriminator)
	getUint64(i.Data, &v.Args.Id, &offset)
	getUint64(i.Data, &v.Args.Price, &offset)
	if err := getString(i.Data, &v.Args.MetadataUri, &offset); err != nil {
		return nil, ErrInvalidInstructionData
	}

	return v, nil
}
