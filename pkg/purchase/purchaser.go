// Package purchase drives the client side of buying a catalog item: price
// and balance checks, opcode selection based on the buyer's purchase history,
// transaction assembly and signing, submission, and confirmation.
package purchase

import (
	"context"
	"crypto/ed25519"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/solshop/shop-client/pkg/solana"
	compute_budget "github.com/solshop/shop-client/pkg/solana/computebudget"
	"github.com/solshop/shop-client/pkg/solana/shop"
)

var (
	// ErrItemNotFound indicates no item account exists for the requested id.
	ErrItemNotFound = errors.New("item not found")

	// ErrShopNotFound indicates the shop singleton hasn't been initialized
	// on the connected network.
	ErrShopNotFound = errors.New("shop not initialized")

	// ErrInsufficientFunds indicates the buyer's balance is below the item
	// price. Raised before anything is signed or submitted.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrConfirmationTimeout indicates the transaction was submitted but
	// didn't reach the configured commitment before polling gave up. The
	// transaction may still land; callers should reconcile against
	// GetHistory before retrying.
	ErrConfirmationTimeout = errors.New("transaction confirmation timed out")
)

const defaultComputeUnitLimit = 400_000

type Config struct {
	Client solana.Client
	Signer Signer

	// ComputeUnitLimit caps the compute budget requested for each purchase
	// transaction. Defaults to defaultComputeUnitLimit.
	ComputeUnitLimit uint32

	// Commitment is the confirmation level purchases wait for. Defaults to
	// confirmed.
	Commitment solana.Commitment
}

// Purchaser executes purchases for a single buyer identity.
type Purchaser struct {
	log  *logrus.Entry
	conf Config
}

func NewPurchaser(conf Config) *Purchaser {
	if conf.ComputeUnitLimit == 0 {
		conf.ComputeUnitLimit = defaultComputeUnitLimit
	}
	if conf.Commitment == (solana.Commitment{}) {
		conf.Commitment = solana.CommitmentConfirmed
	}

	return &Purchaser{
		log:  logrus.StandardLogger().WithField("type", "purchase/purchaser"),
		conf: conf,
	}
}

// Purchase buys the item with the given id and waits for confirmation. The
// first purchase for a buyer uses a distinct opcode that allocates the
// buyer's history account; existence is re-probed on every call rather than
// remembered, since the account may appear or vanish between calls.
//
// Nothing is retried automatically. On ErrConfirmationTimeout the returned
// signature is valid and the transaction may still land; any other error
// before submission guarantees nothing reached the network.
func (p *Purchaser) Purchase(ctx context.Context, itemId uint64) (solana.Signature, error) {
	log := p.log.WithField("method", "Purchase").WithField("item", itemId)

	buyer := p.conf.Signer.Public()

	item, itemAddress, err := p.getItem(itemId)
	if err != nil {
		return solana.Signature{}, err
	}

	if err := ctx.Err(); err != nil {
		return solana.Signature{}, err
	}

	balance, err := p.conf.Client.GetBalance(buyer)
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to get buyer balance")
	}
	if balance < item.Price {
		return solana.Signature{}, ErrInsufficientFunds
	}

	if err := ctx.Err(); err != nil {
		return solana.Signature{}, err
	}

	historyAddress, _, err := shop.GetPurchaseHistoryAddress(&shop.GetPurchaseHistoryAddressArgs{
		Buyer: buyer,
	})
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to derive history address")
	}

	hasHistory, err := p.accountExists(historyAddress)
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to probe history account")
	}

	shopAccount, shopAddress, err := p.getShop()
	if err != nil {
		return solana.Signature{}, err
	}

	accounts := &shop.PurchaseInstructionAccounts{
		Buyer:   buyer,
		Shop:    shopAddress,
		Item:    itemAddress,
		Admin:   shopAccount.Admin,
		History: historyAddress,
	}

	var purchaseInstruction solana.Instruction
	if hasHistory {
		purchaseInstruction = shop.NewSubsequentPurchaseInstruction(accounts)
	} else {
		purchaseInstruction = shop.NewFirstPurchaseInstruction(accounts)
	}

	txn := solana.NewTransaction(
		buyer,
		compute_budget.SetComputeUnitLimit(p.conf.ComputeUnitLimit),
		purchaseInstruction,
	)

	blockhash, err := p.conf.Client.GetLatestBlockhash()
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to get latest blockhash")
	}
	txn.SetBlockhash(blockhash)

	if err := ctx.Err(); err != nil {
		return solana.Signature{}, err
	}

	signature, err := p.conf.Signer.Sign(txn.Message.Marshal())
	if err != nil {
		// Signer rejections are surfaced verbatim so callers can
		// distinguish policy denials from transport failures.
		return solana.Signature{}, err
	}
	if err := txn.AddSignature(buyer, signature); err != nil {
		return solana.Signature{}, errors.Wrap(err, "signer produced an invalid signature")
	}

	if err := ctx.Err(); err != nil {
		return solana.Signature{}, err
	}

	sig, err := p.conf.Client.SubmitTransaction(txn, p.conf.Commitment)
	if err != nil {
		return sig, errors.Wrap(err, "failed to submit transaction")
	}

	log.WithField("signature", sig.ToBase58()).Debug("transaction submitted")

	status, err := p.conf.Client.GetSignatureStatus(sig, p.conf.Commitment)
	if err != nil {
		return sig, ErrConfirmationTimeout
	}
	if status.ErrorResult != nil {
		return sig, status.ErrorResult
	}

	return sig, nil
}

// GetHistory fetches and decodes the buyer's purchase history, the on-chain
// source of truth for reconciling client state after confirmed (or timed
// out) purchases. Returns solana.ErrNoAccountInfo when the buyer has never
// purchased anything.
func (p *Purchaser) GetHistory(ctx context.Context) (*shop.PurchaseHistoryAccount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	address, _, err := shop.GetPurchaseHistoryAddress(&shop.GetPurchaseHistoryAddressArgs{
		Buyer: p.conf.Signer.Public(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive history address")
	}

	info, err := p.conf.Client.GetAccountInfo(address, p.conf.Commitment)
	if err != nil {
		return nil, err
	}

	var history shop.PurchaseHistoryAccount
	if err := history.Unmarshal(info.Data); err != nil {
		return nil, errors.Wrap(err, "invalid history account data")
	}

	return &history, nil
}

func (p *Purchaser) getItem(itemId uint64) (*shop.ItemAccount, ed25519.PublicKey, error) {
	address, _, err := shop.GetItemAddress(&shop.GetItemAddressArgs{
		Id: itemId,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to derive item address")
	}

	info, err := p.conf.Client.GetAccountInfo(address, p.conf.Commitment)
	if err == solana.ErrNoAccountInfo {
		return nil, nil, ErrItemNotFound
	} else if err != nil {
		return nil, nil, errors.Wrap(err, "failed to get item account")
	}

	var item shop.ItemAccount
	if err := item.Unmarshal(info.Data); err != nil {
		return nil, nil, errors.Wrap(err, "invalid item account data")
	}
	if item.Id != itemId {
		return nil, nil, errors.Errorf("item account id mismatch: %d", item.Id)
	}

	return &item, address, nil
}

func (p *Purchaser) getShop() (*shop.ShopAccount, ed25519.PublicKey, error) {
	address, _, err := shop.GetShopStateAddress()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to derive shop address")
	}

	info, err := p.conf.Client.GetAccountInfo(address, p.conf.Commitment)
	if err == solana.ErrNoAccountInfo {
		return nil, nil, ErrShopNotFound
	} else if err != nil {
		return nil, nil, errors.Wrap(err, "failed to get shop account")
	}

	var shopAccount shop.ShopAccount
	if err := shopAccount.Unmarshal(info.Data); err != nil {
		return nil, nil, errors.Wrap(err, "invalid shop account data")
	}

	return &shopAccount, address, nil
}

func (p *Purchaser) accountExists(address ed25519.PublicKey) (bool, error) {
	_, err := p.conf.Client.GetAccountInfo(address, p.conf.Commitment)
	if err == solana.ErrNoAccountInfo {
		return false, nil
	} else if err != nil {
		return false, err
	}

	return true, nil
}
