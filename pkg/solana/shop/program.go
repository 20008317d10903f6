package shop

import (
	"crypto/ed25519"

	"github.com/pkg/errors"
)

var (
	ErrInvalidAccountData     = errors.New("unexpected account data")
	ErrTruncatedAccountData   = errors.New("truncated account data")
	ErrInvalidUtf8            = errors.New("invalid utf-8 string data")
	ErrInvalidInstructionData = errors.New("unexpected instruction data")
)

var (
	PROGRAM_ADDRESS = mustBase58Decode("5F5gHfVH2p3YYgSuR42Bt2QBY7a6VmBV1CLXQwDmFBrF")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)
)

var (
	SYSTEM_PROGRAM_ID = ed25519.PublicKey(mustBase58Decode("11111111111111111111111111111111"))
)
