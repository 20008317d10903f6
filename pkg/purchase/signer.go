package purchase

import (
	"crypto/ed25519"
)

// Signer is an opaque signing capability over the buyer's identity key. The
// workflow never sees key material; implementations may hold a local key,
// front a hardware wallet, or proxy to a remote signing service, and may
// reject a message for any reason.
type Signer interface {
	Public() ed25519.PublicKey
	Sign(message []byte) ([]byte, error)
}

// LocalSigner signs with an in-memory private key.
type LocalSigner struct {
	key ed25519.PrivateKey
}

func NewLocalSigner(key ed25519.PrivateKey) *LocalSigner {
	return &LocalSigner{key: key}
}

func (s *LocalSigner) Public() ed25519.PublicKey {
	return s.key.Public().(ed25519.PublicKey)
}

func (s *LocalSigner) Sign(message []byte) ([]byte, error) {
	return ed25519.Sign(s.key, message), nil
}
