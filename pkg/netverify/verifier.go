// Package netverify confirms which Solana network an RPC connection is
// actually attached to, using the chain's genesis hash as its fingerprint.
//
// Endpoint URLs are configuration and configuration drifts; a client signing
// real transactions should not trust a URL's claim about the network behind
// it. The genesis hash is immutable per chain, so comparing fingerprints
// byte-for-byte is a cheap and conclusive identity check.
package netverify

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/solshop/shop-client/pkg/solana"
)

// ErrUnknownNetwork indicates the connection's genesis hash matched no
// catalog entry. The connection may be a local validator, a fork, or
// something hostile; callers should refuse to submit transactions over it.
var ErrUnknownNetwork = errors.New("netverify: genesis hash matches no known network")

// GenesisFetcher is the slice of the RPC client the verifier needs.
type GenesisFetcher interface {
	GetGenesisHash() (solana.Blockhash, error)
}

// Network identifies a chain by the provider that operates an endpoint for
// it. Distinct providers for the same chain share a genesis hash, so a probe
// against any one of them identifies the chain.
type Network struct {
	Provider string
	Name     string
	Endpoint string
}

// DefaultCatalog covers the public Solana clusters. Callers running against
// private clusters supply their own catalog.
var DefaultCatalog = []Network{
	{Provider: "solana-labs", Name: "mainnet-beta", Endpoint: string(solana.EnvironmentProd)},
	{Provider: "solana-labs", Name: "devnet", Endpoint: string(solana.EnvironmentDev)},
	{Provider: "solana-labs", Name: "testnet", Endpoint: string(solana.EnvironmentTest)},
	{Provider: "ankr", Name: "mainnet-beta", Endpoint: "https://rpc.ankr.com/solana"},
	{Provider: "publicnode", Name: "mainnet-beta", Endpoint: "https://solana-rpc.publicnode.com"},
}

// DialFunc opens a throwaway connection to an endpoint for probing.
type DialFunc func(endpoint string) GenesisFetcher

type Config struct {
	// Client is the live connection whose network identity is in question.
	Client GenesisFetcher

	// Target is the network the caller believes Client is attached to.
	Target Network

	// Catalog lists the networks to probe when the target doesn't match.
	// Defaults to DefaultCatalog.
	Catalog []Network

	// Dial overrides how probe connections are opened. Defaults to a plain
	// RPC client against the endpoint.
	Dial DialFunc
}

// Result is the outcome of a verification. When Ok is false, Actual names
// the network the connection was identified as, or is nil when no catalog
// entry matched.
type Result struct {
	Ok     bool
	Actual *Network
}

type Verifier struct {
	log  *logrus.Entry
	conf Config
}

func NewVerifier(conf Config) *Verifier {
	if conf.Catalog == nil {
		conf.Catalog = DefaultCatalog
	}
	if conf.Dial == nil {
		conf.Dial = func(endpoint string) GenesisFetcher {
			return solana.New(endpoint)
		}
	}

	return &Verifier{
		log:  logrus.StandardLogger().WithField("type", "netverify/verifier"),
		conf: conf,
	}
}

// Verify fetches the connection's genesis hash and compares it against the
// target network's. On a mismatch the catalog is probed in order and the
// first matching entry identifies the actual network. Nothing is cached;
// every call re-fetches every fingerprint it needs.
func (v *Verifier) Verify() (*Result, error) {
	live, err := v.conf.Client.GetGenesisHash()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get genesis hash from connection")
	}

	target, err := v.fingerprint(v.conf.Target)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get genesis hash for target %s", v.conf.Target.Name)
	}

	if bytes.Equal(live[:], target[:]) {
		return &Result{Ok: true}, nil
	}

	for i := range v.conf.Catalog {
		entry := v.conf.Catalog[i]

		probe, err := v.fingerprint(entry)
		if err != nil {
			// A single unreachable provider shouldn't sink the whole
			// identification, and other entries may still match.
			v.log.WithError(err).
				WithField("provider", entry.Provider).
				WithField("network", entry.Name).
				Warn("failed to probe catalog entry")
			continue
		}

		if bytes.Equal(live[:], probe[:]) {
			return &Result{Ok: false, Actual: &entry}, nil
		}
	}

	return &Result{Ok: false}, ErrUnknownNetwork
}

func (v *Verifier) fingerprint(n Network) (solana.Blockhash, error) {
	return v.conf.Dial(n.Endpoint).GetGenesisHash()
}
