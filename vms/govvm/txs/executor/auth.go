// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package executor

import (
	"fmt"

	"github.com/luxfi/cache"
	"github.com/luxfi/cache/lru"
	"github.com/luxfi/crypto/hash"
	"github.com/luxfi/crypto/secp256k1"
	"github.com/luxfi/ids"
	"github.com/luxfi/math/set"
	"github.com/luxfi/govvm/vms/govvm/txs"
)

// SignerRecoverer recovers the addresses that signed a transaction. Results
// are cached by (message, signature) so that a signature seen again, for
// example when a transaction is resubmitted, is not recovered twice.
type SignerRecoverer struct {
	cache cache.Cacher[ids.ID, ids.ShortID]
}

func NewSignerRecoverer(cacheSize int) *SignerRecoverer {
	return &SignerRecoverer{
		cache: lru.NewCache[ids.ID, ids.ShortID](cacheSize),
	}
}

// Signers returns the set of addresses recovered from the credentials of
// [tx] over the hash of its unsigned bytes.
func (r *SignerRecoverer) Signers(tx *txs.Tx) (set.Set[ids.ShortID], error) {
	unsignedHash := hash.ComputeHash256(tx.UnsignedBytes())
	signers := set.NewSet[ids.ShortID](len(tx.Creds))
	for i, cred := range tx.Creds {
		addr, err := r.recover(unsignedHash, cred[:])
		if err != nil {
			return nil, fmt.Errorf("%w: credential %d: %w", ErrUnauthorized, i, err)
		}
		signers.Add(addr)
	}
	return signers, nil
}

func (r *SignerRecoverer) recover(msgHash []byte, sig []byte) (ids.ShortID, error) {
	cacheBytes := make([]byte, 0, len(msgHash)+len(sig))
	cacheBytes = append(cacheBytes, msgHash...)
	cacheBytes = append(cacheBytes, sig...)
	cacheKey := ids.ID(hash.ComputeHash256Array(cacheBytes))
	if addr, ok := r.cache.Get(cacheKey); ok {
		return addr, nil
	}

	pk, err := secp256k1.RecoverPublicKeyFromHash(msgHash, sig)
	if err != nil {
		return ids.ShortEmpty, err
	}
	addr := pk.Address()
	r.cache.Put(cacheKey, addr)
	return addr, nil
}

// requireSigner verifies that [account] is flagged as a signer and that its
// owner produced one of the transaction's credentials.
func requireSigner(signers set.Set[ids.ShortID], account txs.AccountMeta) error {
	if !account.IsSigner {
		return fmt.Errorf("%w: %s is not flagged as a signer", ErrUnauthorized, account.Key)
	}
	if !signers.Contains(account.Key) {
		return fmt.Errorf("%w: missing signature from %s", ErrUnauthorized, account.Key)
	}
	return nil
}

// requireAdmin verifies that [account] is the signing admin of a governance
// root administered by [admin].
func requireAdmin(signers set.Set[ids.ShortID], account txs.AccountMeta, admin ids.ShortID) error {
	if err := requireSigner(signers, account); err != nil {
		return err
	}
	if account.Key != admin {
		return fmt.Errorf("%w: %s is not the admin", ErrUnauthorized, account.Key)
	}
	return nil
}

func requireWritable(accounts ...txs.AccountMeta) error {
	for _, account := range accounts {
		if !account.IsWritable {
			return fmt.Errorf("%w: %s is not writable", ErrInvalidAccount, account.Key)
		}
	}
	return nil
}

func requireKey(account txs.AccountMeta, expected ids.ShortID) error {
	if account.Key != expected {
		return fmt.Errorf("%w: expected %s but got %s", ErrInvalidAccount, expected, account.Key)
	}
	return nil
}
