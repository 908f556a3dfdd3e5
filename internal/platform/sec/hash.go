// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// dummyPassword feeds [Hasher.VerifyDummy]. Its value is irrelevant.
const dummyPassword = "inkwell-timing-equalizer"

// Hasher produces and checks salted bcrypt digests.
//
// The digest embeds its own cost and salt, so callers store a single string.
// A Hasher is safe for concurrent use.
type Hasher struct {
	cost int

	dummyOnce sync.Once
	dummyHash []byte
}

// NewHasher returns a Hasher using the given bcrypt work factor.
func NewHasher(cost int) (*Hasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("sec: bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &Hasher{cost: cost}, nil
}

// Hash hashes a plain-text password. Every call uses a fresh random salt.
func (hasher *Hasher) Hash(plainTextPassword string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), hasher.cost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// Verify compares a plain-text password with an existing digest in constant time.
// A malformed digest simply does not match.
func (hasher *Hasher) Verify(plainTextPassword, existingHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPassword))
	return err == nil
}

// VerifyDummy spends the same work as a real [Hasher.Verify] and always fails.
//
// Login calls it when the account does not exist so response time does not
// reveal whether a username is registered.
func (hasher *Hasher) VerifyDummy(plainTextPassword string) bool {
	hasher.dummyOnce.Do(func() {
		hashed, err := bcrypt.GenerateFromPassword([]byte(dummyPassword), hasher.cost)
		if err == nil {
			hasher.dummyHash = hashed
		}
	})

	_ = bcrypt.CompareHashAndPassword(hasher.dummyHash, []byte(plainTextPassword))
	return false
}
