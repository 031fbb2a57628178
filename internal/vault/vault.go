// Package vault encrypts and decrypts individual amounts before they
// reach the record store.
//
// A process uses exactly one key. When no durable key is configured a
// random one is generated for the lifetime of the process; everything
// written under such an ephemeral key is unreadable after a restart,
// which is why consuming layers must keep warning the user while
// UsesEphemeralKey is true.
package vault

import (
	"os"
	"strings"
	"sync"

	"github.com/fernet/fernet-go"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// KeyEnv is the environment variable holding the durable key, encoded
// in the urlsafe-base64 format produced by Key.
const KeyEnv = "ENCRYPTION_KEY"

// Vault holds the single key used for all amounts in this process.
type Vault struct {
	key       *fernet.Key
	ephemeral bool
}

var (
	processVault *Vault
	once         sync.Once
)

// Default returns the process-wide vault, reading KeyEnv exactly once
// on first use. The ephemeral flag never resets without a restart.
func Default() *Vault {
	once.Do(func() {
		processVault = New(os.Getenv(KeyEnv))
	})
	return processVault
}

// New builds a vault from an encoded key. An empty or undecodable key
// switches the vault to a generated ephemeral key instead of failing.
func New(encodedKey string) *Vault {
	if encodedKey == "" {
		log.Warn().Msg("no encryption key configured, generating an ephemeral key; encrypted data will not survive a restart")
		return &Vault{key: generateKey(), ephemeral: true}
	}

	key, err := fernet.DecodeKey(encodedKey)
	if err != nil {
		log.Error().Err(err).Msg("configured encryption key is invalid, generating an ephemeral key")
		return &Vault{key: generateKey(), ephemeral: true}
	}

	return &Vault{key: key}
}

// Key returns the encoded form of the active key. For an ephemeral
// vault this is the only chance to persist the key for later loads.
func (v *Vault) Key() string {
	return v.key.Encode()
}

// UsesEphemeralKey reports whether the vault runs on a generated key.
func (v *Vault) UsesEphemeralKey() bool {
	return v.ephemeral
}

// EncryptAmount encodes the amount as text and encrypts it into an
// opaque printable token. It never fails the caller: if encryption
// errors, the plain text representation is stored instead, which
// DecryptAmount accepts through its plain-parse tier.
func (v *Vault) EncryptAmount(amount decimal.Decimal) string {
	token, err := fernet.EncryptAndSign([]byte(amount.String()), v.key)
	if err != nil {
		encryptFallbacks.Inc()
		log.Error().Err(err).Msg("encrypting amount failed, storing the plain value")
		return amount.String()
	}
	return string(token)
}

// DecryptAmount resolves a stored token back into an amount through
// three tiers: authenticated decryption, then parsing the raw token as
// a plain decimal, then zero. Each tier is counted so silent data loss
// stays visible in diagnostics; no tier surfaces an error to the
// caller.
func (v *Vault) DecryptAmount(token string) decimal.Decimal {
	if msg := fernet.VerifyAndDecrypt([]byte(token), 0, []*fernet.Key{v.key}); msg != nil {
		if amount, err := decimal.NewFromString(string(msg)); err == nil {
			return amount
		}
	}

	if amount, err := decimal.NewFromString(strings.TrimSpace(token)); err == nil {
		plainReads.Inc()
		log.Debug().Msg("stored amount was not encrypted, parsed as a plain value")
		return amount
	}

	failedReads.Inc()
	log.Error().Str("token", truncateToken(token)).Msg("stored amount could not be decrypted or parsed, reading it as zero")
	return decimal.Decimal{}
}

func generateKey() *fernet.Key {
	var key fernet.Key
	if err := key.Generate(); err != nil {
		// Only fails when the system's entropy source is broken, at
		// which point there is nothing sensible left to do.
		log.Fatal().Err(err).Msg("could not generate an encryption key")
	}
	return &key
}

// truncateToken keeps log lines readable. The token is ciphertext, so
// logging a prefix of it leaks nothing useful.
func truncateToken(token string) string {
	const max = 16
	if len(token) <= max {
		return token
	}
	return token[:max] + "..."
}
