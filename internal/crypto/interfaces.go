package crypto

// PasswordHasher derives and verifies memory-hard hashes of user secrets.
//
// It is used for both account passwords and one-time password reset
// secrets. Hashes are self-describing PHC strings:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
//
// so the parameters used at hashing time travel with the hash and
// verification keeps working after the defaults change.
type PasswordHasher interface {
	// Hash derives a PHC-encoded Argon2id hash of secret with a fresh
	// random 16-byte salt.
	Hash(secret string) (string, error)

	// Verify reports whether secret matches encodedHash. A malformed hash
	// yields [ErrInvalidHash]; a well-formed hash that does not match
	// yields (false, nil).
	Verify(secret, encodedHash string) (bool, error)

	// GenerateSecret returns a hex-encoded random secret of 32 bytes,
	// suitable for password reset links.
	GenerateSecret() (string, error)
}
