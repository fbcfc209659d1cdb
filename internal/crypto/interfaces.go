package crypto

// Sealer protects small secrets at rest with a key derived from a
// passphrase. The passphrase never leaves the process.
//
// Layout of a sealed blob before base64 encoding:
//
//	salt (16 bytes) || nonce (12 bytes) || AES-256-GCM ciphertext
type Sealer interface {
	// Seal encrypts plaintext under a fresh salt and nonce and returns the
	// base64 encoded blob.
	Seal(plaintext []byte) (string, error)

	// Open reverses Seal. It fails with [ErrOpenFailed] when the passphrase
	// is wrong or the blob was tampered with.
	Open(sealed string) ([]byte, error)
}
