// Package secrets generates and encrypts OAuth2 client secrets.
//
// Secrets are random hex tokens sealed with AES-256-GCM and stored as a
// colon-delimited "ivHex:cipherHex:tagHex" envelope. The package is
// stateless: the encryption key is supplied on every call and never
// retained, and there is no implicit default key. All functions are
// safe for concurrent use.
//
//	envelope, err := secrets.Generate(encryptionKey, 32)
//	// envelope looks like "9f2a...:e01b...:77c4..."
//
//	plaintext, err := secrets.Decrypt(encryptionKey, envelope)
//	// plaintext is the 64-character hex secret that was sealed
package secrets
