package encrypter

// Encrypter provides symmetric encryption and secret hashing for
// service-to-service keys.
// Implementations are safe for concurrent use.
type Encrypter interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
	HashSecret(secret string) (string, error)
	CheckSecretHash(secret, hash string) bool
}

// AES key lengths accepted by New.
const (
	AESKeyLen128 = 16
	AESKeyLen192 = 24
	AESKeyLen256 = 32
)

// implEncrypter implements Encrypter with AES-GCM and bcrypt.
type implEncrypter struct {
	key string
}

// New creates a new Encrypter with the provided key (16, 24, or 32 bytes for AES).
func New(key string) Encrypter {
	return &implEncrypter{key: key}
}
