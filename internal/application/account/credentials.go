package account

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

const (
	passwordLength  = 10
	passwordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%&*"

	dummyEmailDomain = "dummy.email"
)

// generatePassword draws a random password for the auth account backing an
// imported user. The account owner is expected to reset it; it only has to
// be unguessable.
func generatePassword() (string, error) {
	var b strings.Builder
	charsetSize := big.NewInt(int64(len(passwordCharset)))
	for i := 0; i < passwordLength; i++ {
		n, err := rand.Int(rand.Reader, charsetSize)
		if err != nil {
			return "", fmt.Errorf("generate password: %w", err)
		}
		b.WriteByte(passwordCharset[n.Int64()])
	}
	return b.String(), nil
}

// synthesizeEmail builds a unique placeholder login for a user that has no
// real address. The auth service requires every account to have a distinct
// email, even when the business only knows the person by name and phone.
func synthesizeEmail() string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("user_%s@%s", token, dummyEmailDomain)
}
