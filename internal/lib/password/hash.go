// Package password реализует хэширование и проверку паролей пользователей.
//
// Hash строит детерминированный SHA-256 дайджест — формат, в котором пароли
// хранились во встроенном локальном хранилище витрины, поэтому он сохранён
// бит-в-бит ради совместимости с уже существующими записями.
// Compare дополнительно принимает bcrypt-дайджесты: их писал старый серверный
// вариант, и такие записи продолжают проверяться через bcrypt.
package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Hash возвращает hex-представление SHA-256 дайджеста пароля.
// Функция чистая: одинаковый пароль всегда даёт одинаковый дайджест.
func Hash(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// Compare проверяет пароль против сохранённого дайджеста.
// Возвращает nil при совпадении, иначе — ошибку.
func Compare(storedDigest, plaintext string) error {
	const op = "password.Compare"

	if isBcrypt(storedDigest) {
		if err := bcrypt.CompareHashAndPassword([]byte(storedDigest), []byte(plaintext)); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	}

	if subtle.ConstantTimeCompare([]byte(Hash(plaintext)), []byte(storedDigest)) != 1 {
		return fmt.Errorf("%s: digest mismatch", op)
	}
	return nil
}

// isBcrypt распознаёт модульный префикс bcrypt ($2a$, $2b$, $2y$).
func isBcrypt(digest string) bool {
	return strings.HasPrefix(digest, "$2a$") ||
		strings.HasPrefix(digest, "$2b$") ||
		strings.HasPrefix(digest, "$2y$")
}
