package app

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/argon2"
)

// ErrAuthFileExists is returned by CreateAuthFile when the file is present
// and overwriting was not requested
var ErrAuthFileExists = errors.New("auth file already exists")

// Argon2id parameters (OWASP recommended)
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // 64 MB
	argon2Threads = 4
	argon2KeyLen  = 32
	saltLen       = 16
)

// Guard checks the principal's sign-off before a request is approved.
// The zero value is disabled and lets every approval through.
type Guard struct {
	Principal string
	hash      string
}

// Enabled reports whether approvals require a sign-off
func (g *Guard) Enabled() bool {
	return g != nil && g.hash != ""
}

// Check verifies the principal name and password
func (g *Guard) Check(name, password string) error {
	if !g.Enabled() {
		return nil
	}

	nameMatch := subtle.ConstantTimeCompare([]byte(name), []byte(g.Principal)) == 1
	passMatch, err := VerifyPassword(password, g.hash)
	if err != nil {
		return fmt.Errorf("failed to verify password: %w", err)
	}
	if !nameMatch || !passMatch {
		return ErrUnauthorized
	}
	return nil
}

// LoadGuard reads principal credentials from path.
// A missing file is not an error: the returned guard is disabled.
func LoadGuard(path string, logger *zap.Logger) (*Guard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("no auth file found, approvals are not protected",
				zap.String("expected", path),
				zap.String("hint", "run 'event-manager hash-password' to create one"))
			return &Guard{}, nil
		}
		return nil, fmt.Errorf("failed to read auth file: %w", err)
	}

	// Format: principal:hash
	line := strings.TrimSpace(string(data))
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("invalid auth file format (expected: principal:hash)")
	}

	logger.Info("principal sign-off enabled",
		zap.String("principal", parts[0]),
		zap.String("file", path))
	return &Guard{Principal: parts[0], hash: parts[1]}, nil
}

// HashPassword creates an Argon2id hash of the password
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	// $argon2id$v=19$m=65536,t=1,p=4$salt$hash
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argon2Memory, argon2Time, argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash)), nil
}

// VerifyPassword verifies a password against an Argon2id hash
func VerifyPassword(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return false, fmt.Errorf("invalid hash format")
	}
	if parts[1] != "argon2id" {
		return false, fmt.Errorf("not an argon2id hash")
	}

	var memory, time, threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false, fmt.Errorf("failed to parse hash parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("failed to decode salt: %w", err)
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("failed to decode hash: %w", err)
	}

	got := argon2.IDKey([]byte(password), salt, time, memory, uint8(threads), uint32(len(want)))
	return subtle.ConstantTimeCompare(want, got) == 1, nil
}

// CreateAuthFile writes principal credentials to path (mode 0400).
// An existing file is only replaced when overwrite is set.
func CreateAuthFile(path, principal, password string, overwrite bool) error {
	if strings.Contains(principal, ":") {
		return fmt.Errorf("principal name must not contain ':'")
	}

	if _, err := os.Stat(path); err == nil {
		if !overwrite {
			return fmt.Errorf("%w: %s", ErrAuthFileExists, path)
		}
		// The file is read-only, so it has to go before it can be rewritten
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove existing auth file: %w", err)
		}
	}

	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	content := fmt.Sprintf("%s:%s\n", principal, hash)
	if err := os.WriteFile(path, []byte(content), AuthFileMode); err != nil {
		return fmt.Errorf("failed to write auth file: %w", err)
	}
	return nil
}
