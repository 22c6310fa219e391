package auth

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/Bhuneshvarma/Bombay-Panjabi-Kh-na/internal/domain"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

// Authenticator verifies and registers identities. The rest of the
// system treats it as opaque; swapping in a real identity provider only
// touches this interface.
type Authenticator interface {
	Authenticate(email, password string) (domain.User, error)
	Register(name, email, password string) (domain.User, error)
}

type account struct {
	user domain.User
	hash []byte
}

// MemoryAuthenticator keeps accounts in memory with bcrypt password
// hashes. Registration always creates customer accounts; owner accounts
// are seeded at startup.
type MemoryAuthenticator struct {
	mu       sync.RWMutex
	accounts map[string]account // keyed by email
}

func NewMemoryAuthenticator() *MemoryAuthenticator {
	return &MemoryAuthenticator{
		accounts: make(map[string]account),
	}
}

// Seed adds an account with the given role, replacing any existing
// account for the email. Used at startup for the owner login.
func (a *MemoryAuthenticator) Seed(name, email, password string, role domain.Role) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.accounts[email] = account{
		user: domain.User{Name: name, Email: email, Role: role},
		hash: hash,
	}
	return nil
}

func (a *MemoryAuthenticator) Authenticate(email, password string) (domain.User, error) {
	a.mu.RLock()
	acc, exists := a.accounts[email]
	a.mu.RUnlock()

	if !exists {
		return domain.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acc.hash, []byte(password)); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	return acc.user, nil
}

func (a *MemoryAuthenticator) Register(name, email, password string) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.accounts[email]; exists {
		return domain.User{}, ErrEmailTaken
	}

	user := domain.User{Name: name, Email: email, Role: domain.RoleCustomer}
	a.accounts[email] = account{user: user, hash: hash}
	return user, nil
}
