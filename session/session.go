package session

import (
	"encoding/json"

	"tienda-storefront/cart"
	"tienda-storefront/notify"
	"tienda-storefront/storage"
)

const (
	tokenKey = "token"
	userKey  = "user"
)

// User is the profile kept alongside the token for display purposes.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Manager holds the signed-in state in the same key-value store as the
// cart. Logging out discards the token, the profile and the cart.
type Manager struct {
	store    storage.Store
	cart     *cart.Engine
	notifier notify.Notifier
}

func NewManager(store storage.Store, cartEngine *cart.Engine, notifier notify.Notifier) *Manager {
	return &Manager{store: store, cart: cartEngine, notifier: notifier}
}

// Login validates and stores a token issued by the backend, together with
// the profile derived from its claims.
func (m *Manager) Login(token string) error {
	claims, err := ValidateToken(token)
	if err != nil {
		m.notifier.Error("Invalid session token")
		return err
	}

	if err := m.store.Set(tokenKey, []byte(token)); err != nil {
		return err
	}

	user := User{Email: claims.Email, Role: claims.Role}
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := m.store.Set(userKey, data); err != nil {
		return err
	}

	m.notifier.Success("Signed in successfully")
	return nil
}

// Current returns the claims of the stored token, or nil when nobody is
// signed in or the token no longer validates (e.g. expired).
func (m *Manager) Current() *Claims {
	data, ok, err := m.store.Get(tokenKey)
	if err != nil || !ok {
		return nil
	}
	claims, err := ValidateToken(string(data))
	if err != nil {
		return nil
	}
	return claims
}

func (m *Manager) LoggedIn() bool {
	return m.Current() != nil
}

func (m *Manager) IsAdmin() bool {
	claims := m.Current()
	return claims != nil && claims.Role == "admin"
}

// Profile returns the stored user record, if any.
func (m *Manager) Profile() (*User, error) {
	data, ok, err := m.store.Get(userKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout removes the token and profile and empties the cart, mirroring
// what closing the session clears from local state.
func (m *Manager) Logout() error {
	if err := m.store.Delete(tokenKey); err != nil {
		return err
	}
	if err := m.store.Delete(userKey); err != nil {
		return err
	}
	if err := m.cart.Clear(); err != nil {
		return err
	}
	m.notifier.Info("Signed out")
	return nil
}
