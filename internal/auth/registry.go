package auth

import (
	"log/slog"
	"sync"

	"github.com/cimillas/checkout/internal/domain"
	"github.com/google/uuid"
)

// Registry keeps code authorizers addressable by id so that a verification
// made in one request can be consulted by a later payment.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*CodeAuthorizer
	logger  *slog.Logger
}

func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		entries: make(map[string]*CodeAuthorizer),
		logger:  logger,
	}
}

// Create registers a new unverified authorizer and returns its id.
func (r *Registry) Create(channel Channel) (string, Verifier) {
	id := uuid.NewString()
	a := New(channel, r.logger.With("authorization_id", id))

	r.mu.Lock()
	r.entries[id] = a
	r.mu.Unlock()
	return id, a
}

// Get returns the authorizer registered under id. The returned Verifier is
// the shared instance, so a later Verify is visible to every holder.
func (r *Registry) Get(id string) (Verifier, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidID
	}

	r.mu.RLock()
	a, ok := r.entries[id]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrAuthorizationNotFound
	}
	return a, nil
}
