package app

import (
	"github.com/cimillas/checkout/internal/auth"
)

// VerifierRegistry creates and resolves code-verified authorizers by id.
// *auth.Registry is the in-memory implementation.
type VerifierRegistry interface {
	Create(channel auth.Channel) (string, auth.Verifier)
	AuthorizerLookup
}

type AuthorizationService struct {
	registry VerifierRegistry
}

func NewAuthorizationService(registry VerifierRegistry) *AuthorizationService {
	return &AuthorizationService{registry: registry}
}

type Authorization struct {
	ID         string
	Channel    auth.Channel
	Authorized bool
}

// Start opens an unverified authorization on the given channel.
func (s *AuthorizationService) Start(channel string) (Authorization, error) {
	ch, err := auth.ParseChannel(channel)
	if err != nil {
		return Authorization{}, err
	}
	id, a := s.registry.Create(ch)
	return Authorization{ID: id, Channel: a.Channel(), Authorized: a.IsAuthorized()}, nil
}

func (s *AuthorizationService) Verify(id string, code int) (Authorization, error) {
	a, err := s.registry.Get(id)
	if err != nil {
		return Authorization{}, err
	}
	a.Verify(code)
	return Authorization{ID: id, Channel: a.Channel(), Authorized: a.IsAuthorized()}, nil
}

func (s *AuthorizationService) Status(id string) (Authorization, error) {
	a, err := s.registry.Get(id)
	if err != nil {
		return Authorization{}, err
	}
	return Authorization{ID: id, Channel: a.Channel(), Authorized: a.IsAuthorized()}, nil
}
