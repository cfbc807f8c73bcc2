// Package auth abstracts the external identity provider. Session
// management lives elsewhere; this package only answers "who is making
// this request" or rejects it.
package auth

import (
	"errors"
	"net/http"
)

// ErrUnauthenticated means the request carries no usable identity.
var ErrUnauthenticated = errors.New("no authenticated user")

// Identity resolves the acting user for a request.
type Identity interface {
	UserID(r *http.Request) (string, error)
}

// HeaderIdentity trusts an upstream gateway to set X-User-ID after
// authenticating the session.
type HeaderIdentity struct{}

func (HeaderIdentity) UserID(r *http.Request) (string, error) {
	uid := r.Header.Get("X-User-ID")
	if uid == "" {
		return "", ErrUnauthenticated
	}
	return uid, nil
}
