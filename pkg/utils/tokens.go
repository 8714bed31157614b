package utils

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// NewAccessToken issues the opaque token stored for a connected social
// account. Real platform OAuth is out of scope; the token only needs to be
// unique per account.
func NewAccessToken() (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", err
	}
	return "acct_" + id, nil
}
