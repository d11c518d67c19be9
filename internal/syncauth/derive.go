package syncauth

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
)

// DeriveAuth computes the sync key locally as hex(sha1("username:password")),
// the scheme older sync servers accepted in place of a login exchange. It
// performs no network call and cannot fail against the service.
type DeriveAuth struct{}

// HostKey derives the key from the credentials.
func (DeriveAuth) HostKey(_ context.Context, username, password string) (string, error) {
	sum := sha1.Sum([]byte(fmt.Sprintf("%s:%s", username, password)))
	return hex.EncodeToString(sum[:]), nil
}
