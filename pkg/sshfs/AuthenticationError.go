// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package sshfs

import (
	"fmt"
)

// AuthenticationError indicates the host rejected the supplied credentials.
type AuthenticationError struct {
	Addr string
	User string
	Err  error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("error authenticating user %q with %q: %v", e.User, e.Addr, e.Err)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}
