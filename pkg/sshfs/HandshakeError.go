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

// HandshakeError indicates the protocol handshake with the host failed,
// either at the secure shell layer or when opening the SFTP subsystem.
type HandshakeError struct {
	Addr string
	Err  error
}

func (e *HandshakeError) Error() string {
	return fmt.Sprintf("error during handshake with %q: %v", e.Addr, e.Err)
}

func (e *HandshakeError) Unwrap() error {
	return e.Err
}
