// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package sshfs

import (
	"time"

	"golang.org/x/crypto/ssh"
)

// DefaultPort is the well-known port for the secure shell protocol.
const DefaultPort = 22

type DialInput struct {
	Host     string
	Port     int
	User     string
	Password string
	Timeout  time.Duration
	// HostKeyCallback verifies the server host key during the handshake.
	// If nil, the host key is not verified.
	HostKeyCallback ssh.HostKeyCallback
}
