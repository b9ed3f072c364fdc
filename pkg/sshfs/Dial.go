// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package sshfs

import (
	"context"
	"net"
	"strconv"
	"strings"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// Dial establishes the single authenticated session used for the entire run:
// one TCP connection, one secure shell handshake with password
// authentication, one SFTP subsystem on top.  There is no reconnection; a
// dropped session fails every subsequent operation.
func Dial(ctx context.Context, input *DialInput) (*SSHFileSystem, error) {
	port := input.Port
	if port == 0 {
		port = DefaultPort
	}
	addr := net.JoinHostPort(input.Host, strconv.Itoa(port))

	dialer := net.Dialer{
		Timeout: input.Timeout,
	}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, &ConnectionError{Addr: addr, Err: err}
	}

	hostKeyCallback := input.HostKeyCallback
	if hostKeyCallback == nil {
		hostKeyCallback = ssh.InsecureIgnoreHostKey()
	}

	clientConfig := &ssh.ClientConfig{
		User: input.User,
		Auth: []ssh.AuthMethod{
			ssh.Password(input.Password),
		},
		HostKeyCallback: hostKeyCallback,
		Timeout:         input.Timeout,
	}

	clientConn, channels, requests, err := ssh.NewClientConn(conn, addr, clientConfig)
	if err != nil {
		_ = conn.Close()
		if strings.Contains(err.Error(), "unable to authenticate") {
			return nil, &AuthenticationError{Addr: addr, User: input.User, Err: err}
		}
		return nil, &HandshakeError{Addr: addr, Err: err}
	}

	sshClient := ssh.NewClient(clientConn, channels, requests)

	sftpClient, err := sftp.NewClient(sshClient)
	if err != nil {
		_ = sshClient.Close()
		return nil, &HandshakeError{Addr: addr, Err: err}
	}

	return NewSSHFileSystem(sshClient, sftpClient), nil
}
