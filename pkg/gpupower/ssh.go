package gpupower

import (
	"context"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"
)

// systemServiceUsers are login names ignored when checking for other users
// on the GPU host before an idle shutdown (the SSH user itself is also
// excluded; sddm is the display-manager service account).
var systemServiceUsers = map[string]bool{
	"sddm": true,
}

// sshClient opens a key-authenticated SSH connection to the GPU host. Host
// key verification is intentionally permissive (InsecureIgnoreHostKey): the
// host is a single pre-provisioned machine on a private network reachable
// only via its Wake-on-LAN MAC and SSH key.
func sshClient(host, user, keyPath string, timeout time.Duration) (*ssh.Client, error) {
	keyBytes, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("reading SSH key: %w", err)
	}
	signer, err := ssh.ParsePrivateKey(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("parsing SSH key: %w", err)
	}

	cfg := &ssh.ClientConfig{
		User:            user,
		Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         timeout,
	}

	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, "22"), timeout)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", host, err)
	}
	sc, chans, reqs, err := ssh.NewClientConn(conn, host, cfg)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("establishing SSH connection: %w", err)
	}
	return ssh.NewClient(sc, chans, reqs), nil
}

// runCommand executes a single command over a new SSH session and returns
// its combined output.
func runCommand(ctx context.Context, client *ssh.Client, cmd string) (string, error) {
	session, err := client.NewSession()
	if err != nil {
		return "", fmt.Errorf("opening SSH session: %w", err)
	}
	defer session.Close()

	type result struct {
		out []byte
		err error
	}
	done := make(chan result, 1)
	go func() {
		out, err := session.CombinedOutput(cmd)
		done <- result{out, err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return string(r.out), r.err
	}
}

// sshShutdown issues `sudo shutdown -h now` over SSH. The connection
// closing mid-command (the host powers off before it can cleanly send an
// SSH disconnect) is the expected happy path, not a failure: both a
// closed-connection error and a context deadline are treated as success.
func sshShutdown(ctx context.Context, host, user, keyPath string, timeout time.Duration) error {
	client, err := sshClient(host, user, keyPath, timeout)
	if err != nil {
		return fmt.Errorf("connecting for shutdown: %w", err)
	}
	defer client.Close()

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	_, err = runCommand(runCtx, client, "sudo shutdown -h now")
	if err == nil {
		return nil
	}
	if runCtx.Err() != nil {
		return nil
	}
	if isConnectionClosed(err) {
		return nil
	}
	return fmt.Errorf("shutdown command: %w", err)
}

func isConnectionClosed(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "connection closed") ||
		strings.Contains(msg, "EOF") ||
		strings.Contains(msg, "broken pipe")
}

// sshHasOtherUsers runs `who` on the GPU host and reports whether anyone
// other than the SSH service account is logged in, so an idle shutdown never
// kicks an interactive user off the machine. Fail-safe default: any error
// talking to the host is treated as "other users present" so a flaky
// connection never causes an unwanted shutdown.
func sshHasOtherUsers(ctx context.Context, host, user, keyPath string, timeout time.Duration) bool {
	client, err := sshClient(host, user, keyPath, timeout)
	if err != nil {
		return true
	}
	defer client.Close()

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := runCommand(runCtx, client, "who")
	if err != nil {
		return true
	}

	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		name := fields[0]
		if name == user || systemServiceUsers[name] {
			continue
		}
		return true
	}
	return false
}
