package bridge

import (
	"net"
	"strconv"
	"time"
)

// DefaultProbeTimeout is the dial timeout used by the reachability probe.
const DefaultProbeTimeout = time.Second

// Probe reports whether a TCP listener is accepting connections at the given
// endpoint. It makes exactly one connection attempt bounded by timeout.
func Probe(host string, port int, timeout time.Duration) bool {
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, strconv.Itoa(port)), timeout)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}
