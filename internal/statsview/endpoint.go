package statsview

import (
	"errors"
	"fmt"
	"net"
)

// DefaultAddr is the listen address used when none is given.
const DefaultAddr = "localhost:12600"

// ErrNotBuilt is returned by Serve in binaries built without the statsview tag.
var ErrNotBuilt = errors.New("statsview: not compiled in, rebuild with -tags statsview")

// Endpoint normalises addr and returns it with the dashboard URL. An empty
// host means localhost; an empty addr means DefaultAddr.
func Endpoint(addr string) (listen, url string, err error) {
	if addr == "" {
		addr = DefaultAddr
	}
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "", "", fmt.Errorf("statsview address: %w", err)
	}
	if port == "" {
		return "", "", fmt.Errorf("statsview address %q: missing port", addr)
	}
	if host == "" {
		host = "localhost"
	}
	listen = net.JoinHostPort(host, port)
	return listen, "http://" + listen + "/debug/statsview", nil
}
