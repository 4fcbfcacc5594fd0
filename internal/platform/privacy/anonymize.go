// Package privacy reduces client network addresses before they reach logs.
package privacy

import (
	"net"
	"net/netip"
)

// Prefix lengths kept when anonymizing.
const (
	IPv4Bits = 24
	IPv6Bits = 48
)

// ClientIP anonymizes a request's remote address. It accepts a bare IP or a
// host:port pair and returns the masked network, e.g. "192.168.1.0" or
// "2001:db8:85a3::". Unparseable input yields "invalid" and empty input
// yields "unknown".
func ClientIP(remoteAddr string) string {
	if remoteAddr == "" || remoteAddr == "unknown" {
		return "unknown"
	}
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return "invalid"
	}
	addr = addr.Unmap().WithZone("")

	bits := IPv6Bits
	if addr.Is4() {
		bits = IPv4Bits
	}
	prefix, err := addr.Prefix(bits)
	if err != nil {
		return "invalid"
	}
	return prefix.Addr().String()
}
