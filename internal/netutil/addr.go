// Package netutil provides parsing helpers for the IP, CIDR and port
// notation used on the F1 midhaul interface.
package netutil

import (
	"fmt"
	"net"
)

// Host returns the address part of a CIDR or bare IP string. The F1 address
// is configured with its network mask but the radio software wants the plain
// host address.
func Host(cidrOrIP string) (string, error) {
	if cidrOrIP == "" {
		return "", fmt.Errorf("empty address")
	}
	if ip, _, err := net.ParseCIDR(cidrOrIP); err == nil {
		return ip.String(), nil
	}
	if ip := net.ParseIP(cidrOrIP); ip != nil {
		return ip.String(), nil
	}
	return "", fmt.Errorf("cannot parse address %q", cidrOrIP)
}

// BareIP reports whether s is an IP address without a network mask. Contract
// data carries addresses in this form.
func BareIP(s string) bool {
	return net.ParseIP(s) != nil
}

// ValidPort reports whether p is a usable port number.
func ValidPort(p int) bool {
	return p >= 1 && p <= 65535
}
