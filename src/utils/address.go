package utils

import "strings"

// IsZeroAddress reports whether an address is the null placeholder: empty,
// or an all-zero hex address of any length.
func IsZeroAddress(addr string) bool {
	if addr == "" {
		return true
	}
	hex := strings.TrimPrefix(strings.ToLower(addr), "0x")
	if hex == "" {
		return true
	}
	for _, c := range hex {
		if c != '0' {
			return false
		}
	}
	return true
}

// NormalizeAddress lowercases an address for storage and comparison.
func NormalizeAddress(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}
