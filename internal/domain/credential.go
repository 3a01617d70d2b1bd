package domain

import "strings"

// Credential represents a supplier account row of the credentials table
type Credential struct {
	Username string
	Password string // plaintext or bcrypt hash
	Email    string
	CC       []string
}

// ParseCCList splits a semicolon-separated list of carbon-copy addresses
func ParseCCList(raw string) []string {
	result := make([]string, 0)
	for _, addr := range strings.Split(raw, ";") {
		addr = strings.TrimSpace(addr)
		if addr != "" {
			result = append(result, addr)
		}
	}
	return result
}
