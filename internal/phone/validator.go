// Package phone validates customer phone numbers against the static
// per-network prefix tables.
package phone

import (
	"errors"
	"fmt"

	"github.com/swiftvtu/vtu_api/internal/models"
)

// networkPrefixes maps each operator to its valid 4-digit number prefixes.
var networkPrefixes = map[models.NetworkID][]string{
	models.NetworkMTN:     {"0803", "0806", "0703", "0706", "0813", "0816", "0810", "0814", "0903", "0906"},
	models.NetworkGlo:     {"0805", "0807", "0705", "0815", "0811", "0905"},
	models.NetworkAirtel:  {"0802", "0808", "0708", "0812", "0902", "0907", "0901"},
	models.Network9Mobile: {"0809", "0818", "0817", "0909", "0908"},
}

var (
	// ErrEmptyNumber is returned for a missing phone number.
	ErrEmptyNumber = errors.New("please enter a phone number")
	// ErrBadLength is returned when the number is not exactly 11 digits.
	ErrBadLength = errors.New("phone number must be 11 digits")
)

// MismatchError reports a number whose prefix does not belong to the
// selected network.
type MismatchError struct {
	Network models.NetworkID
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("phone number does not match %s network", e.Network)
}

// Prefixes returns the prefix table for a network. The slice must not be
// mutated by callers.
func Prefixes(network models.NetworkID) []string {
	return networkPrefixes[network]
}

// Sanitize strips non-digit characters and caps the number at 11 digits.
// Applied on input before validation, matching the entry field behavior.
func Sanitize(raw string) string {
	out := make([]byte, 0, 11)
	for i := 0; i < len(raw) && len(out) < 11; i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			out = append(out, raw[i])
		}
	}
	return string(out)
}

// Validate checks a phone number for the selected network. Rules apply in
// order and short-circuit with a distinct error: non-empty, exactly 11
// digits, then the leading 4 digits must appear in the network's prefix
// table.
func Validate(number string, network models.NetworkID) error {
	if number == "" {
		return ErrEmptyNumber
	}
	if len(number) != 11 {
		return ErrBadLength
	}
	for i := 0; i < len(number); i++ {
		if number[i] < '0' || number[i] > '9' {
			return ErrBadLength
		}
	}
	prefix := number[:4]
	for _, p := range networkPrefixes[network] {
		if p == prefix {
			return nil
		}
	}
	return &MismatchError{Network: network}
}
