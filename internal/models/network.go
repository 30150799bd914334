package models

import "fmt"

// NetworkID identifies a mobile network operator.
type NetworkID string

const (
	NetworkMTN     NetworkID = "MTN"
	NetworkGlo     NetworkID = "GLO"
	NetworkAirtel  NetworkID = "AIRTEL"
	Network9Mobile NetworkID = "9MOBILE"
)

// Networks lists every supported operator in display order.
var Networks = []NetworkID{NetworkMTN, NetworkGlo, NetworkAirtel, Network9Mobile}

// ParseNetwork validates a raw network string against the supported set.
func ParseNetwork(raw string) (NetworkID, error) {
	for _, n := range Networks {
		if string(n) == raw {
			return n, nil
		}
	}
	return "", fmt.Errorf("unknown network %q", raw)
}
