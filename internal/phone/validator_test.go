package phone

import (
	"errors"
	"testing"

	"github.com/swiftvtu/vtu_api/internal/models"
)

func TestValidate_AllPrefixesValidateOnOwnNetwork(t *testing.T) {
	for _, network := range models.Networks {
		for _, prefix := range Prefixes(network) {
			number := prefix + "1234567"
			if err := Validate(number, network); err != nil {
				t.Errorf("Validate(%q, %s) = %v, want nil", number, network, err)
			}
		}
	}
}

func TestValidate_ForeignPrefixFails(t *testing.T) {
	for _, network := range models.Networks {
		for _, other := range models.Networks {
			if other == network {
				continue
			}
			for _, prefix := range Prefixes(other) {
				number := prefix + "1234567"
				err := Validate(number, network)
				var mismatch *MismatchError
				if !errors.As(err, &mismatch) {
					t.Errorf("Validate(%q, %s) = %v, want MismatchError", number, network, err)
				}
			}
		}
	}
}

func TestValidate_AirtelNumber(t *testing.T) {
	if err := Validate("08021234567", models.NetworkAirtel); err != nil {
		t.Errorf("expected 08021234567 to validate on AIRTEL, got %v", err)
	}
}

func TestValidate_AirtelPrefixOnMTN(t *testing.T) {
	err := Validate("08021234567", models.NetworkMTN)
	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected MismatchError for AIRTEL prefix on MTN, got %v", err)
	}
	if mismatch.Network != models.NetworkMTN {
		t.Errorf("mismatch network = %s, want MTN", mismatch.Network)
	}
}

func TestValidate_RuleOrder(t *testing.T) {
	if err := Validate("", models.NetworkMTN); !errors.Is(err, ErrEmptyNumber) {
		t.Errorf("empty number: got %v, want ErrEmptyNumber", err)
	}
	if err := Validate("0803123", models.NetworkMTN); !errors.Is(err, ErrBadLength) {
		t.Errorf("short number: got %v, want ErrBadLength", err)
	}
	if err := Validate("0803123456a", models.NetworkMTN); !errors.Is(err, ErrBadLength) {
		t.Errorf("non-digit number: got %v, want ErrBadLength", err)
	}
}

func TestSanitize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"0802 123 4567", "08021234567"},
		{"+2348021234567", "23480212345"},
		{"080212345678901", "08021234567"},
		{"abc", ""},
	}
	for _, tc := range cases {
		if got := Sanitize(tc.in); got != tc.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
