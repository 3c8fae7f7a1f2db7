package helloworld

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// ParseInteger parses an integer written the way ICON JSON-RPC writes them: 0x-prefixed hex with
// an optional leading minus sign. Plain decimal is accepted too, the empty string is zero.
func ParseInteger(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return new(big.Int), nil
	}

	digits := s
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}

	base := 10
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		base = 16
		digits = digits[2:]
	}
	if digits == "" || strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		return nil, errors.Errorf("invalid integer %q", s)
	}

	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, errors.Errorf("invalid integer %q", s)
	}
	if neg {
		v.Neg(v)
	}
	return v, nil
}

// FormatInteger is the inverse of ParseInteger, it always produces hex.
func FormatInteger(v *big.Int) string {
	if v == nil {
		return "0x0"
	}
	return hexutil.EncodeBig(v)
}
