package bigint

import (
	"errors"
	"fmt"
	"math/big"
)

// BigInt wraps big.Int so that values survive a trip through JSON without
// precision loss: they marshal as decimal strings. Agent and token
// identifiers routinely exceed the float64-safe integer range.
type BigInt struct {
	*big.Int
}

func (b *BigInt) MarshalJSON() ([]byte, error) {
	if b == nil || b.Int == nil {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf(`"%s"`, b.Int.String())), nil
}

func (b *BigInt) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	value, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return errors.New("not a valid big integer: " + s)
	}

	b.Int = value
	return nil
}
