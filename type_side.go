package transactions

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Side tags a row or a record as a purchase or a disposal.
type Side int

const (
	// Buy marks an acquisition; on a record it means the lot is still open.
	Buy Side = iota
	// Sell marks a disposal; on a record it means the lot is fully booked.
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return "unknown"
	}
}

// ParseSide parses a string into a Side. Source sheets are inconsistent
// about casing ("buy", "BUY"), so the comparison is case-insensitive.
func ParseSide(s string) (Side, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BUY":
		return Buy, nil
	case "SELL":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown transaction side: %q", s)
	}
}

// MarshalJSON implements the json.Marshaler interface for Side.
func (s Side) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface for Side.
func (s *Side) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	side, err := ParseSide(str)
	if err != nil {
		return err
	}
	*s = side
	return nil
}
