package landingapi

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"tripbooking/internal/utils"
)

// Stringish menoleransi string/number/bool menjadi string.
type Stringish string

func (s *Stringish) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case string(b) == "null" || len(b) == 0:
		*s = ""
		return nil
	case len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"':
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = Stringish(str)
		return nil
	default:
		// number/bool/object -> stringify best-effort
		*s = Stringish(strings.Trim(string(b), `"`))
		return nil
	}
}

func (s Stringish) String() string { return strings.TrimSpace(string(s)) }

// Amount coerces to whole Rupiah, 0 when not numeric.
func (s Stringish) Amount() int64 { return utils.ParseAmount(string(s)) }

// Int coerces to an int, truncating decimals; 0 when not numeric.
func (s Stringish) Int() int { return int(utils.ParseNumber(string(s))) }

// ID coerces to an int64 identifier.
func (s Stringish) ID() int64 {
	if n, err := strconv.ParseInt(s.String(), 10, 64); err == nil {
		return n
	}
	return int64(utils.ParseNumber(string(s)))
}

// Bool accepts true/1/"1"/"true"/"yes".
func (s Stringish) Bool() bool {
	switch strings.ToLower(s.String()) {
	case "1", "true", "yes", "y":
		return true
	default:
		return false
	}
}
