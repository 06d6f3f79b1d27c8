package tables

import (
	"strconv"
	"strings"

	"github.com/zooyer/godxf/core"
)

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

func atof(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

// decodeCommonAndFields reads the common table-record preamble (handle,
// owner, subclass markers) and then hands every remaining pair up to the
// record's boundary to field for record-specific handling. Unrecognized
// codes left untouched by field are simply skipped, per the tolerance
// policy that governs the rest of the codec.
func decodeCommonAndFields(r *core.Reader, handle, owner *uint64, field func(code int, p core.CodePair) error) error {
	for {
		peek, err := r.Peek()
		if err != nil {
			return err
		}
		if peek.Code == 0 {
			return nil
		}
		pair, err := r.Advance()
		if err != nil {
			return err
		}
		switch pair.Code {
		case 5:
			*handle, _ = core.ParseHandle(pair.Value)
		case 330:
			*owner, _ = core.ParseHandle(pair.Value)
		case 100:
			// subclass marker, no state to record
		default:
			if err := field(pair.Code, pair); err != nil {
				return err
			}
		}
	}
}
