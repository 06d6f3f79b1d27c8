package entities

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

// decodeBody loops over an entity's pairs, dispatching common-header
// codes to h and everything else to field, until the next 0-code pair.
// Extension/XData groups met on the way are handed to decodeExtras, and
// decoding of the body resumes after them.
func decodeBody(r *core.Reader, h *Header, field func(code int, p core.CodePair) error) error {
	for {
		peek, err := r.Peek()
		if err != nil {
			return err
		}
		if peek.Code == 0 {
			return nil
		}
		if peek.Code == 102 || peek.Code == 1001 {
			if err := decodeExtras(r, h); err != nil {
				return err
			}
			continue
		}
		pair, err := r.Advance()
		if err != nil {
			return err
		}
		if h.decodeCommon(pair.Code, pair) {
			continue
		}
		if err := field(pair.Code, pair); err != nil {
			return err
		}
	}
}
