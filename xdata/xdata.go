package xdata

import "github.com/zooyer/godxf/core"

// XData is one application's XData block: the 1001/<app> marker and the
// 1000-1071 pairs that follow it, up to the next 0 or 1001 pair. Per
// spec.md §4.8 lists are typed by the sub-code family and preserved in
// insertion order; the codec keeps them as raw pairs since it never
// interprets XData content.
type XData struct {
	App   string
	Pairs []core.CodePair
}

func isXDataRange(code int) bool {
	return code >= 1000 && code <= 1071
}

// ReadAll consumes every consecutive 1001 application block at the
// reader's current position.
func ReadAll(r *core.Reader) ([]*XData, error) {
	var blocks []*XData
	for {
		peek, err := r.Peek()
		if err != nil || !peek.IsXDataApp() {
			return blocks, nil //nolint:nilerr // stream end/non-XData pair just stops collection
		}
		appPair, err := r.Advance()
		if err != nil {
			return nil, err
		}
		block := &XData{App: appPair.Value}
		for {
			peek, err := r.Peek()
			if err != nil || peek.Code == 0 || peek.IsXDataApp() {
				break
			}
			if !isXDataRange(peek.Code) {
				break
			}
			pair, err := r.Advance()
			if err != nil {
				return nil, err
			}
			block.Pairs = append(block.Pairs, pair)
		}
		blocks = append(blocks, block)
	}
}

// WriteAll emits every XData block in order.
func WriteAll(w *core.Writer, blocks []*XData) {
	for _, b := range blocks {
		w.Pair(1001, b.App)
		for _, p := range b.Pairs {
			w.Pair(p.Code, p.Value)
		}
	}
}
