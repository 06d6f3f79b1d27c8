package objects

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

// Group is a GROUP object: a named, ordered set of entity handles.
type Group struct {
	Header
	Description string
	Unnamed     bool
	Selectable  bool
	Members     []uint64
}

func init() {
	Register("GROUP", func() Object { return &Group{Selectable: true} })
}

func (g *Group) TypeName() string { return "GROUP" }

func (g *Group) Decode(r *core.Reader) error {
	return decodeBody(r, &g.Header, func(code int, p core.CodePair) error {
		switch code {
		case 300:
			g.Description = p.Value
		case 70:
			g.Unnamed = atoi(p.Value) != 0
		case 71:
			g.Selectable = atoi(p.Value) != 0
		case 340:
			h, _ := core.ParseHandle(p.Value)
			g.Members = append(g.Members, h)
		}
		return nil
	})
}

func (g *Group) Encode(w *core.Writer, target version.Version) {
	w.Pair(0, "GROUP")
	g.encodeCommon(w, target)
	writeSubclass(w, target, "AcDbGroup")
	w.Pair(300, g.Description)
	w.Bool(70, g.Unnamed)
	w.Bool(71, g.Selectable)
	for _, h := range g.Members {
		w.Handle(340, h)
	}
	encodeExtras(w, &g.Header)
}
