package header

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

// Table is the static header-variable schema. Order matters: variables
// are written in this order on Save, matching how AutoCAD itself groups
// related variables together.
var Table = []Variable{
	{Name: "$ACADVER", Code: 1, Kind: KindString, MinVersion: version.R9, MaxVersion: version.Latest, Default: "AC1015"},
	{Name: "$HANDSEED", Code: 5, Kind: KindString, MinVersion: version.R9, MaxVersion: version.Latest, Default: "0"},
	{Name: "$DWGCODEPAGE", Code: 3, Kind: KindString, MinVersion: version.R9, MaxVersion: version.Latest, Default: "ANSI_1252"},
	{Name: "$INSBASE", Code: 10, Kind: KindPoint3D, MinVersion: version.R9, MaxVersion: version.Latest, Default: core.Point{}},
	{Name: "$EXTMIN", Code: 10, Kind: KindPoint3D, MinVersion: version.R9, MaxVersion: version.Latest, Default: core.Point{}},
	{Name: "$EXTMAX", Code: 10, Kind: KindPoint3D, MinVersion: version.R9, MaxVersion: version.Latest, Default: core.Point{}},
	{Name: "$LIMMIN", Code: 10, Kind: KindPoint2D, MinVersion: version.R9, MaxVersion: version.Latest, Default: core.Point{}},
	{Name: "$LIMMAX", Code: 10, Kind: KindPoint2D, MinVersion: version.R9, MaxVersion: version.Latest, Default: core.Point{X: 420, Y: 297}},
	{Name: "$CLAYER", Code: 8, Kind: KindString, MinVersion: version.R9, MaxVersion: version.Latest, Default: "0"},
	{Name: "$CECOLOR", Code: 62, Kind: KindInt, MinVersion: version.R9, MaxVersion: version.Latest, Default: core.ColorByLayer},
	{Name: "$CELTYPE", Code: 6, Kind: KindString, MinVersion: version.R9, MaxVersion: version.Latest, Default: "BYLAYER"},
	{Name: "$CELWEIGHT", Code: 370, Kind: KindInt, MinVersion: version.R2000, MaxVersion: version.Latest, Default: -1},
	{Name: "$MEASUREMENT", Code: 70, Kind: KindInt, MinVersion: version.R13, MaxVersion: version.Latest, Default: 0},
	{Name: "$LUNITS", Code: 70, Kind: KindInt, MinVersion: version.R9, MaxVersion: version.Latest, Default: 2},
	{Name: "$LUPREC", Code: 70, Kind: KindInt, MinVersion: version.R9, MaxVersion: version.Latest, Default: 4},
	{Name: "$INSUNITS", Code: 70, Kind: KindInt, MinVersion: version.R2000, MaxVersion: version.Latest, Default: 0},
	{Name: "$LTSCALE", Code: 40, Kind: KindFloat, MinVersion: version.R9, MaxVersion: version.Latest, Default: 1.0},
	{Name: "$TEXTSTYLE", Code: 7, Kind: KindString, MinVersion: version.R9, MaxVersion: version.Latest, Default: "STANDARD"},
	{Name: "$DIMSTYLE", Code: 2, Kind: KindString, MinVersion: version.R9, MaxVersion: version.Latest, Default: "STANDARD"},
}

var byName = func() map[string]Variable {
	m := make(map[string]Variable, len(Table))
	for _, v := range Table {
		m[v.Name] = v
	}
	return m
}()

// Lookup returns the schema row for a header variable name, if known.
func Lookup(name string) (Variable, bool) {
	v, ok := byName[name]
	return v, ok
}
