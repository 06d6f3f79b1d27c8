package entities

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

// Dimension is a DIMENSION entity. DimType's low three bits distinguish
// linear/aligned/angular/diameter/radius/ordinate/three-point-angular
// styles; the remaining bits are presentation flags this codec does not
// interpret.
type Dimension struct {
	Header
	DimType      int
	StyleName    string
	Measurement  float64
	Text         string
	Angle        float64
	DefPoint     core.Point
	TextMidPoint core.Point
	MeasureStart core.Point
	MeasureEnd   core.Point
}

func init() {
	Register("DIMENSION", func() Entity { return &Dimension{Header: newHeader(), StyleName: "STANDARD"} })
}

func (d *Dimension) TypeName() string { return "DIMENSION" }

func (d *Dimension) Decode(r *core.Reader) error {
	return decodeBody(r, &d.Header, func(code int, p core.CodePair) error {
		switch code {
		case 3:
			d.StyleName = p.Value
		case 1:
			d.Text = p.Value
		case 42:
			d.Measurement = atof(p.Value)
		case 50:
			d.Angle = atof(p.Value)
		case 10:
			d.DefPoint.X = atof(p.Value)
		case 20:
			d.DefPoint.Y = atof(p.Value)
		case 30:
			d.DefPoint.Z = atof(p.Value)
		case 11:
			d.TextMidPoint.X = atof(p.Value)
		case 21:
			d.TextMidPoint.Y = atof(p.Value)
		case 31:
			d.TextMidPoint.Z = atof(p.Value)
		case 13:
			d.MeasureStart.X = atof(p.Value)
		case 23:
			d.MeasureStart.Y = atof(p.Value)
		case 33:
			d.MeasureStart.Z = atof(p.Value)
		case 14:
			d.MeasureEnd.X = atof(p.Value)
		case 24:
			d.MeasureEnd.Y = atof(p.Value)
		case 34:
			d.MeasureEnd.Z = atof(p.Value)
		case 70:
			d.DimType = atoi(p.Value) & 0x07
		}
		return nil
	})
}

func (d *Dimension) Encode(w *core.Writer, target version.Version) {
	w.Pair(0, "DIMENSION")
	d.encodeCommon(w, target)
	writeSubclass(w, target, "AcDbDimension")
	w.Point(10, d.DefPoint)
	w.Point(11, d.TextMidPoint)
	w.Int(70, d.DimType)
	w.Pair(1, d.Text)
	w.Pair(3, d.StyleName)
	writeSubclass(w, target, "AcDbAlignedDimension")
	w.Point(13, d.MeasureStart)
	w.Point(14, d.MeasureEnd)
	w.Float(50, d.Angle)
	w.Float(42, d.Measurement)
	encodeExtras(w, &d.Header)
}
