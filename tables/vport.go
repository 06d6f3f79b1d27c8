package tables

import "github.com/zooyer/godxf/core"

// Vport is a VPORT table record.
type Vport struct {
	Handle        uint64
	Owner         uint64
	Name          string
	Flags         int
	LowerLeft     core.Point
	UpperRight    core.Point
	Center        core.Point
	SnapBase      core.Point
	SnapSpacing   core.Point
	GridSpacing   core.Point
	ViewDirection core.Point
	ViewTarget    core.Point
	ViewHeight    float64
	AspectRatio   float64
	LensLength    float64
}

func (v *Vport) RecordName() string { return v.Name }

func decodeVport(r *core.Reader) (*Vport, error) {
	v := &Vport{AspectRatio: 1, LensLength: 50}
	err := decodeCommonAndFields(r, &v.Handle, &v.Owner, func(code int, p core.CodePair) error {
		switch code {
		case 2:
			v.Name = p.Value
		case 70:
			v.Flags = atoi(p.Value)
		case 10:
			v.LowerLeft.X = atof(p.Value)
		case 20:
			v.LowerLeft.Y = atof(p.Value)
		case 11:
			v.UpperRight.X = atof(p.Value)
		case 21:
			v.UpperRight.Y = atof(p.Value)
		case 12:
			v.Center.X = atof(p.Value)
		case 22:
			v.Center.Y = atof(p.Value)
		case 13:
			v.SnapBase.X = atof(p.Value)
		case 23:
			v.SnapBase.Y = atof(p.Value)
		case 14:
			v.SnapSpacing.X = atof(p.Value)
		case 24:
			v.SnapSpacing.Y = atof(p.Value)
		case 15:
			v.GridSpacing.X = atof(p.Value)
		case 25:
			v.GridSpacing.Y = atof(p.Value)
		case 16:
			v.ViewDirection.X = atof(p.Value)
		case 26:
			v.ViewDirection.Y = atof(p.Value)
		case 36:
			v.ViewDirection.Z = atof(p.Value)
		case 17:
			v.ViewTarget.X = atof(p.Value)
		case 27:
			v.ViewTarget.Y = atof(p.Value)
		case 37:
			v.ViewTarget.Z = atof(p.Value)
		case 40:
			v.ViewHeight = atof(p.Value)
		case 41:
			v.AspectRatio = atof(p.Value)
		case 42:
			v.LensLength = atof(p.Value)
		}
		return nil
	})
	return v, err
}

func encodeVport(w *core.Writer, v *Vport) {
	w.Pair(0, "VPORT")
	w.Handle(5, v.Handle)
	w.Handle(330, v.Owner)
	w.Pair(100, "AcDbSymbolTableRecord")
	w.Pair(100, "AcDbViewportTableRecord")
	w.Pair(2, v.Name)
	w.Int(70, v.Flags)
	w.Point2D(10, v.LowerLeft)
	w.Point2D(11, v.UpperRight)
	w.Point2D(12, v.Center)
	w.Point2D(13, v.SnapBase)
	w.Point2D(14, v.SnapSpacing)
	w.Point2D(15, v.GridSpacing)
	w.Point(16, v.ViewDirection)
	w.Point(17, v.ViewTarget)
	w.Float(40, v.ViewHeight)
	w.Float(41, v.AspectRatio)
	w.Float(42, v.LensLength)
}
