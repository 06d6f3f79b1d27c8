package tables

import "github.com/zooyer/godxf/core"

// View is a VIEW table record.
type View struct {
	Handle        uint64
	Owner         uint64
	Name          string
	Flags         int
	Height        float64
	Width         float64
	Center        core.Point
	ViewDirection core.Point
	TargetPoint   core.Point
	LensLength    float64
	FrontClip     float64
	BackClip      float64
	TwistAngle    float64
}

func (v *View) RecordName() string { return v.Name }

func decodeView(r *core.Reader) (*View, error) {
	v := &View{}
	err := decodeCommonAndFields(r, &v.Handle, &v.Owner, func(code int, p core.CodePair) error {
		switch code {
		case 2:
			v.Name = p.Value
		case 70:
			v.Flags = atoi(p.Value)
		case 40:
			v.Height = atof(p.Value)
		case 41:
			v.Width = atof(p.Value)
		case 10:
			v.Center.X = atof(p.Value)
		case 20:
			v.Center.Y = atof(p.Value)
		case 11:
			v.ViewDirection.X = atof(p.Value)
		case 21:
			v.ViewDirection.Y = atof(p.Value)
		case 31:
			v.ViewDirection.Z = atof(p.Value)
		case 12:
			v.TargetPoint.X = atof(p.Value)
		case 22:
			v.TargetPoint.Y = atof(p.Value)
		case 32:
			v.TargetPoint.Z = atof(p.Value)
		case 42:
			v.LensLength = atof(p.Value)
		case 43:
			v.FrontClip = atof(p.Value)
		case 44:
			v.BackClip = atof(p.Value)
		case 50:
			v.TwistAngle = atof(p.Value)
		}
		return nil
	})
	return v, err
}

func encodeView(w *core.Writer, v *View) {
	w.Pair(0, "VIEW")
	w.Handle(5, v.Handle)
	w.Handle(330, v.Owner)
	w.Pair(100, "AcDbSymbolTableRecord")
	w.Pair(100, "AcDbViewTableRecord")
	w.Pair(2, v.Name)
	w.Int(70, v.Flags)
	w.Float(40, v.Height)
	w.Float(41, v.Width)
	w.Point2D(10, v.Center)
	w.Point(11, v.ViewDirection)
	w.Point(12, v.TargetPoint)
	w.Float(42, v.LensLength)
	w.Float(43, v.FrontClip)
	w.Float(44, v.BackClip)
	w.Float(50, v.TwistAngle)
}
