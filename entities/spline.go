package entities

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

// Spline is a SPLINE entity: a NURBS curve given by its knot vector and
// control points, plus an optional set of interpolated fit points.
type Spline struct {
	Header
	Flags        int
	Degree       int
	Knots        []float64
	ControlPts   []core.Point
	FitPoints    []core.Point
	Weights      []float64
}

func init() {
	Register("SPLINE", func() Entity { return &Spline{Header: newHeader()} })
}

func (s *Spline) TypeName() string { return "SPLINE" }

func (s *Spline) Decode(r *core.Reader) error {
	var pendingControl *core.Point
	var pendingFit *core.Point
	flushControl := func() {
		if pendingControl != nil {
			s.ControlPts = append(s.ControlPts, *pendingControl)
			pendingControl = nil
		}
	}
	flushFit := func() {
		if pendingFit != nil {
			s.FitPoints = append(s.FitPoints, *pendingFit)
			pendingFit = nil
		}
	}
	err := decodeBody(r, &s.Header, func(code int, p core.CodePair) error {
		switch code {
		case 70:
			s.Flags = atoi(p.Value)
		case 71:
			s.Degree = atoi(p.Value)
		case 40:
			s.Knots = append(s.Knots, atof(p.Value))
		case 41:
			s.Weights = append(s.Weights, atof(p.Value))
		case 10:
			flushControl()
			pendingControl = &core.Point{X: atof(p.Value)}
		case 20:
			if pendingControl != nil {
				pendingControl.Y = atof(p.Value)
			}
		case 30:
			if pendingControl != nil {
				pendingControl.Z = atof(p.Value)
			}
		case 11:
			flushFit()
			pendingFit = &core.Point{X: atof(p.Value)}
		case 21:
			if pendingFit != nil {
				pendingFit.Y = atof(p.Value)
			}
		case 31:
			if pendingFit != nil {
				pendingFit.Z = atof(p.Value)
			}
		}
		return nil
	})
	flushControl()
	flushFit()
	return err
}

func (s *Spline) Encode(w *core.Writer, target version.Version) {
	w.Pair(0, "SPLINE")
	s.encodeCommon(w, target)
	writeSubclass(w, target, "AcDbSpline")
	w.Int(70, s.Flags)
	w.Int(71, s.Degree)
	w.Int(72, len(s.Knots))
	w.Int(73, len(s.ControlPts))
	w.Int(74, len(s.FitPoints))
	for _, k := range s.Knots {
		w.Float(40, k)
	}
	for _, wt := range s.Weights {
		w.Float(41, wt)
	}
	for _, c := range s.ControlPts {
		w.Point(10, c)
	}
	for _, f := range s.FitPoints {
		w.Point(11, f)
	}
	encodeExtras(w, &s.Header)
}
