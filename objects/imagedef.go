package objects

import (
	"github.com/zooyer/godxf/core"
	"github.com/zooyer/godxf/version"
)

// ImageDef is an IMAGEDEF object: a raster image reference, storing the
// path on disk and the image's native pixel size and resolution.
type ImageDef struct {
	Header
	FilePath    string
	PixelSize   core.Point // only X/Y meaningful
	ImageSize   core.Point // only X/Y meaningful
	IsLoaded    bool
	Resolution  int
}

func init() {
	Register("IMAGEDEF", func() Object { return &ImageDef{IsLoaded: true} })
}

func (i *ImageDef) TypeName() string { return "IMAGEDEF" }

func (i *ImageDef) Decode(r *core.Reader) error {
	return decodeBody(r, &i.Header, func(code int, p core.CodePair) error {
		switch code {
		case 1:
			i.FilePath = p.Value
		case 10:
			i.PixelSize.X = atof(p.Value)
		case 20:
			i.PixelSize.Y = atof(p.Value)
		case 11:
			i.ImageSize.X = atof(p.Value)
		case 21:
			i.ImageSize.Y = atof(p.Value)
		case 280:
			i.IsLoaded = core.ParseBool(p.Value)
		case 281:
			i.Resolution = atoi(p.Value)
		}
		return nil
	})
}

func (i *ImageDef) Encode(w *core.Writer, target version.Version) {
	w.Pair(0, "IMAGEDEF")
	i.encodeCommon(w, target)
	writeSubclass(w, target, "AcDbRasterImageDef")
	w.Pair(1, i.FilePath)
	w.Point2D(10, i.PixelSize)
	w.Point2D(11, i.ImageSize)
	w.Bool(280, i.IsLoaded)
	w.Int(281, i.Resolution)
	encodeExtras(w, &i.Header)
}
