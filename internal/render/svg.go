package render

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
)

type svgRoot struct {
	XMLName xml.Name `xml:"svg"`
	Xmlns   string   `xml:"xmlns,attr"`
	Width   int      `xml:"width,attr"`
	Height  int      `xml:"height,attr"`
	ViewBox string   `xml:"viewBox,attr"`
	Rect    *svgRect `xml:"rect,omitempty"`
	Group   svgGroup `xml:"g"`
}

type svgRect struct {
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
	Fill   string `xml:"fill,attr"`
}

type svgGroup struct {
	Stroke        string    `xml:"stroke,attr"`
	StrokeWidth   string    `xml:"stroke-width,attr"`
	StrokeLinecap string    `xml:"stroke-linecap,attr"`
	Fill          string    `xml:"fill,attr"`
	Paths         []svgPath `xml:"path"`
}

type svgPath struct {
	D string `xml:"d,attr"`
}

// SVGOptions controls the look of an SVG export.
type SVGOptions struct {
	Stroke      string
	Background  string
	StrokeWidth float64
}

// DefaultSVGOptions matches the on-screen palette.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{Stroke: "#ffffff", Background: "#000000", StrokeWidth: DefaultStrokeWidth}
}

// WriteSVG writes one <path> per recorded stroke on a w×h canvas.
func WriteSVG(out io.Writer, w, h int, paths []*path.Data, opts SVGOptions) error {
	root := svgRoot{
		Xmlns:   "http://www.w3.org/2000/svg",
		Width:   w,
		Height:  h,
		ViewBox: "0 0 " + strconv.Itoa(w) + " " + strconv.Itoa(h),
		Group: svgGroup{
			Stroke:        opts.Stroke,
			StrokeWidth:   formatCoord(opts.StrokeWidth),
			StrokeLinecap: "butt",
			Fill:          "none",
			Paths:         make([]svgPath, 0, len(paths)),
		},
	}
	if opts.Background != "" {
		root.Rect = &svgRect{Width: "100%", Height: "100%", Fill: opts.Background}
	}
	for _, d := range paths {
		if s := pathData(d); s != "" {
			root.Group.Paths = append(root.Group.Paths, svgPath{D: s})
		}
	}
	if _, err := io.WriteString(out, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(out)
	enc.Indent("", "  ")
	if err := enc.Encode(root); err != nil {
		return err
	}
	_, err := io.WriteString(out, "\n")
	return err
}

// pathData renders the move and line commands of d in SVG path syntax.
func pathData(d *path.Data) string {
	var b strings.Builder
	i := 0
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo, path.CmdLineTo:
			pt := d.Coords[i]
			i++
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			if cmd == path.CmdMoveTo {
				b.WriteByte('M')
			} else {
				b.WriteByte('L')
			}
			b.WriteString(formatCoord(pt.X))
			b.WriteByte(' ')
			b.WriteString(formatCoord(pt.Y))
		case path.CmdQuadTo:
			i += 2
		case path.CmdCubeTo:
			i += 3
		case path.CmdClose:
			b.WriteString(" Z")
		}
	}
	return b.String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
