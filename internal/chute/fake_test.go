package chute

import "image/color"

type call struct {
	op      string
	x, y    float64
	w, h    float64
	r, line float64
	clr     color.NRGBA
}

// recorder is a Surface that remembers every draw call.
type recorder struct {
	calls []call
}

func nrgba(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func (r *recorder) Clear() { r.calls = r.calls[:0] }

func (r *recorder) FillRect(x, y, w, h float64, clr color.Color) {
	r.calls = append(r.calls, call{op: "fillRect", x: x, y: y, w: w, h: h, clr: nrgba(clr)})
}

func (r *recorder) StrokeRect(x, y, w, h, lw float64, clr color.Color) {
	r.calls = append(r.calls, call{op: "strokeRect", x: x, y: y, w: w, h: h, line: lw, clr: nrgba(clr)})
}

func (r *recorder) StrokeRoundedRect(x, y, w, h, radius, lw float64, clr color.Color) {
	r.calls = append(r.calls, call{op: "strokeRoundedRect", x: x, y: y, w: w, h: h, r: radius, line: lw, clr: nrgba(clr)})
}

func (r *recorder) FillCircle(cx, cy, radius float64, clr color.Color) {
	r.calls = append(r.calls, call{op: "fillCircle", x: cx, y: cy, r: radius, clr: nrgba(clr)})
}

func (r *recorder) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

type fixedTheme map[string]string

func (t fixedTheme) Lookup(name string) string { return t[name] }
