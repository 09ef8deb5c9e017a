package colour

import "raycast-renderer/internal/mathutil"

// Colour is a linear RGB colour. Channels are nominally in [0, 1].
type Colour struct {
	R, G, B float32
}

var (
	Black   = Colour{0, 0, 0}
	White   = Colour{1, 1, 1}
	SkyBlue = Colour{0.5, 0.75, 1.0}
)

func New(r, g, b float32) Colour {
	return Colour{r, g, b}
}

func (c Colour) Add(o Colour) Colour {
	return Colour{c.R + o.R, c.G + o.G, c.B + o.B}
}

func (c Colour) Scale(s float32) Colour {
	return Colour{c.R * s, c.G * s, c.B * s}
}

func (c Colour) Div(s float32) Colour {
	return Colour{c.R / s, c.G / s, c.B / s}
}

// Mul multiplies channel-wise (attenuation).
func (c Colour) Mul(o Colour) Colour {
	return Colour{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Lerp blends from c (t=0) to o (t=1): c*(1-t) + o*t.
func (c Colour) Lerp(o Colour, t float32) Colour {
	return c.Scale(1 - t).Add(o.Scale(t))
}

// Sqrt applies gamma 2.0 correction.
func (c Colour) Sqrt() Colour {
	return Colour{mathutil.Sqrt(c.R), mathutil.Sqrt(c.G), mathutil.Sqrt(c.B)}
}

// ToBytes maps each channel to uint8(c * 255.99).
//
// Channels must already be in [0, 1]; values outside that range are not
// clamped and the conversion result is unspecified.
func (c Colour) ToBytes() (r, g, b uint8) {
	return uint8(c.R * 255.99), uint8(c.G * 255.99), uint8(c.B * 255.99)
}
