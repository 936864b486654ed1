package ui

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

// Floats returns the colour as normalized components for GL.
func (c RGB) Floats() (float32, float32, float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

var Palette = struct {
	Background RGB
	Scope      RGB
	Waveform   RGB
	Midline    RGB
	Field      RGB
	FieldFocus RGB
	Button     RGB
	ButtonLit  RGB
	Text       RGB
	TextDim    RGB
	Caret      RGB
	Error      RGB
	OK         RGB
}{
	Background: RGB{R: 18, G: 18, B: 24},
	Scope:      RGB{R: 8, G: 10, B: 12},
	Waveform:   RGB{R: 90, G: 255, B: 140},
	Midline:    RGB{R: 40, G: 48, B: 56},
	Field:      RGB{R: 36, G: 38, B: 48},
	FieldFocus: RGB{R: 52, G: 56, B: 72},
	Button:     RGB{R: 60, G: 64, B: 84},
	ButtonLit:  RGB{R: 96, G: 110, B: 160},
	Text:       RGB{R: 235, G: 235, B: 240},
	TextDim:    RGB{R: 150, G: 150, B: 165},
	Caret:      RGB{R: 255, G: 220, B: 90},
	Error:      RGB{R: 255, G: 90, B: 90},
	OK:         RGB{R: 120, G: 220, B: 140},
}
