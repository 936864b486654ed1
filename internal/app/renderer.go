package app

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"bytebeat/internal/synth"
	"bytebeat/internal/ui"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// flatStride is pos(2) + color(4) floats.
const flatStride = 6

type Renderer struct {
	// Flat program: boxes and the waveform.
	flatProg uint32
	flatVAO  uint32
	flatVBO  uint32
	flatURes int32
	rectBuf  []float32
	lineBuf  []float32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32

	fbW, fbH int
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(flatVertSrc, flatFragSrc)
	if err != nil {
		return nil, fmt.Errorf("flat program: %w", err)
	}
	r := &Renderer{flatProg: prog}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(flatStride * 4)
	gl.BufferData(gl.ARRAY_BUFFER, (synth.BlockFrames+1)*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aColor
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, glOffset(2*4))
	r.flatVAO = vao
	r.flatVBO = vbo

	gl.UseProgram(prog)
	r.flatURes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.flatVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.flatVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.flatProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	r.fbW, r.fbH = fbW, fbH
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawRect queues a filled box.
func (r *Renderer) DrawRect(b ui.Rect, col ui.RGB, alpha float32) {
	cr, cg, cb := col.Floats()
	x0, y0, x1, y1 := b.X, b.Y, b.X+b.W, b.Y+b.H
	r.rectBuf = append(r.rectBuf,
		x0, y0, cr, cg, cb, alpha,
		x1, y0, cr, cg, cb, alpha,
		x0, y1, cr, cg, cb, alpha,
		x1, y0, cr, cg, cb, alpha,
		x1, y1, cr, cg, cb, alpha,
		x0, y1, cr, cg, cb, alpha,
	)
}

// FlushRects draws all queued boxes.
func (r *Renderer) FlushRects() {
	r.drawFlat(r.rectBuf, gl.TRIANGLES)
	r.rectBuf = r.rectBuf[:0]
}

// DrawPolyline draws path (x,y pairs in framebuffer pixels) as one line
// strip offset by (ox, oy).
func (r *Renderer) DrawPolyline(path []float32, ox, oy float32, col ui.RGB) {
	cr, cg, cb := col.Floats()
	r.lineBuf = r.lineBuf[:0]
	for i := 0; i+1 < len(path); i += 2 {
		r.lineBuf = append(r.lineBuf, ox+path[i], oy+path[i+1], cr, cg, cb, 1)
	}
	r.drawFlat(r.lineBuf, gl.LINE_STRIP)
}

func (r *Renderer) drawFlat(buf []float32, mode uint32) {
	if len(buf) == 0 {
		return
	}
	gl.UseProgram(r.flatProg)
	gl.BindVertexArray(r.flatVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.flatVBO)
	gl.Uniform2f(r.flatURes, float32(r.fbW), float32(r.fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BufferData(gl.ARRAY_BUFFER, len(buf)*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(mode, 0, int32(len(buf)/flatStride))
	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}
