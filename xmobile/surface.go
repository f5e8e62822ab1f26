//go:build android

package xmobile

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/draw"
	"math"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/gl"

	"github.com/phanxgames/medusa"
)

const quadVertSrc = `
attribute vec2 aPos;
attribute vec2 aUV;
varying vec2 vUV;
void main() {
  vUV = aUV;
  gl_Position = vec4(aPos, 0.0, 1.0);
}`

const quadFragSrc = `
precision mediump float;
varying vec2 vUV;
uniform sampler2D uTex;
void main() {
  gl_FragColor = texture2D(uTex, vUV);
}`

// glSurface is a medusa.Surface drawing textured quads into the window's
// GL context. Unlock publishes the frame.
type glSurface struct {
	a     app.App
	glctx gl.Context
	w, h  int

	locked bool

	prog       gl.Program
	vbo        gl.Buffer
	tex        gl.Texture
	texW, texH int
	aPos       gl.Attrib
	aUV        gl.Attrib
	uTex       gl.Uniform

	scratch *image.RGBA
}

func (s *glSurface) Size() (int, int) { return s.w, s.h }

func (s *glSurface) Valid() bool { return s.glctx != nil && s.w > 0 && s.h > 0 }

func (s *glSurface) Lock() (medusa.Canvas, error) {
	if !s.Valid() {
		return nil, medusa.ErrSurfaceLost
	}
	if s.locked {
		return nil, medusa.ErrSurfaceLocked
	}
	s.locked = true
	s.glctx.Viewport(0, 0, s.w, s.h)
	return s, nil
}

func (s *glSurface) Unlock(medusa.Canvas) {
	if !s.locked {
		return
	}
	s.locked = false
	s.a.Publish()
}

// DrawImage uploads src and draws the sr region stretched over dr.
func (s *glSurface) DrawImage(src image.Image, sr, dr image.Rectangle, mode medusa.BlendMode) {
	if sr.Empty() || dr.Empty() {
		return
	}
	pix, tw, th := s.pixels(src)

	ctx := s.glctx
	ctx.ActiveTexture(gl.TEXTURE0)
	ctx.BindTexture(gl.TEXTURE_2D, s.tex)
	if tw != s.texW || th != s.texH {
		ctx.TexImage2D(gl.TEXTURE_2D, 0, int(gl.RGBA), tw, th, gl.RGBA, gl.UNSIGNED_BYTE, nil)
		s.texW, s.texH = tw, th
	}
	ctx.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, tw, th, gl.RGBA, gl.UNSIGNED_BYTE, pix)

	switch mode {
	case medusa.BlendCopy:
		ctx.Disable(gl.BLEND)
	case medusa.BlendOver:
		ctx.Enable(gl.BLEND)
		ctx.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	case medusa.BlendDstIn:
		ctx.Enable(gl.BLEND)
		ctx.BlendFunc(gl.ZERO, gl.SRC_ALPHA)
	}

	// GL's viewport origin is the bottom-left corner.
	ctx.Viewport(dr.Min.X, s.h-dr.Max.Y, dr.Dx(), dr.Dy())

	u0 := float32(sr.Min.X) / float32(tw)
	v0 := float32(sr.Min.Y) / float32(th)
	u1 := float32(sr.Max.X) / float32(tw)
	v1 := float32(sr.Max.Y) / float32(th)
	verts := []float32{
		-1, -1, u0, v1,
		1, -1, u1, v1,
		-1, 1, u0, v0,
		1, 1, u1, v0,
	}

	ctx.UseProgram(s.prog)
	ctx.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	ctx.BufferData(gl.ARRAY_BUFFER, f32bytes(verts), gl.STREAM_DRAW)
	ctx.EnableVertexAttribArray(s.aPos)
	ctx.EnableVertexAttribArray(s.aUV)
	ctx.VertexAttribPointer(s.aPos, 2, gl.FLOAT, false, 16, 0)
	ctx.VertexAttribPointer(s.aUV, 2, gl.FLOAT, false, 16, 8)
	ctx.Uniform1i(s.uTex, 0)
	ctx.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
}

// pixels returns tightly packed premultiplied RGBA bytes for src.
func (s *glSurface) pixels(src image.Image) ([]byte, int, int) {
	b := src.Bounds()
	if rgba, ok := src.(*image.RGBA); ok && rgba.Stride == 4*b.Dx() {
		return rgba.Pix[:4*b.Dx()*b.Dy()], b.Dx(), b.Dy()
	}
	if s.scratch == nil || s.scratch.Bounds().Size() != b.Size() {
		s.scratch = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	}
	draw.Draw(s.scratch, s.scratch.Bounds(), src, b.Min, draw.Src)
	return s.scratch.Pix, b.Dx(), b.Dy()
}

// initGL builds the quad program, vertex buffer and texture.
func (s *glSurface) initGL(glctx gl.Context) error {
	prog, err := linkProgram(glctx, quadVertSrc, quadFragSrc)
	if err != nil {
		return err
	}
	s.glctx = glctx
	s.prog = prog
	s.vbo = glctx.CreateBuffer()
	s.tex = glctx.CreateTexture()
	s.texW, s.texH = 0, 0

	glctx.ActiveTexture(gl.TEXTURE0)
	glctx.BindTexture(gl.TEXTURE_2D, s.tex)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	s.aPos = glctx.GetAttribLocation(prog, "aPos")
	s.aUV = glctx.GetAttribLocation(prog, "aUV")
	s.uTex = glctx.GetUniformLocation(prog, "uTex")
	return nil
}

// destroyGL releases the GL objects; the surface is invalid afterwards.
func (s *glSurface) destroyGL() {
	if s.glctx == nil {
		return
	}
	s.glctx.DeleteTexture(s.tex)
	s.glctx.DeleteBuffer(s.vbo)
	s.glctx.DeleteProgram(s.prog)
	s.glctx = nil
	s.scratch = nil
}

func f32bytes(vals []float32) []byte {
	out := make([]byte, len(vals)*4)
	for i, v := range vals {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}

func compileShader(glctx gl.Context, kind gl.Enum, src string) (gl.Shader, error) {
	sh := glctx.CreateShader(kind)
	glctx.ShaderSource(sh, src)
	glctx.CompileShader(sh)
	if glctx.GetShaderi(sh, gl.COMPILE_STATUS) == 0 {
		log := glctx.GetShaderInfoLog(sh)
		glctx.DeleteShader(sh)
		return gl.Shader{}, fmt.Errorf("shader compile failed: %s", log)
	}
	return sh, nil
}

func linkProgram(glctx gl.Context, vertSrc, fragSrc string) (gl.Program, error) {
	vs, err := compileShader(glctx, gl.VERTEX_SHADER, vertSrc)
	if err != nil {
		return gl.Program{}, err
	}
	fs, err := compileShader(glctx, gl.FRAGMENT_SHADER, fragSrc)
	if err != nil {
		glctx.DeleteShader(vs)
		return gl.Program{}, err
	}
	prog := glctx.CreateProgram()
	glctx.AttachShader(prog, vs)
	glctx.AttachShader(prog, fs)
	glctx.LinkProgram(prog)
	glctx.DeleteShader(vs)
	glctx.DeleteShader(fs)
	if glctx.GetProgrami(prog, gl.LINK_STATUS) == 0 {
		log := glctx.GetProgramInfoLog(prog)
		glctx.DeleteProgram(prog)
		return gl.Program{}, fmt.Errorf("program link failed: %s", log)
	}
	return prog, nil
}
