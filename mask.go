package medusa

import "image"

// dstIn composites m onto dst at p with the destination-in operator: every
// covered dst pixel is multiplied by the mask coverage times alpha/255.
// Pixels outside the mask rectangle are left alone. dst is premultiplied, so
// all four channels scale together.
func dstIn(dst *image.RGBA, p image.Point, m *image.Alpha, alpha uint8) {
	mb := m.Bounds()
	r := mb.Sub(mb.Min).Add(p).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		di := dst.PixOffset(r.Min.X, y)
		mi := m.PixOffset(r.Min.X-p.X+mb.Min.X, y-p.Y+mb.Min.Y)
		for x := r.Min.X; x < r.Max.X; x++ {
			k := mul255(m.Pix[mi], alpha)
			switch k {
			case 0xff:
			case 0:
				dst.Pix[di+0] = 0
				dst.Pix[di+1] = 0
				dst.Pix[di+2] = 0
				dst.Pix[di+3] = 0
			default:
				dst.Pix[di+0] = mul255(dst.Pix[di+0], k)
				dst.Pix[di+1] = mul255(dst.Pix[di+1], k)
				dst.Pix[di+2] = mul255(dst.Pix[di+2], k)
				dst.Pix[di+3] = mul255(dst.Pix[di+3], k)
			}
			di += 4
			mi++
		}
	}
}

// mul255 returns a*b/255 rounded to nearest.
func mul255(a, b uint8) uint8 {
	return uint8((uint32(a)*uint32(b) + 127) / 255)
}
