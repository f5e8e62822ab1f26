package medusa

import "image"

// sliderRect is where the slider buffer lands in the frame: a w×h rectangle
// centered on the cursor.
func sliderRect(c Cursor, w, h int) image.Rectangle {
	x := int(c.X - float64(w/2))
	y := int(c.Y - float64(h/2))
	return image.Rect(x, y, x+w, y+h)
}

// eyesOffset is the pupil-tracking displacement of the eyes sprite inside
// its buffer for a cursor in a w×h frame. The offset spans about ±rx/2
// horizontally and ±ry/2 vertically.
func eyesOffset(c Cursor, w, h, rx, ry int) image.Point {
	return image.Pt(
		((int(c.X)-w/2+2)*rx)/w,
		((int(c.Y)-h/2+2)*ry)/h,
	)
}

// scaleRect maps r from a space of size from into a space of size to.
func scaleRect(r image.Rectangle, from, to image.Point) image.Rectangle {
	if from == to {
		return r
	}
	fx := float64(to.X) / float64(from.X)
	fy := float64(to.Y) / float64(from.Y)
	return image.Rect(
		int(float64(r.Min.X)*fx), int(float64(r.Min.Y)*fy),
		int(float64(r.Max.X)*fx), int(float64(r.Max.Y)*fy),
	)
}

// compose draws the layered scene into the frame buffer:
//
//	dark background
//	light background revealed through the slider mask at the cursor
//	eyes sprite shifted toward the cursor, cut by the eyes mask
//	overlay while touched
func (e *Engine) compose() {
	s := e.scene
	fb := s.frame.Bounds()
	frame := newImageCanvas(s.frame, e.interp)

	frame.DrawImage(s.dark, extent(s.dark), fb, BlendCopy)

	sb := s.slider.Bounds()
	dr := sliderRect(e.cursor, sb.Dx(), sb.Dy())
	slider := newImageCanvas(s.slider, e.interp)
	slider.Clear()
	lr := scaleRect(dr, fb.Size(), extent(s.light).Size())
	slider.DrawImage(s.light, lr, sb, BlendCopy)
	slider.Mask(s.sliderMask, sb.Min, e.sliderAlpha.Alpha())
	frame.DrawImage(s.slider, sb, dr, BlendOver)

	eb := s.eyesBuf.Bounds()
	off := eyesOffset(e.cursor, fb.Dx(), fb.Dy(), e.cfg.EyesRangeX, e.cfg.EyesRangeY)
	eyes := newImageCanvas(s.eyesBuf, e.interp)
	eyes.Clear()
	eyes.DrawImage(s.eyes, extent(s.eyes), eb.Add(off), BlendCopy)
	eyes.Mask(s.eyesMask, eb.Min, e.eyesAlpha.Alpha())
	frame.DrawImage(s.eyesBuf, eb, eb.Add(s.eyesAt), BlendOver)

	if e.touched {
		frame.DrawImage(s.overlay, extent(s.overlay), fb, BlendOver)
	}
}
