package render

import "github.com/fogleman/gg"

// drawLogo lays out the 800x800 logo: a circular badge with the monogram,
// the brand name beneath it and a small QR tile in the corner. This is the
// only template that honors a transparent background.
func (s *scene) drawLogo() error {
	if s.Palette.Background.A != 0 {
		s.dc.SetColor(s.Palette.Background)
		s.dc.Clear()
	}

	// Badge.
	cx, cy, r := s.px(400), s.px(330), s.px(210)
	if s.Gradient {
		grad := gg.NewLinearGradient(cx-r, cy+r, cx+r, cy-r)
		grad.AddColorStop(0, s.Palette.Primary)
		grad.AddColorStop(1, s.Palette.Secondary)
		s.dc.SetFillStyle(grad)
	} else {
		s.dc.SetColor(s.Palette.Primary)
	}
	s.dc.DrawCircle(cx, cy, r)
	s.dc.Fill()

	s.dc.SetColor(s.panelText())
	s.setFont(true, 150)
	s.dc.DrawStringAnchored(initials(s.Name), cx, cy, 0.5, 0.35)

	s.dc.SetColor(s.Palette.Text)
	s.setFont(true, 46)
	name := s.truncate(s.Name, s.px(700))
	s.dc.DrawStringAnchored(name, s.px(400), s.px(625), 0.5, 0.5)

	if s.Tagline != "" {
		s.setFont(false, 26)
		tagline := s.truncate(s.Tagline, s.px(700))
		s.dc.DrawStringAnchored(tagline, s.px(400), s.px(680), 0.5, 0.5)
	}

	return s.drawQRTile(624, 624, 140)
}
