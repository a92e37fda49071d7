package render

// drawBanner lays out the 1500x500 banner: full-bleed panel fill, brand
// text left of center, QR tile flush right.
func (s *scene) drawBanner() error {
	s.fillPanel(0, 0, s.px(1500), s.px(500))

	if err := s.drawMark(80, 64, 60); err != nil {
		return err
	}

	s.dc.SetColor(s.panelText())
	s.setFont(true, 76)
	name := s.truncate(s.Name, s.px(900))
	s.dc.DrawStringAnchored(name, s.px(80), s.px(255), 0, 0.5)

	if s.Tagline != "" {
		s.setFont(false, 32)
		tagline := s.truncate(s.Tagline, s.px(900))
		s.dc.DrawStringAnchored(tagline, s.px(80), s.px(335), 0, 0.5)
	}

	return s.drawQRTile(1060, 70, 360)
}
