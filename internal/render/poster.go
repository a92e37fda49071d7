package render

// drawPoster lays out the 900x1350 poster: a top band with the mark and
// brand name, tagline and contact in the body, a large outlined QR tile
// and the URL caption beneath it.
func (s *scene) drawPoster() error {
	s.dc.SetColor(s.Palette.Background)
	s.dc.Clear()

	s.fillPanel(0, 0, s.px(900), s.px(380))

	if err := s.drawMark(72, 56, 64); err != nil {
		return err
	}

	s.dc.SetColor(s.panelText())
	s.setFont(true, 64)
	name := s.truncate(s.Name, s.px(760))
	s.dc.DrawStringAnchored(name, s.px(450), s.px(225), 0.5, 0.5)

	s.dc.SetColor(s.Palette.Text)
	if s.Tagline != "" {
		s.setFont(false, 34)
		tagline := s.truncate(s.Tagline, s.px(780))
		s.dc.DrawStringAnchored(tagline, s.px(450), s.px(462), 0.5, 0.5)
	}
	if s.Contact != "" {
		s.setFont(false, 26)
		contact := s.truncate(s.Contact, s.px(780))
		s.dc.DrawStringAnchored(contact, s.px(450), s.px(520), 0.5, 0.5)
	}

	const tile = 560.0
	if err := s.drawQRTile(170, 600, tile); err != nil {
		return err
	}

	// Outline so the white tile reads against the white body.
	s.dc.SetColor(s.Palette.Secondary)
	s.dc.SetLineWidth(s.px(4))
	s.dc.DrawRoundedRectangle(s.px(170), s.px(600), s.px(tile), s.px(tile), s.px(tile)*0.06)
	s.dc.Stroke()

	s.setFont(false, 28)
	s.dc.SetColor(s.Palette.Text)
	caption := s.truncate(s.URL, s.px(700))
	s.dc.DrawStringAnchored(caption, s.px(450), s.px(1230), 0.5, 0.5)

	// Bottom accent bar.
	s.fillPanel(0, s.px(1326), s.px(900), s.px(24))

	return nil
}
