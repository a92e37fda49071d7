package render

import "github.com/fogleman/gg"

// drawCard lays out the 1050x600 business card: a colored left panel with
// the mark and brand text, and a white right half holding the QR tile and
// URL caption.
func (s *scene) drawCard() error {
	s.dc.SetColor(s.Palette.Background)
	s.dc.Clear()

	const panelW = 430.0
	s.fillPanel(0, 0, s.px(panelW), s.px(600))

	if err := s.drawMark(48, 48, 72); err != nil {
		return err
	}

	s.dc.SetColor(s.panelText())
	s.setFont(true, 52)
	name := s.truncate(s.Name, s.px(panelW-96))
	s.dc.DrawStringAnchored(name, s.px(48), s.px(215), 0, 0.5)

	if s.Tagline != "" {
		s.setFont(false, 26)
		s.dc.DrawStringWrapped(s.Tagline, s.px(48), s.px(265), 0, 0, s.px(panelW-96), 1.4, gg.AlignLeft)
	}

	if s.Contact != "" {
		s.setFont(false, 22)
		contact := s.truncate(s.Contact, s.px(panelW-96))
		s.dc.DrawStringAnchored(contact, s.px(48), s.px(540), 0, 0.5)
	}

	// QR tile centered in the right half.
	const tile = 310.0
	tileX := panelW + (1050-panelW-tile)/2
	if err := s.drawQRTile(tileX, 95, tile); err != nil {
		return err
	}

	s.dc.SetColor(s.Palette.Text)
	s.setFont(false, 24)
	caption := s.truncate(s.URL, s.px(1050-panelW-80))
	s.dc.DrawStringAnchored(caption, s.px(panelW+(1050-panelW)/2), s.px(470), 0.5, 0.5)

	return nil
}
