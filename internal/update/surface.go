package update

// SurfaceState records every presentation decision the form controller
// makes. The terminal view is rendered from it.
type SurfaceState struct {
	Hidden   map[string]bool
	Disabled map[string]bool
	Text     map[string]string
	Classes  map[string]map[string]bool
	Focused  string
}

func NewSurfaceState() *SurfaceState {
	return &SurfaceState{
		Hidden:   make(map[string]bool),
		Disabled: make(map[string]bool),
		Text:     make(map[string]string),
		Classes:  make(map[string]map[string]bool),
	}
}

func (s *SurfaceState) SetHidden(ref string, hidden bool)     { s.Hidden[ref] = hidden }
func (s *SurfaceState) SetDisabled(ref string, disabled bool) { s.Disabled[ref] = disabled }
func (s *SurfaceState) SetText(ref string, text string)       { s.Text[ref] = text }
func (s *SurfaceState) Focus(ref string)                      { s.Focused = ref }

func (s *SurfaceState) SetClass(ref string, class string, on bool) {
	classes, ok := s.Classes[ref]
	if !ok {
		classes = make(map[string]bool)
		s.Classes[ref] = classes
	}
	classes[class] = on
}

func (s *SurfaceState) IsHidden(ref string) bool   { return s.Hidden[ref] }
func (s *SurfaceState) IsDisabled(ref string) bool { return s.Disabled[ref] }
func (s *SurfaceState) TextOf(ref string) string   { return s.Text[ref] }

func (s *SurfaceState) HasClass(ref string, class string) bool {
	return s.Classes[ref][class]
}
