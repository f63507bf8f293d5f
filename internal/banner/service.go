package banner

import "github.com/wichananm65/kriuke-snack/internal/notice"

// Slide is the promo list together with the slide currently shown.
type Slide struct {
	Promos  []Promo `json:"promos"`
	Current int     `json:"current"`
}

// Service drives the promo slider.
type Service struct {
	promos   []Promo
	carousel *notice.Carousel
}

// NewService wires promos to carousel. A nil carousel gets one on the real
// clock with the default interval.
func NewService(promos []Promo, carousel *notice.Carousel) *Service {
	if carousel == nil {
		carousel = notice.NewCarousel(nil, 0, len(promos))
	}
	return &Service{promos: promos, carousel: carousel}
}

func (s *Service) List() []Promo {
	return append([]Promo(nil), s.promos...)
}

func (s *Service) Current() Slide {
	return Slide{Promos: s.List(), Current: s.carousel.Index()}
}

// Show jumps to slide i and restarts the auto-advance countdown.
func (s *Service) Show(i int) Slide {
	s.carousel.GoTo(i)
	return s.Current()
}

func (s *Service) Next() Slide {
	s.carousel.Next()
	return s.Current()
}

func (s *Service) Prev() Slide {
	s.carousel.Prev()
	return s.Current()
}

func (s *Service) Start() { s.carousel.Start() }
func (s *Service) Stop()  { s.carousel.Close() }
