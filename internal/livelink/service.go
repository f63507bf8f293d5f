package livelink

import (
	"context"
	"strings"

	"github.com/wichananm65/kriuke-snack/internal/notice"
)

type Service struct {
	repo     Repository
	notifier notice.Notifier
}

func NewService(repo Repository, n notice.Notifier) *Service {
	if n == nil {
		n = notice.Discard
	}
	return &Service{repo: repo, notifier: n}
}

func (s *Service) Get(ctx context.Context) Links {
	return s.repo.Get(ctx)
}

// Update replaces both links. Surrounding whitespace is dropped before the
// completeness check.
func (s *Service) Update(ctx context.Context, links Links) (Links, error) {
	links.Tiktok = strings.TrimSpace(links.Tiktok)
	links.Shopee = strings.TrimSpace(links.Shopee)
	if err := links.Validate(); err != nil {
		return Links{}, err
	}
	if err := s.repo.Set(ctx, links); err != nil {
		return Links{}, err
	}
	s.notifier.Show(MsgUpdated)
	return links, nil
}
