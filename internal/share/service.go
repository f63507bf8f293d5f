package share

import (
	"context"
	"errors"

	"github.com/wichananm65/kriuke-snack/internal/notice"
	"github.com/wichananm65/kriuke-snack/internal/product"
	"github.com/wichananm65/kriuke-snack/internal/whatsapp"
)

var ErrNoEcommerceLinks = errors.New("Produk ini belum tersedia di e-commerce.")

// Products is the part of the catalog this package reads.
type Products interface {
	Get(ctx context.Context, id string) (product.Product, error)
}

type Service struct {
	products  Products
	baseURL   string
	number    string
	clipboard Clipboard
	notifier  notice.Notifier
}

func NewService(products Products, baseURL, number string, cb Clipboard, n notice.Notifier) *Service {
	if cb == nil {
		cb = SystemClipboard
	}
	if n == nil {
		n = notice.Discard
	}
	if number == "" {
		number = whatsapp.DefaultNumber
	}
	return &Service{products: products, baseURL: baseURL, number: number, clipboard: cb, notifier: n}
}

func (s *Service) Sheet(ctx context.Context, id string) (Sheet, error) {
	p, err := s.products.Get(ctx, id)
	if err != nil {
		return Sheet{}, err
	}
	return NewSheet(s.baseURL, p), nil
}

// CopyLink puts the product URL on the clipboard. The outcome is reported
// through the notifier; the returned error is informational only.
func (s *Service) CopyLink(ctx context.Context, id string) (string, error) {
	p, err := s.products.Get(ctx, id)
	if err != nil {
		return "", err
	}
	link := ProductURL(s.baseURL, p.ID)
	if err := s.clipboard.WriteAll(link); err != nil {
		s.notifier.Show(MsgCopyFailed)
		return link, err
	}
	s.notifier.Show(MsgCopied)
	return link, nil
}

func (s *Service) BuyNow(ctx context.Context, id string) (string, error) {
	p, err := s.products.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return whatsapp.Link(s.number, whatsapp.BuyNowMessage(p)), nil
}

func (s *Service) Enquiry(ctx context.Context, id string) (string, error) {
	p, err := s.products.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return whatsapp.Link(s.number, whatsapp.EnquiryMessage(p)), nil
}

// Ecommerce lists the marketplace links of a product. Products without any
// link yield ErrNoEcommerceLinks.
func (s *Service) Ecommerce(ctx context.Context, id string) ([]product.PlatformLink, error) {
	p, err := s.products.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.HasEcommerceLinks() {
		return nil, ErrNoEcommerceLinks
	}
	return p.EcommerceLinks.Links(), nil
}
