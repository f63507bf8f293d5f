package navigation

import "fmt"

// Page is one of the fixed storefront pages.
type Page string

const (
	PageHome     Page = "home"
	PageDetail   Page = "detail"
	PageCart     Page = "cart"
	PageCheckout Page = "checkout"
	PageLiked    Page = "liked"
	PageLogin    Page = "login"
	PageAdmin    Page = "admin"
)

var Pages = []Page{PageHome, PageDetail, PageCart, PageCheckout, PageLiked, PageLogin, PageAdmin}

func ParsePage(s string) (Page, error) {
	for _, p := range Pages {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown page %q", s)
}

// AdminMode is the sub-view shown inside the admin area.
type AdminMode string

const (
	AdminDashboard AdminMode = "dashboard"
	AdminEdit      AdminMode = "edit"
)

// AdminView is the admin sub-view. EditingID is empty for a new product.
type AdminView struct {
	Mode      AdminMode `json:"mode"`
	EditingID string    `json:"editingId,omitempty"`
}
