// Package navigation holds the page state machine of the storefront.
package navigation

import (
	"context"
	"errors"
	"sync"
)

var ErrNoTarget = errors.New("modal needs a target")

// Session reports whether an admin is logged in.
type Session interface {
	Get(ctx context.Context) bool
}

// State is a snapshot of the router. Page is the page actually rendered.
type State struct {
	Page               Page       `json:"page"`
	Requested          Page       `json:"requested"`
	SelectedProductID  string     `json:"selectedProductId,omitempty"`
	Admin              AdminView  `json:"admin"`
	Modal              ModalState `json:"modal"`
	ShareProductID     string     `json:"shareProductId,omitempty"`
	EcommerceProductID string     `json:"ecommerceProductId,omitempty"`
	MenuOpen           bool       `json:"menuOpen"`
	ScrollGeneration   uint64     `json:"scrollGeneration"`
}

// Router is a deterministic page router without history.
type Router struct {
	mu          sync.Mutex
	session     Session
	page        Page
	selected    string
	admin       AdminView
	modal       Modal
	shareID     string
	ecommerceID string
	menuOpen    bool
	scrollGen   uint64
	onScroll    func()
}

func NewRouter(session Session) *Router {
	return &Router{
		session: session,
		page:    PageHome,
		admin:   AdminView{Mode: AdminDashboard},
		modal:   NoModal{},
	}
}

// OnScrollReset registers fn to run after every navigation.
func (r *Router) OnScrollReset(fn func()) {
	r.mu.Lock()
	r.onScroll = fn
	r.mu.Unlock()
}

// Navigate moves to page to. With an active session both admin and login
// resolve to admin. Every navigation closes the side menu and resets the
// scroll position.
func (r *Router) Navigate(ctx context.Context, to Page) Page {
	if (to == PageAdmin || to == PageLogin) && r.session.Get(ctx) {
		to = PageAdmin
	}

	r.mu.Lock()
	r.page = to
	r.menuOpen = false
	r.scrollGen++
	fn := r.onScroll
	r.mu.Unlock()

	if fn != nil {
		fn()
	}
	return to
}

// ShowDetail selects a product and opens its detail page.
func (r *Router) ShowDetail(ctx context.Context, id string) Page {
	r.mu.Lock()
	r.selected = id
	r.mu.Unlock()
	return r.Navigate(ctx, PageDetail)
}

// View resolves the rendered page. The admin page without a session renders
// the login view in place.
func (r *Router) View(ctx context.Context) State {
	loggedIn := r.session.Get(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	rendered := r.page
	if rendered == PageAdmin && !loggedIn {
		rendered = PageLogin
	}
	return State{
		Page:               rendered,
		Requested:          r.page,
		SelectedProductID:  r.selected,
		Admin:              r.admin,
		Modal:              Describe(r.modal),
		ShareProductID:     r.shareID,
		EcommerceProductID: r.ecommerceID,
		MenuOpen:           r.menuOpen,
		ScrollGeneration:   r.scrollGen,
	}
}

func (r *Router) Page(ctx context.Context) Page { return r.View(ctx).Page }

func (r *Router) SelectedProductID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.selected
}

func (r *Router) OpenModal(m Modal) error {
	switch v := m.(type) {
	case ConfirmDeleteProduct:
		if v.ProductID == "" {
			return ErrNoTarget
		}
	case ConfirmDeleteCategory:
		if v.Name == "" {
			return ErrNoTarget
		}
	case nil:
		m = NoModal{}
	}
	r.mu.Lock()
	r.modal = m
	r.mu.Unlock()
	return nil
}

func (r *Router) CloseModal() {
	r.mu.Lock()
	r.modal = NoModal{}
	r.mu.Unlock()
}

func (r *Router) Modal() Modal {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.modal
}

func (r *Router) OpenShare(id string) {
	r.mu.Lock()
	r.shareID = id
	r.mu.Unlock()
}

func (r *Router) CloseShare() { r.OpenShare("") }

func (r *Router) OpenEcommerce(id string) {
	r.mu.Lock()
	r.ecommerceID = id
	r.mu.Unlock()
}

func (r *Router) CloseEcommerce() { r.OpenEcommerce("") }

func (r *Router) ToggleMenu() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.menuOpen = !r.menuOpen
	return r.menuOpen
}

// EditProduct opens the product form for id. An empty id opens a blank form.
func (r *Router) EditProduct(id string) {
	r.mu.Lock()
	r.admin = AdminView{Mode: AdminEdit, EditingID: id}
	r.mu.Unlock()
}

func (r *Router) NewProduct() { r.EditProduct("") }

func (r *Router) BackToDashboard() {
	r.mu.Lock()
	r.admin = AdminView{Mode: AdminDashboard}
	r.mu.Unlock()
}
