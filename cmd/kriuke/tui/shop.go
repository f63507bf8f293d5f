package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wichananm65/kriuke-snack/internal/cart"
	"github.com/wichananm65/kriuke-snack/internal/navigation"
	"github.com/wichananm65/kriuke-snack/internal/product"
	"github.com/wichananm65/kriuke-snack/internal/storefront"
)

// ShopMode is the screen the shop UI is on
type ShopMode int

const (
	ModeBrowse ShopMode = iota
	ModeSearch
	ModeDetail
	ModeCart
)

const refreshInterval = 250 * time.Millisecond

// ShopModel is the terminal storefront: catalog, detail and cart over one App.
type ShopModel struct {
	ctx  context.Context
	sf   *storefront.App
	mode ShopMode

	list       list.Model
	search     textinput.Model
	categories []string
	category   int

	detail  product.View
	summary cart.Summary
	cursor  int
	status  string

	width  int
	height int
}

type productItem struct {
	view  product.View
	liked bool
}

func (i productItem) FilterValue() string { return i.view.Name }
func (i productItem) Title() string       { return heart(i.liked) + " " + i.view.Name }
func (i productItem) Description() string {
	return formatPrice(i.view.PriceLabel, i.view.OriginalLabel, i.view.HasDiscount) +
		mutedStyle.Render(" · "+i.view.Category+" · "+i.view.Subtitle)
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// NewShopModel creates the shop UI on sf
func NewShopModel(ctx context.Context, sf *storefront.App) ShopModel {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Kriuké Snack"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle

	ti := textinput.New()
	ti.Placeholder = "Cari snack..."
	ti.Prompt = "/ "
	ti.CharLimit = 64

	m := ShopModel{
		ctx:        ctx,
		sf:         sf,
		list:       l,
		search:     ti,
		categories: append([]string{product.AllCategories}, sf.Categories.List(ctx)...),
	}
	m.reload()
	return m
}

// Init starts the refresh ticker that expires notices and advances promos
func (m ShopModel) Init() tea.Cmd {
	return tick()
}

func (m *ShopModel) filter() product.Filter {
	return product.Filter{Category: m.categories[m.category], Query: m.search.Value()}
}

func (m *ShopModel) reload() {
	res := m.sf.Products.List(m.ctx, m.filter())
	items := make([]list.Item, 0, len(res.Products))
	for _, v := range product.NewViews(res.Products) {
		items = append(items, productItem{view: v, liked: m.sf.Favorites.IsLiked(m.ctx, v.ID)})
	}
	m.list.SetItems(items)
	switch res.Empty {
	case product.NoProducts:
		m.status = "Belum ada produk."
	case product.NoMatches:
		m.status = "Produk tidak ditemukan."
	default:
		m.status = ""
	}
}

func (m *ShopModel) selected() (product.View, bool) {
	item, ok := m.list.SelectedItem().(productItem)
	if !ok {
		return product.View{}, false
	}
	return item.view, true
}

func (m *ShopModel) openDetail(id string) {
	v, err := m.sf.Products.Detail(m.ctx, id)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.sf.Router.ShowDetail(m.ctx, id)
	m.detail = v
	m.mode = ModeDetail
	m.status = ""
}

func (m *ShopModel) openCart() {
	m.sf.Router.Navigate(m.ctx, navigation.PageCart)
	m.summary = m.sf.Cart.Get(m.ctx)
	m.cursor = 0
	m.mode = ModeCart
	m.status = ""
}

func (m *ShopModel) back() {
	m.sf.Router.Navigate(m.ctx, navigation.PageHome)
	m.mode = ModeBrowse
	m.reload()
}

func (m *ShopModel) addToCart(id string) {
	if _, err := m.sf.Cart.Add(m.ctx, id); err != nil {
		m.status = err.Error()
	}
}

func (m *ShopModel) toggleLike(id string) {
	if _, err := m.sf.Favorites.Toggle(m.ctx, id); err != nil {
		m.status = err.Error()
	}
}

func (m *ShopModel) changeQuantity(delta int) {
	if m.cursor >= len(m.summary.Lines) {
		return
	}
	sum, err := m.sf.Cart.ChangeQuantity(m.ctx, m.summary.Lines[m.cursor].Product.ID, delta)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.setSummary(sum)
}

func (m *ShopModel) removeLine() {
	if m.cursor >= len(m.summary.Lines) {
		return
	}
	sum, err := m.sf.Cart.Remove(m.ctx, m.summary.Lines[m.cursor].Product.ID)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.setSummary(sum)
}

// setSummary keeps the cursor on an existing line after the cart shrinks.
func (m *ShopModel) setSummary(sum cart.Summary) {
	m.summary = sum
	if m.cursor >= len(sum.Lines) {
		m.cursor = len(sum.Lines) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update handles messages
func (m ShopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tickMsg:
		return m, tick()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case ModeSearch:
			return m.updateSearch(msg)
		case ModeDetail:
			return m.updateDetail(msg)
		case ModeCart:
			return m.updateCart(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	if m.mode == ModeBrowse {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m ShopModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.mode = ModeSearch
		return m, m.search.Focus()
	case "tab":
		m.category = (m.category + 1) % len(m.categories)
		m.reload()
		return m, nil
	case "c":
		m.openCart()
		return m, nil
	case "n":
		m.sf.Promos.Next()
		return m, nil
	case "p":
		m.sf.Promos.Prev()
		return m, nil
	case "enter":
		if v, ok := m.selected(); ok {
			m.openDetail(v.ID)
		}
		return m, nil
	case "a":
		if v, ok := m.selected(); ok {
			m.addToCart(v.ID)
		}
		return m, nil
	case "l":
		if v, ok := m.selected(); ok {
			m.toggleLike(v.ID)
			idx := m.list.Index()
			m.reload()
			m.list.Select(idx)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m ShopModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.search.Blur()
		m.mode = ModeBrowse
		return m, nil
	case "esc":
		m.search.SetValue("")
		m.search.Blur()
		m.mode = ModeBrowse
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.reload()
	return m, cmd
}

func (m ShopModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.detail.ID
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace":
		m.back()
	case "a":
		m.addToCart(id)
	case "l":
		m.toggleLike(id)
	case "c":
		m.openCart()
	case "s":
		// failures are reported through the notice
		_, _ = m.sf.Share.CopyLink(m.ctx, id)
	case "w":
		if link, err := m.sf.Share.BuyNow(m.ctx, id); err == nil {
			m.status = link
		}
	case "e":
		links, err := m.sf.Share.Ecommerce(m.ctx, id)
		if err != nil {
			m.status = err.Error()
			break
		}
		parts := make([]string, 0, len(links))
		for _, l := range links {
			parts = append(parts, l.Label+": "+l.URL)
		}
		m.status = strings.Join(parts, "\n")
	}
	return m, nil
}

func (m ShopModel) updateCart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace":
		m.back()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.summary.Lines)-1 {
			m.cursor++
		}
	case "+", "=":
		m.changeQuantity(1)
	case "-":
		m.changeQuantity(-1)
	case "x", "delete":
		m.removeLine()
	}
	return m, nil
}

// View renders the UI
func (m ShopModel) View() string {
	var body string
	switch m.mode {
	case ModeDetail:
		body = m.viewDetail()
	case ModeCart:
		body = m.viewCart()
	default:
		body = m.viewBrowse()
	}

	var b strings.Builder
	b.WriteString(body)
	if m.status != "" {
		b.WriteString("\n" + subtitleStyle.Render(m.status))
	}
	if n := m.sf.Toast.Current(); n.Show {
		b.WriteString("\n\n" + toastStyle.Render(n.Message))
	}
	return b.String()
}

func (m ShopModel) header() string {
	slide := m.sf.Promos.Current()
	promo := ""
	if len(slide.Promos) > 0 {
		promo = badgeStyle.Render(slide.Promos[slide.Current].AltText) +
			mutedStyle.Render(fmt.Sprintf(" %d/%d", slide.Current+1, len(slide.Promos)))
	}
	count := m.sf.Cart.Get(m.ctx).Count
	return lipgloss.JoinHorizontal(lipgloss.Top,
		promo,
		mutedStyle.Render(fmt.Sprintf("   🛒 %d", count)),
	)
}

func (m ShopModel) viewBrowse() string {
	filter := mutedStyle.Render("Kategori: ") + m.categories[m.category]
	if m.mode == ModeSearch || m.search.Value() != "" {
		filter += "\n" + m.search.View()
	}
	help := helpStyle.Render(
		FormatKey("↑/↓", "pilih") + "  " +
			FormatKey("enter", "detail") + "  " +
			FormatKey("a", "keranjang") + "  " +
			FormatKey("l", "suka") + "  " +
			FormatKey("/", "cari") + "  " +
			FormatKey("tab", "kategori") + "  " +
			FormatKey("c", "lihat keranjang") + "  " +
			FormatKey("q", "keluar"),
	)
	return m.header() + "\n\n" + filter + "\n\n" + m.list.View() + "\n" + help
}

func (m ShopModel) viewDetail() string {
	v := m.detail
	var b strings.Builder
	b.WriteString(titleStyle.Render(v.Name) + " " + heart(m.sf.Favorites.IsLiked(m.ctx, v.ID)) + "\n")
	b.WriteString(subtitleStyle.Render(v.Subtitle+" · "+v.Category) + "\n\n")
	b.WriteString(formatPrice(v.PriceLabel, v.OriginalLabel, v.HasDiscount))
	if v.HasDiscount {
		b.WriteString("  " + badgeStyle.Render(fmt.Sprintf("-%d%%", v.DiscountPercent)))
	}
	b.WriteString("\n" + mutedStyle.Render(fmt.Sprintf("★ %s · %d terjual · %d ulasan",
		product.RatingLabel(v.Rating), v.Sold, v.ReviewCount)) + "\n\n")
	b.WriteString(v.Description)

	help := helpStyle.Render(
		FormatKey("a", "keranjang") + "  " +
			FormatKey("l", "suka") + "  " +
			FormatKey("s", "salin link") + "  " +
			FormatKey("w", "beli via WhatsApp") + "  " +
			FormatKey("e", "e-commerce") + "  " +
			FormatKey("esc", "kembali"),
	)
	return m.header() + "\n\n" + boxStyle.Render(b.String()) + "\n" + help
}

func (m ShopModel) viewCart() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Keranjang") + "\n\n")
	if len(m.summary.Lines) == 0 {
		b.WriteString(mutedStyle.Render("Keranjang belanja kosong.") + "\n")
	}
	for i, l := range m.summary.Lines {
		line := fmt.Sprintf("%s  x%d  %s", l.Product.Name, l.Quantity, product.PriceLabel(l.Subtotal))
		if i == m.cursor {
			b.WriteString(selectedLineStyle.Render("▸ "+line) + "\n")
		} else {
			b.WriteString(lineStyle.Render(line) + "\n")
		}
	}
	if len(m.summary.Lines) > 0 {
		b.WriteString("\n" + priceStyle.Render("Total "+m.summary.TotalLabel) + "\n")
	}

	help := helpStyle.Render(
		FormatKey("+/-", "jumlah") + "  " +
			FormatKey("x", "hapus") + "  " +
			FormatKey("esc", "kembali"),
	)
	return b.String() + help
}

// RunShop runs the shop UI until the user quits
func RunShop(ctx context.Context, sf *storefront.App) error {
	p := tea.NewProgram(NewShopModel(ctx, sf), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
