package admin

import (
	"encoding/json"
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/wichananm65/kriuke-snack/internal/product"
)

var ErrDiscountNotLower = errors.New("Harga diskon harus diisi dan lebih rendah dari harga asli.")

// FormValue is a form field that arrives either as a JSON string or a JSON
// number.
type FormValue string

func (v *FormValue) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = FormValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*v = FormValue(n.String())
	return nil
}

func (v FormValue) String() string { return strings.TrimSpace(string(v)) }

// ProductForm is the admin product editor.
type ProductForm struct {
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Subtitle      string    `json:"subtitle"`
	OriginalPrice FormValue `json:"originalPrice"`
	HasDiscount   bool      `json:"hasDiscount"`
	DiscountPrice FormValue `json:"discountPrice"`
	Rating        FormValue `json:"rating"`
	Sold          FormValue `json:"sold"`
	Images        string    `json:"images"`
	Description   string    `json:"description"`
	TiktokLink    string    `json:"tiktokLink"`
	ShopeeLink    string    `json:"shopeeLink"`
	TokopediaLink string    `json:"tokopediaLink"`
}

// ValidationError maps form fields to messages.
type ValidationError map[string]string

func (e ValidationError) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "invalid product form: " + strings.Join(parts, "; ")
}

// NewForm is the blank form for a new product.
func NewForm(defaultCategory string) ProductForm {
	if defaultCategory == "" {
		defaultCategory = product.FallbackCategory
	}
	return ProductForm{Category: defaultCategory, Sold: "0"}
}

// FormFromProduct prefills the editor. A stale discount is not carried over.
func FormFromProduct(p product.Product) ProductForm {
	f := ProductForm{
		Name:          p.Name,
		Category:      p.Category,
		Subtitle:      p.Subtitle,
		OriginalPrice: FormValue(strconv.Itoa(p.OriginalPrice)),
		HasDiscount:   p.HasDiscount(),
		Rating:        FormValue(strconv.FormatFloat(p.Rating, 'f', -1, 64)),
		Sold:          FormValue(strconv.Itoa(p.Sold)),
		Images:        strings.Join(p.Images, ", "),
		Description:   p.Description,
	}
	if f.HasDiscount {
		f.DiscountPrice = FormValue(strconv.Itoa(*p.DiscountPrice))
	}
	if l := p.EcommerceLinks; l != nil {
		f.TiktokLink = l.Tiktok
		f.ShopeeLink = l.Shopee
		f.TokopediaLink = l.Tokopedia
	}
	return f
}

// ParseImages splits a comma separated URL list, dropping empty entries.
func ParseImages(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if u := strings.TrimSpace(part); u != "" {
			out = append(out, u)
		}
	}
	return out
}

// Product validates the form and converts it. The returned product has no
// id and no reviews. A discount that is missing or not lower than the
// original price yields ErrDiscountNotLower.
func (f ProductForm) Product() (product.Product, error) {
	errs := ValidationError{}

	name := strings.TrimSpace(f.Name)
	if name == "" {
		errs["name"] = "name is required"
	}

	original, err := strconv.Atoi(f.OriginalPrice.String())
	if err != nil {
		errs["originalPrice"] = "originalPrice must be a number"
	} else if original <= 0 {
		errs["originalPrice"] = "originalPrice must be > 0"
	}

	rating := 0.0
	if s := f.Rating.String(); s != "" {
		rating, err = strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(rating) || rating < 0 || rating > 5 {
			errs["rating"] = "rating must be between 0 and 5"
		}
	}

	sold, err := strconv.Atoi(f.Sold.String())
	if err != nil || sold < 0 {
		sold = 0
	}

	images := ParseImages(f.Images)
	if len(images) == 0 {
		errs["images"] = "at least one image URL is required"
	}

	if len(errs) > 0 {
		return product.Product{}, errs
	}

	var discount *int
	if f.HasDiscount {
		d, err := strconv.Atoi(f.DiscountPrice.String())
		if err != nil || d <= 0 || d >= original {
			return product.Product{}, ErrDiscountNotLower
		}
		discount = &d
	}

	category := strings.TrimSpace(f.Category)
	if category == "" {
		category = product.FallbackCategory
	}

	p := product.Product{
		Name:          name,
		Subtitle:      f.Subtitle,
		OriginalPrice: original,
		DiscountPrice: discount,
		Rating:        rating,
		Sold:          sold,
		Category:      category,
		Images:        images,
		Description:   f.Description,
	}
	links := product.EcommerceLinks{
		Tiktok:    strings.TrimSpace(f.TiktokLink),
		Shopee:    strings.TrimSpace(f.ShopeeLink),
		Tokopedia: strings.TrimSpace(f.TokopediaLink),
	}
	if len(links.Links()) > 0 {
		p.EcommerceLinks = &links
	}
	return p, nil
}
