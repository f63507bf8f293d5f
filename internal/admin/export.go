package admin

import (
	"context"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/wichananm65/kriuke-snack/internal/product"
)

const exportSheet = "Produk"

var exportHeader = []interface{}{
	"id", "name", "subtitle", "category", "original_price", "discount_price",
	"effective_price", "rating", "sold", "reviews", "images", "tiktok", "shopee", "tokopedia",
}

// WriteXLSX writes the catalog as a single-sheet workbook.
func WriteXLSX(w io.Writer, products []product.Product) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}
	sw, err := f.NewStreamWriter(exportSheet)
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", exportHeader); err != nil {
		return err
	}
	for i, p := range products {
		var discount interface{}
		if p.DiscountPrice != nil {
			discount = *p.DiscountPrice
		}
		var links product.EcommerceLinks
		if p.EcommerceLinks != nil {
			links = *p.EcommerceLinks
		}
		row := []interface{}{
			p.ID, p.Name, p.Subtitle, p.Category, p.OriginalPrice, discount,
			p.EffectivePrice(), p.Rating, p.Sold, len(p.Reviews), strings.Join(p.Images, ", "),
			links.Tiktok, links.Shopee, links.Tokopedia,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	return f.Write(w)
}

func (s *Service) Export(ctx context.Context, w io.Writer) error {
	return WriteXLSX(w, s.products.Get(ctx))
}
