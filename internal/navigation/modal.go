package navigation

import "fmt"

// Modal is the confirmation dialog currently open. The concrete types are
// NoModal, ConfirmDeleteProduct and ConfirmDeleteCategory.
type Modal interface {
	modal()
}

type NoModal struct{}

type ConfirmDeleteProduct struct {
	ProductID string
}

type ConfirmDeleteCategory struct {
	Name string
}

func (NoModal) modal()               {}
func (ConfirmDeleteProduct) modal()  {}
func (ConfirmDeleteCategory) modal() {}

// ModalState is the serialized form of a Modal.
type ModalState struct {
	Kind    string `json:"kind"`
	Target  string `json:"target,omitempty"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message,omitempty"`
}

func Describe(m Modal) ModalState {
	switch m := m.(type) {
	case ConfirmDeleteProduct:
		return ModalState{
			Kind:    "confirm-delete-product",
			Target:  m.ProductID,
			Title:   "Konfirmasi Hapus Produk",
			Message: "Apakah Anda yakin ingin menghapus produk ini? Tindakan ini tidak dapat dibatalkan.",
		}
	case ConfirmDeleteCategory:
		return ModalState{
			Kind:    "confirm-delete-category",
			Target:  m.Name,
			Title:   "Konfirmasi Hapus Kategori",
			Message: fmt.Sprintf("Apakah Anda yakin ingin menghapus kategori: %s? Produk dalam kategori ini akan dipindahkan ke 'Lainnya'.", m.Name),
		}
	default:
		return ModalState{Kind: "none"}
	}
}

// ParseModal builds a Modal from its serialized kind and target.
func ParseModal(kind, target string) (Modal, error) {
	switch kind {
	case "", "none":
		return NoModal{}, nil
	case "confirm-delete-product":
		return ConfirmDeleteProduct{ProductID: target}, nil
	case "confirm-delete-category":
		return ConfirmDeleteCategory{Name: target}, nil
	default:
		return nil, fmt.Errorf("unknown modal %q", kind)
	}
}
