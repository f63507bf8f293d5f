package livelink

import "errors"

const MsgUpdated = "Tautan live berhasil diperbarui!"

var ErrIncomplete = errors.New("Tautan TikTok dan Shopee wajib diisi.")

// Links are the live-stream destinations shown on the home page.
type Links struct {
	Tiktok string `json:"tiktok"`
	Shopee string `json:"shopee"`
}

func Default() Links {
	return Links{
		Tiktok: "https://www.tiktok.com/@kriuke.snack.official",
		Shopee: "https://shopee.co.id/kriukesnack",
	}
}

func (l Links) Validate() error {
	if l.Tiktok == "" || l.Shopee == "" {
		return ErrIncomplete
	}
	return nil
}
