package jenisbiaya

import "gorm.io/gorm"

// JenisBiaya adalah data master kategori biaya yang menjadi acuan
// alokasi anggaran dan transaksi realisasi.
type JenisBiaya struct {
	gorm.Model
	NamaBiaya string `json:"nama_biaya" gorm:"size:255;not null"`
	Kode      string `json:"kode" gorm:"size:50"`
	Deskripsi string `json:"deskripsi"`
}
