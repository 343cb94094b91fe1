package jeniskontrak

import "gorm.io/gorm"

// JenisKontrak adalah data master tipe kontrak proyek.
type JenisKontrak struct {
	gorm.Model
	Nama      string `json:"name" gorm:"size:255;not null"`
	Kode      string `json:"code" gorm:"size:50"`
	Deskripsi string `json:"description"`
}
