package klien

import "gorm.io/gorm"

// Klien adalah data master pemberi kerja.
type Klien struct {
	gorm.Model
	Nama       string `json:"name" gorm:"size:255;not null"`
	NamaKontak string `json:"contact_name" gorm:"size:255"`
	Telepon    string `json:"phone" gorm:"size:50"`
	Alamat     string `json:"address"`
}
