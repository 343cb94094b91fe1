package anggaran

import "gorm.io/gorm"

// Kategori alokasi yang dikenal.
const (
	KategoriBulanan = "monthly"
	KategoriLumpsum = "lumpsum"
)

// ItemAnggaran adalah satu baris alokasi anggaran. Alokasi bulanan
// terdiri dari satu induk (IsParent=true) dan N anak, satu per bulan
// jangka waktu proyek; alokasi lumpsum hanya punya induk. Anak tidak
// pernah ikut dijumlahkan sebagai total anggaran proyek.
type ItemAnggaran struct {
	gorm.Model
	ProyekID     uint `json:"project_id" gorm:"not null;index"`
	JenisBiayaID uint `json:"cost_type_id" gorm:"index"`

	KategoriAnggaran string  `json:"kategori_anggaran" gorm:"size:20;not null"`
	TotalAnggaran    float64 `json:"total_anggaran" gorm:"not null;default:0"`
	JumlahAnggaran   float64 `json:"jumlah_anggaran" gorm:"not null;default:0"`
	Deskripsi        string  `json:"deskripsi"`

	// PeriodeBulan format YYYY-MM; BulanKe berbasis 1.
	PeriodeBulan string `json:"periode_bulan" gorm:"size:7;index"`
	BulanKe      int    `json:"bulan_ke"`

	IsParent       bool  `json:"is_parent" gorm:"not null;default:false"`
	ParentBudgetID *uint `json:"parent_budget_id" gorm:"index"`

	Children []ItemAnggaran `json:"-" gorm:"foreignKey:ParentBudgetID;constraint:OnDelete:CASCADE"`
}

// AdalahInduk melaporkan apakah item dihitung pada level induk
// (induk eksplisit atau baris lama tanpa referensi induk).
func (i *ItemAnggaran) AdalahInduk() bool {
	return i.IsParent || i.ParentBudgetID == nil
}

// NilaiAnggaran mengembalikan nilai yang dipakai agregasi level induk:
// total_anggaran, jatuh ke jumlah_anggaran untuk baris lama yang belum
// mengisi total (untuk induk hasil generator keduanya sama).
func (i *ItemAnggaran) NilaiAnggaran() float64 {
	if i.TotalAnggaran != 0 {
		return i.TotalAnggaran
	}
	return i.JumlahAnggaran
}
