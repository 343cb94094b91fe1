package proyek

import "gorm.io/gorm"

// Status kontrak yang dikenal aplikasi.
const (
	StatusAktif    = "Active"
	StatusPending  = "Pending"
	StatusNonAktif = "Non Aktif"
)

// Proyek merepresentasikan satu kontrak pekerjaan yang anggarannya
// dimonitor. Tanggal disimpan sebagai string ISO (YYYY-MM-DD) karena
// seluruh perhitungan inti bekerja pada tanggal kalender, bukan instan
// waktu, sehingga tidak ada konversi zona waktu yang bisa menggeser hari.
type Proyek struct {
	gorm.Model
	NoSP2K            string `json:"no_sp2k" gorm:"size:100;not null;index"`
	NoPerjanjian      string `json:"no_perjanjian" gorm:"size:100"`
	NoAmandemen       string `json:"no_amandemen" gorm:"size:100"`
	TanggalPerjanjian string `json:"tanggal_perjanjian" gorm:"size:10"`
	JudulPekerjaan    string `json:"judul_pekerjaan" gorm:"size:255;not null"`

	TanggalMulai   string `json:"tanggal_mulai" gorm:"size:10"`
	TanggalSelesai string `json:"tanggal_selesai" gorm:"size:10"`
	// JangkaWaktu dalam bulan; dasar pembagian alokasi bulanan.
	JangkaWaktu int `json:"jangka_waktu"`

	NilaiPekerjaan float64 `json:"nilai_pekerjaan" gorm:"not null;default:0"`

	// ManagementFee nominal tetap (opsional); TarifManagementFeePersen
	// adalah tarif persen (0-100) yang di-snapshot ke setiap transaksi
	// saat transaksi dibuat.
	ManagementFee            *float64 `json:"management_fee"`
	TarifManagementFeePersen *float64 `json:"tarif_management_fee_persen"`

	StatusKontrak string `json:"status_kontrak" gorm:"size:50;not null;default:'Active';index"`

	KlienID        *uint  `json:"client_id" gorm:"index"`
	Client         string `json:"client" gorm:"size:255"`
	PICClient      string `json:"pic_client" gorm:"size:255"`
	ContactClient  string `json:"contact_client" gorm:"size:255"`
	AlamatClient   string `json:"alamat_client"`
	JenisKontrakID *uint  `json:"jenis_kontrak_id" gorm:"index"`
	JenisKontrak   string `json:"jenis_kontrak" gorm:"size:100"`
}

// JangkaWaktuEfektif mengembalikan jangka waktu proyek; bila tidak diisi
// dianggap 12 bulan (fallback terdokumentasi untuk alokasi bulanan).
func (p *Proyek) JangkaWaktuEfektif() int {
	if p.JangkaWaktu > 0 {
		return p.JangkaWaktu
	}
	return 12
}

// TarifFee mengembalikan tarif management fee proyek, 0 bila tidak diset.
func (p *Proyek) TarifFee() float64 {
	if p.TarifManagementFeePersen == nil {
		return 0
	}
	return *p.TarifManagementFeePersen
}
