package proyek

import "github.com/grahakarya/api-anggaran/internal/apperror"

// ProyekDTO adalah payload create/update proyek dari form aplikasi.
type ProyekDTO struct {
	NoSP2K            string `json:"no_sp2k"`
	NoPerjanjian      string `json:"no_perjanjian"`
	NoAmandemen       string `json:"no_amandemen"`
	TanggalPerjanjian string `json:"tanggal_perjanjian"`
	JudulPekerjaan    string `json:"judul_pekerjaan"`

	TanggalMulai   string `json:"tanggal_mulai"`
	TanggalSelesai string `json:"tanggal_selesai"`
	JangkaWaktu    int    `json:"jangka_waktu"`

	NilaiPekerjaan           float64  `json:"nilai_pekerjaan"`
	ManagementFee            *float64 `json:"management_fee"`
	TarifManagementFeePersen *float64 `json:"tarif_management_fee_persen"`

	StatusKontrak string `json:"status_kontrak"`

	KlienID        *uint  `json:"client_id"`
	Client         string `json:"client"`
	PICClient      string `json:"pic_client"`
	ContactClient  string `json:"contact_client"`
	AlamatClient   string `json:"alamat_client"`
	JenisKontrakID *uint  `json:"jenis_kontrak_id"`
	JenisKontrak   string `json:"jenis_kontrak"`
}

// Validasi memeriksa aturan bisnis payload proyek.
func (d *ProyekDTO) Validasi() error {
	if d.NoSP2K == "" {
		return apperror.Validasi("no_sp2k", "wajib diisi")
	}
	if d.JudulPekerjaan == "" {
		return apperror.Validasi("judul_pekerjaan", "wajib diisi")
	}
	if d.NilaiPekerjaan <= 0 {
		return apperror.Validasi("nilai_pekerjaan", "harus lebih besar dari 0")
	}
	if d.JangkaWaktu < 0 {
		return apperror.Validasi("jangka_waktu", "tidak boleh negatif")
	}
	if d.TarifManagementFeePersen != nil {
		if t := *d.TarifManagementFeePersen; t < 0 || t > 100 {
			return apperror.Validasi("tarif_management_fee_persen", "harus di antara 0 dan 100")
		}
	}
	return nil
}

// KeModel menyalin payload ke model Proyek. Status kosong dianggap Active.
func (d *ProyekDTO) KeModel(p *Proyek) {
	p.NoSP2K = d.NoSP2K
	p.NoPerjanjian = d.NoPerjanjian
	p.NoAmandemen = d.NoAmandemen
	p.TanggalPerjanjian = d.TanggalPerjanjian
	p.JudulPekerjaan = d.JudulPekerjaan
	p.TanggalMulai = d.TanggalMulai
	p.TanggalSelesai = d.TanggalSelesai
	p.JangkaWaktu = d.JangkaWaktu
	p.NilaiPekerjaan = d.NilaiPekerjaan
	p.ManagementFee = d.ManagementFee
	p.TarifManagementFeePersen = d.TarifManagementFeePersen
	p.StatusKontrak = d.StatusKontrak
	if p.StatusKontrak == "" {
		p.StatusKontrak = StatusAktif
	}
	p.KlienID = d.KlienID
	p.Client = d.Client
	p.PICClient = d.PICClient
	p.ContactClient = d.ContactClient
	p.AlamatClient = d.AlamatClient
	p.JenisKontrakID = d.JenisKontrakID
	p.JenisKontrak = d.JenisKontrak
}
