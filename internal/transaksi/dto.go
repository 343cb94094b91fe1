package transaksi

import "github.com/grahakarya/api-anggaran/internal/apperror"

// TransaksiDTO adalah payload create/update transaksi. Tarif dan nilai
// management fee tidak ikut di payload: keduanya di-snapshot server
// dari tarif proyek saat itu.
type TransaksiDTO struct {
	ProyekID          uint    `json:"project_id"`
	JenisBiayaID      uint    `json:"cost_type_id"`
	TanggalTransaksi  string  `json:"tanggal_transaksi"`
	TanggalPOTagihan  string  `json:"tanggal_po_tagihan"`
	BulanRealisasi    string  `json:"bulan_realisasi"`
	JumlahRealisasi   float64 `json:"jumlah_realisasi"`
	Deskripsi         string  `json:"deskripsi"`
	JumlahTenagaKerja int     `json:"jumlah_tenaga_kerja"`
	BuktiURL          string  `json:"bukti_url"`
}

// Validasi memeriksa aturan bisnis payload transaksi.
func (d *TransaksiDTO) Validasi() error {
	if d.ProyekID == 0 {
		return apperror.Validasi("project_id", "wajib diisi")
	}
	if d.TanggalTransaksi == "" {
		return apperror.Validasi("tanggal_transaksi", "wajib diisi")
	}
	if d.JumlahRealisasi < 0 {
		return apperror.Validasi("jumlah_realisasi", "tidak boleh negatif")
	}
	return nil
}

// BulanEfektif mengembalikan bulan realisasi; bila kosong diturunkan
// dari tanggal transaksi (YYYY-MM).
func (d *TransaksiDTO) BulanEfektif() string {
	if d.BulanRealisasi != "" {
		return d.BulanRealisasi
	}
	if len(d.TanggalTransaksi) >= 7 {
		return d.TanggalTransaksi[:7]
	}
	return ""
}
