package transaksi

import "gorm.io/gorm"

// Transaksi adalah satu realisasi belanja pada sebuah proyek. Tarif dan
// nilai management fee adalah snapshot saat transaksi dibuat/diedit;
// perubahan tarif proyek di kemudian hari tidak menghitung ulang
// transaksi lama.
type Transaksi struct {
	gorm.Model
	ProyekID     uint `json:"project_id" gorm:"not null;index"`
	JenisBiayaID uint `json:"cost_type_id" gorm:"index"`

	TanggalTransaksi string `json:"tanggal_transaksi" gorm:"size:10;not null"`
	TanggalPOTagihan string `json:"tanggal_po_tagihan" gorm:"size:10"`
	// BulanRealisasi format YYYY-MM, normalnya diturunkan dari tanggal transaksi.
	BulanRealisasi string `json:"bulan_realisasi" gorm:"size:7;index"`

	JumlahRealisasi   float64 `json:"jumlah_realisasi" gorm:"not null;default:0"`
	Deskripsi         string  `json:"deskripsi"`
	JumlahTenagaKerja int     `json:"jumlah_tenaga_kerja"`

	PersentaseManagementFee float64 `json:"persentase_management_fee" gorm:"not null;default:0"`
	NilaiManagementFee      float64 `json:"nilai_management_fee" gorm:"not null;default:0"`

	BuktiURL string `json:"bukti_url"`
}

// SnapshotFee menyimpan tarif fee yang berlaku saat ini beserta
// nilainya. nilai_management_fee = jumlah_realisasi × tarif / 100,
// dihitung sekali di sini dan tidak pernah dihitung ulang.
func (t *Transaksi) SnapshotFee(tarifPersen float64) {
	t.PersentaseManagementFee = tarifPersen
	t.NilaiManagementFee = t.JumlahRealisasi * tarifPersen / 100
}
