// Package managementfee menghitung akrual management fee per transaksi
// dan rekap fee per proyek per bulan. Agregasi memakai snapshot tarif
// yang tersimpan di masing-masing transaksi, bukan tarif proyek saat
// ini, sehingga laporan lama tidak bergeser ketika tarif direvisi.
package managementfee

import (
	"sort"

	"github.com/grahakarya/api-anggaran/internal/proyek"
	"github.com/grahakarya/api-anggaran/internal/transaksi"
)

// HitungFee menghitung fee = tarif/100 × jumlah. Linear terhadap
// jumlah; tarif 0 berarti tanpa fee. Tanpa pembulatan antara — formatter
// tampilan yang membulatkan.
func HitungFee(jumlah, tarifPersen float64) float64 {
	return tarifPersen / 100 * jumlah
}

// RekapPeriode adalah agregat fee satu proyek pada satu bulan realisasi.
type RekapPeriode struct {
	TotalRealisasi  float64 `json:"total_realisasi"`
	ManagementFee   float64 `json:"management_fee"`
	JumlahTransaksi int     `json:"jumlah_transaksi"`
}

// RekapBulanan mengelompokkan transaksi satu proyek per bulan realisasi
// dan menjumlahkan realisasi serta snapshot fee di tiap periode.
// Transaksi tanpa bulan realisasi dilewati.
func RekapBulanan(txs []transaksi.Transaksi, proyekID uint) map[string]RekapPeriode {
	rekap := make(map[string]RekapPeriode)
	for i := range txs {
		t := &txs[i]
		if t.ProyekID != proyekID || t.BulanRealisasi == "" {
			continue
		}
		r := rekap[t.BulanRealisasi]
		r.TotalRealisasi += t.JumlahRealisasi
		r.ManagementFee += t.NilaiManagementFee
		r.JumlahTransaksi++
		rekap[t.BulanRealisasi] = r
	}
	return rekap
}

// BarisLaporan adalah satu baris laporan fee: satu proyek, satu bulan.
type BarisLaporan struct {
	ProyekID        uint    `json:"project_id"`
	NamaProyek      string  `json:"project_name"`
	NoSP2K          string  `json:"no_sp2k"`
	Bulan           string  `json:"month"`
	Tarif           float64 `json:"tarif"`
	TotalRealisasi  float64 `json:"total_realisasi"`
	ManagementFee   float64 `json:"management_fee"`
	JumlahTransaksi int     `json:"jumlah_transaksi"`
}

// SusunLaporan membangun laporan fee lintas proyek: proyek tanpa tarif
// dilewati, satu baris per bulan yang punya transaksi, urut bulan
// terbaru lebih dulu. Kolom Tarif menampilkan tarif proyek saat ini
// sebagai referensi; nilai fee tetap dari snapshot transaksi.
func SusunLaporan(proyeks []proyek.Proyek, txs []transaksi.Transaksi) []BarisLaporan {
	var baris []BarisLaporan
	for i := range proyeks {
		p := &proyeks[i]
		if p.TarifFee() <= 0 {
			continue
		}
		for bulan, r := range RekapBulanan(txs, p.ID) {
			baris = append(baris, BarisLaporan{
				ProyekID:        p.ID,
				NamaProyek:      p.JudulPekerjaan,
				NoSP2K:          p.NoSP2K,
				Bulan:           bulan,
				Tarif:           p.TarifFee(),
				TotalRealisasi:  r.TotalRealisasi,
				ManagementFee:   r.ManagementFee,
				JumlahTransaksi: r.JumlahTransaksi,
			})
		}
	}
	sort.Slice(baris, func(i, j int) bool {
		if baris[i].Bulan != baris[j].Bulan {
			return baris[i].Bulan > baris[j].Bulan
		}
		return baris[i].ProyekID < baris[j].ProyekID
	})
	return baris
}

// RingkasanProyek adalah total laporan fee per proyek.
type RingkasanProyek struct {
	ProyekID       uint     `json:"project_id"`
	NamaProyek     string   `json:"project_name"`
	NoSP2K         string   `json:"no_sp2k"`
	Tarif          float64  `json:"tarif"`
	TotalRealisasi float64  `json:"total_realisasi"`
	TotalFee       float64  `json:"total_fee"`
	Bulan          []string `json:"months"`
}

// Ringkas melipat baris laporan menjadi total per proyek.
func Ringkas(baris []BarisLaporan) []RingkasanProyek {
	indeks := make(map[uint]int)
	var hasil []RingkasanProyek
	for _, b := range baris {
		i, ok := indeks[b.ProyekID]
		if !ok {
			i = len(hasil)
			indeks[b.ProyekID] = i
			hasil = append(hasil, RingkasanProyek{
				ProyekID:   b.ProyekID,
				NamaProyek: b.NamaProyek,
				NoSP2K:     b.NoSP2K,
				Tarif:      b.Tarif,
			})
		}
		hasil[i].TotalRealisasi += b.TotalRealisasi
		hasil[i].TotalFee += b.ManagementFee
		hasil[i].Bulan = append(hasil[i].Bulan, b.Bulan)
	}
	return hasil
}
