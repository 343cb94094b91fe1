// Package rekap berisi agregasi murni realisasi terhadap anggaran.
// Semua fungsi bekerja pada koleksi in-memory yang diberikan pemanggil,
// tanpa I/O dan tanpa state; koleksi kosong sah dan menghasilkan 0.
package rekap

import (
	"github.com/grahakarya/api-anggaran/internal/anggaran"
	"github.com/grahakarya/api-anggaran/internal/apperror"
	"github.com/grahakarya/api-anggaran/internal/proyek"
	"github.com/grahakarya/api-anggaran/internal/transaksi"
)

// AnggaranProyek menjumlahkan anggaran level induk milik satu proyek.
// Anak alokasi bulanan tidak ikut dihitung supaya tidak dobel.
func AnggaranProyek(items []anggaran.ItemAnggaran, proyekID uint) float64 {
	var total float64
	for i := range items {
		if items[i].ProyekID != proyekID {
			continue
		}
		if items[i].AdalahInduk() {
			total += items[i].NilaiAnggaran()
		}
	}
	return total
}

// AnggaranProyekWajib seperti AnggaranProyek tetapi memastikan proyek
// yang direferensikan benar-benar ada di koleksi; referensi rusak
// dibedakan dari proyek sah yang belum punya anggaran (total 0).
func AnggaranProyekWajib(proyeks []proyek.Proyek, items []anggaran.ItemAnggaran, proyekID uint) (float64, error) {
	if !proyekAda(proyeks, proyekID) {
		return 0, apperror.TidakDitemukan("proyek", proyekID)
	}
	return AnggaranProyek(items, proyekID), nil
}

// RealisasiProyek menjumlahkan seluruh realisasi milik satu proyek.
func RealisasiProyek(txs []transaksi.Transaksi, proyekID uint) float64 {
	var total float64
	for i := range txs {
		if txs[i].ProyekID == proyekID {
			total += txs[i].JumlahRealisasi
		}
	}
	return total
}

// TotalRealisasi menjumlahkan seluruh transaksi tanpa filter.
func TotalRealisasi(txs []transaksi.Transaksi) float64 {
	var total float64
	for i := range txs {
		total += txs[i].JumlahRealisasi
	}
	return total
}

// RealisasiBulanan menjumlahkan realisasi yang cocok persis pada bulan
// realisasi DAN jenis biaya. Transaksi jenis biaya lain tidak pernah
// menyumbang ke rekap jenis biaya ini meski proyek dan periodenya sama.
func RealisasiBulanan(txs []transaksi.Transaksi, periodeBulan string, jenisBiayaID uint) float64 {
	var total float64
	for i := range txs {
		if txs[i].BulanRealisasi == periodeBulan && txs[i].JenisBiayaID == jenisBiayaID {
			total += txs[i].JumlahRealisasi
		}
	}
	return total
}

// Penyerapan menghitung persentase realisasi terhadap anggaran.
// Anggaran 0 menghasilkan 0 (bukan NaN/Inf); nilai di atas 100 sah dan
// menandakan pemakaian melebihi anggaran.
func Penyerapan(totalAnggaran, totalRealisasi float64) float64 {
	if totalAnggaran <= 0 {
		return 0
	}
	return totalRealisasi / totalAnggaran * 100
}

// SisaAnggaran mengembalikan anggaran dikurangi realisasi; boleh negatif.
func SisaAnggaran(totalAnggaran, totalRealisasi float64) float64 {
	return totalAnggaran - totalRealisasi
}

func proyekAda(proyeks []proyek.Proyek, id uint) bool {
	for i := range proyeks {
		if proyeks[i].ID == id {
			return true
		}
	}
	return false
}
