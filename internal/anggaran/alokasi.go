package anggaran

import (
	"fmt"
	"math"
	"time"

	"github.com/grahakarya/api-anggaran/internal/apperror"
	"github.com/grahakarya/api-anggaran/internal/proyek"
)

// HasilAlokasi adalah keluaran generator: satu induk dan nol atau lebih
// anak bulanan. Persistensi menjadi tanggung jawab pemanggil.
type HasilAlokasi struct {
	Parent   ItemAnggaran
	Children []ItemAnggaran
}

// GenerateAlokasi membangun alokasi anggaran untuk satu proyek.
//
// Kategori monthly menghasilkan satu induk dengan periode bulan mulai
// proyek dan N anak (N = jangka waktu proyek, dianggap 12 bila tidak
// diisi), masing-masing jumlah_anggaran = total/N dengan deskripsi
// berakhiran " - Bulan {k}". Selisih pembulatan pembagian ditaruh pada
// anak terakhir sehingga jumlah anak selalu persis sama dengan total
// induk. Kategori lumpsum menghasilkan induk tunggal tanpa anak.
//
// Fungsi ini murni: tidak menyentuh database dan tidak pernah
// mengembalikan alokasi parsial.
func GenerateAlokasi(p *proyek.Proyek, jenisBiayaID uint, kategori string, total float64, deskripsi string) (*HasilAlokasi, error) {
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return nil, apperror.Validasi("total_anggaran", "harus angka positif")
	}

	switch kategori {
	case KategoriLumpsum:
		return &HasilAlokasi{Parent: ItemAnggaran{
			ProyekID:         p.ID,
			JenisBiayaID:     jenisBiayaID,
			KategoriAnggaran: KategoriLumpsum,
			TotalAnggaran:    total,
			JumlahAnggaran:   total,
			Deskripsi:        deskripsi,
			IsParent:         true,
		}}, nil

	case KategoriBulanan:
		mulai, err := awalBulan(p.TanggalMulai)
		if err != nil {
			return nil, apperror.Validasi("tanggal_mulai", "proyek tanpa tanggal mulai tidak bisa dialokasikan bulanan")
		}

		n := p.JangkaWaktuEfektif()
		hasil := &HasilAlokasi{Parent: ItemAnggaran{
			ProyekID:         p.ID,
			JenisBiayaID:     jenisBiayaID,
			KategoriAnggaran: KategoriBulanan,
			TotalAnggaran:    total,
			JumlahAnggaran:   total,
			Deskripsi:        deskripsi,
			PeriodeBulan:     mulai.Format("2006-01"),
			IsParent:         true,
		}}

		bagian := total / float64(n)
		for k := 1; k <= n; k++ {
			jumlah := bagian
			if k == n {
				// sisa pembagian ke bulan terakhir agar jumlah anak = total
				jumlah = total - bagian*float64(n-1)
			}
			hasil.Children = append(hasil.Children, ItemAnggaran{
				ProyekID:         p.ID,
				JenisBiayaID:     jenisBiayaID,
				KategoriAnggaran: KategoriBulanan,
				TotalAnggaran:    total,
				JumlahAnggaran:   jumlah,
				Deskripsi:        fmt.Sprintf("%s - Bulan %d", deskripsi, k),
				PeriodeBulan:     mulai.AddDate(0, k-1, 0).Format("2006-01"),
				BulanKe:          k,
			})
		}
		return hasil, nil
	}

	return nil, apperror.Validasi("kategori_anggaran", fmt.Sprintf("kategori %q tidak dikenal", kategori))
}

// RevisiAlokasi menghitung ulang induk dan anak-anak alokasi yang sudah
// ada dari data baru. Untuk kategori monthly setiap anak mendapat
// jumlah dan deskripsi baru, tetapi periode_bulan, bulan_ke, dan JUMLAH
// anak dipertahankan — revisi tidak menambah atau mengurangi bulan
// meskipun jangka waktu proyek berubah setelah alokasi dibuat (perilaku
// warisan yang dipertahankan, menunggu konfirmasi pemilik produk).
func RevisiAlokasi(parent ItemAnggaran, children []ItemAnggaran, jenisBiayaID uint, total float64, deskripsi string) (*HasilAlokasi, error) {
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return nil, apperror.Validasi("total_anggaran", "harus angka positif")
	}
	// Anak yang belum dipersist belum punya ParentBudgetID, jadi
	// AdalahInduk tidak cukup; baris dengan BulanKe terisi pasti anak.
	if parent.ParentBudgetID != nil || (!parent.IsParent && parent.BulanKe > 0) {
		return nil, apperror.Validasi("parent", "revisi hanya berlaku pada item induk")
	}

	parent.JenisBiayaID = jenisBiayaID
	parent.TotalAnggaran = total
	parent.JumlahAnggaran = total
	parent.Deskripsi = deskripsi

	hasil := &HasilAlokasi{Parent: parent}
	if parent.KategoriAnggaran != KategoriBulanan || len(children) == 0 {
		return hasil, nil
	}

	n := len(children)
	bagian := total / float64(n)
	for idx, anak := range children {
		jumlah := bagian
		if idx == n-1 {
			jumlah = total - bagian*float64(n-1)
		}
		anak.JenisBiayaID = jenisBiayaID
		anak.TotalAnggaran = total
		anak.JumlahAnggaran = jumlah
		anak.Deskripsi = fmt.Sprintf("%s - Bulan %d", deskripsi, anak.BulanKe)
		hasil.Children = append(hasil.Children, anak)
	}
	return hasil, nil
}

// DaftarPeriode mengembalikan n periode YYYY-MM berurutan mulai dari
// bulan tanggalMulai. Nil bila tanggal tidak valid atau n tidak positif.
func DaftarPeriode(tanggalMulai string, n int) []string {
	mulai, err := awalBulan(tanggalMulai)
	if err != nil || n <= 0 {
		return nil
	}
	periode := make([]string, 0, n)
	for k := 0; k < n; k++ {
		periode = append(periode, mulai.AddDate(0, k, 0).Format("2006-01"))
	}
	return periode
}

// awalBulan memotong tanggal ISO ke hari pertama bulannya. Menerima
// YYYY-MM-DD maupun YYYY-MM (komponen waktu di belakang diabaikan).
func awalBulan(iso string) (time.Time, error) {
	if len(iso) >= 10 {
		iso = iso[:10]
	}
	if t, err := time.Parse("2006-01-02", iso); err == nil {
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	if len(iso) >= 7 {
		if t, err := time.Parse("2006-01", iso[:7]); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("tanggal %q tidak valid", iso)
}
