// Package dasbor menyusun agregat siap-render untuk dashboard dan
// halaman detail proyek: kartu ringkasan, daftar alert, seri grafik
// bulanan, dan tren per proyek. Seluruh perhitungan murni atas koleksi
// yang diberikan.
package dasbor

import (
	"sort"

	"github.com/grahakarya/api-anggaran/internal/anggaran"
	"github.com/grahakarya/api-anggaran/internal/proyek"
	"github.com/grahakarya/api-anggaran/internal/rekap"
	"github.com/grahakarya/api-anggaran/internal/transaksi"
)

// Tingkat tampilan penyerapan anggaran.
const (
	TingkatKritis  = "critical"
	TingkatWaspada = "warning"
	TingkatNormal  = "normal"
)

// TingkatAmbang memetakan persentase penyerapan ke tingkat tampilan:
// >= 90 kritis, >= 80 waspada, selain itu normal. Perhatikan bahwa
// keanggotaan daftar alert memakai batas TEGAS > 80% — proyek tepat
// di 80.0% tampil di tingkat waspada tetapi bukan alert.
func TingkatAmbang(persen float64) string {
	switch {
	case persen >= 90:
		return TingkatKritis
	case persen >= 80:
		return TingkatWaspada
	}
	return TingkatNormal
}

// ProyekAlert adalah satu proyek yang penyerapannya melewati ambang alert.
type ProyekAlert struct {
	ProyekID       uint    `json:"project_id"`
	JudulPekerjaan string  `json:"judul_pekerjaan"`
	NoSP2K         string  `json:"no_sp2k"`
	Anggaran       float64 `json:"anggaran"`
	Realisasi      float64 `json:"realisasi"`
	Persentase     float64 `json:"persentase"`
	Sisa           float64 `json:"sisa"`
	Tingkat        string  `json:"tingkat"`
}

// Metrik adalah kartu ringkasan dashboard lintas proyek.
type Metrik struct {
	TotalAnggaran  float64       `json:"total_anggaran"`
	TotalRealisasi float64       `json:"total_realisasi"`
	Sisa           float64       `json:"sisa"`
	Persentase     float64       `json:"persentase"`
	ProyekAktif    int           `json:"proyek_aktif"`
	TotalProyek    int           `json:"total_proyek"`
	JumlahAlert    int           `json:"jumlah_alert"`
	ProyekAlert    []ProyekAlert `json:"proyek_alert"`
}

// HitungMetrik menghitung kartu dashboard dari seluruh koleksi.
// Anggaran dijumlahkan pada level induk saja; sisa tidak dipotong bila
// negatif; proyek masuk daftar alert hanya bila anggarannya positif dan
// penyerapannya LEBIH DARI 80% (tegas, bukan >=).
func HitungMetrik(proyeks []proyek.Proyek, items []anggaran.ItemAnggaran, txs []transaksi.Transaksi) Metrik {
	var m Metrik
	m.TotalProyek = len(proyeks)

	for i := range items {
		if items[i].AdalahInduk() {
			m.TotalAnggaran += items[i].NilaiAnggaran()
		}
	}
	m.TotalRealisasi = rekap.TotalRealisasi(txs)
	m.Sisa = rekap.SisaAnggaran(m.TotalAnggaran, m.TotalRealisasi)
	m.Persentase = rekap.Penyerapan(m.TotalAnggaran, m.TotalRealisasi)

	for i := range proyeks {
		p := &proyeks[i]
		if p.StatusKontrak == proyek.StatusAktif {
			m.ProyekAktif++
		}

		anggaranProyek := rekap.AnggaranProyek(items, p.ID)
		realisasiProyek := rekap.RealisasiProyek(txs, p.ID)
		if anggaranProyek > 0 && realisasiProyek/anggaranProyek > 0.8 {
			persen := rekap.Penyerapan(anggaranProyek, realisasiProyek)
			m.ProyekAlert = append(m.ProyekAlert, ProyekAlert{
				ProyekID:       p.ID,
				JudulPekerjaan: p.JudulPekerjaan,
				NoSP2K:         p.NoSP2K,
				Anggaran:       anggaranProyek,
				Realisasi:      realisasiProyek,
				Persentase:     persen,
				Sisa:           rekap.SisaAnggaran(anggaranProyek, realisasiProyek),
				Tingkat:        TingkatAmbang(persen),
			})
		}
	}
	m.JumlahAlert = len(m.ProyekAlert)
	return m
}

// MetrikProyek adalah ringkasan satu proyek.
type MetrikProyek struct {
	Anggaran   float64 `json:"anggaran"`
	Realisasi  float64 `json:"realisasi"`
	Sisa       float64 `json:"sisa"`
	Persentase float64 `json:"persentase"`
	Tingkat    string  `json:"tingkat"`
}

// HitungMetrikProyek menghitung ringkasan satu proyek. Referensi proyek
// yang tidak ada di koleksi menghasilkan ErrTidakDitemukan, bukan nol
// diam-diam.
func HitungMetrikProyek(proyekID uint, proyeks []proyek.Proyek, items []anggaran.ItemAnggaran, txs []transaksi.Transaksi) (MetrikProyek, error) {
	anggaranProyek, err := rekap.AnggaranProyekWajib(proyeks, items, proyekID)
	if err != nil {
		return MetrikProyek{}, err
	}
	realisasi := rekap.RealisasiProyek(txs, proyekID)
	persen := rekap.Penyerapan(anggaranProyek, realisasi)
	return MetrikProyek{
		Anggaran:   anggaranProyek,
		Realisasi:  realisasi,
		Sisa:       rekap.SisaAnggaran(anggaranProyek, realisasi),
		Persentase: persen,
		Tingkat:    TingkatAmbang(persen),
	}, nil
}

// TitikBulan adalah satu batang grafik dashboard: anggaran level induk
// dan realisasi pada satu periode.
type TitikBulan struct {
	Bulan     string  `json:"month"`
	Anggaran  float64 `json:"anggaran"`
	Realisasi float64 `json:"realisasi"`
}

// SeriBulanan menyusun seri grafik anggaran vs realisasi per bulan,
// urut periode, dipotong ke 12 bulan terakhir. Item tanpa periode dan
// transaksi tanpa bulan realisasi dilewati.
func SeriBulanan(items []anggaran.ItemAnggaran, txs []transaksi.Transaksi) []TitikBulan {
	peta := make(map[string]*TitikBulan)
	ambil := func(bulan string) *TitikBulan {
		t, ok := peta[bulan]
		if !ok {
			t = &TitikBulan{Bulan: bulan}
			peta[bulan] = t
		}
		return t
	}

	for i := range items {
		if items[i].PeriodeBulan == "" {
			continue
		}
		if items[i].AdalahInduk() {
			ambil(items[i].PeriodeBulan).Anggaran += items[i].NilaiAnggaran()
		}
	}
	for i := range txs {
		if txs[i].BulanRealisasi == "" {
			continue
		}
		ambil(txs[i].BulanRealisasi).Realisasi += txs[i].JumlahRealisasi
	}

	seri := make([]TitikBulan, 0, len(peta))
	for _, t := range peta {
		seri = append(seri, *t)
	}
	sort.Slice(seri, func(i, j int) bool { return seri[i].Bulan < seri[j].Bulan })
	if len(seri) > 12 {
		seri = seri[len(seri)-12:]
	}
	return seri
}

// TitikTren adalah satu bulan pada tren detail proyek: anggaran anak
// bulan itu, realisasi bulan itu, dan selisihnya.
type TitikTren struct {
	Bulan     string  `json:"bulan"`
	Anggaran  float64 `json:"anggaran"`
	Realisasi float64 `json:"realisasi"`
	Variance  float64 `json:"variance"`
}

// TrenProyek menyusun tren bulanan sepanjang jangka waktu proyek.
// Anggaran per bulan dibaca dari item ANAK pada periode itu (induk
// dilewati); realisasi dari transaksi pada bulan yang sama. Proyek
// tanpa tanggal mulai menghasilkan seri kosong.
func TrenProyek(p *proyek.Proyek, items []anggaran.ItemAnggaran, txs []transaksi.Transaksi) []TitikTren {
	periode := anggaran.DaftarPeriode(p.TanggalMulai, p.JangkaWaktuEfektif())
	if len(periode) == 0 {
		return nil
	}

	seri := make([]TitikTren, 0, len(periode))
	for _, bulan := range periode {
		var anggaranBulan float64
		for i := range items {
			if items[i].ProyekID == p.ID && !items[i].IsParent && items[i].ParentBudgetID != nil && items[i].PeriodeBulan == bulan {
				anggaranBulan += items[i].JumlahAnggaran
			}
		}
		var realisasiBulan float64
		for i := range txs {
			if txs[i].ProyekID == p.ID && txs[i].BulanRealisasi == bulan {
				realisasiBulan += txs[i].JumlahRealisasi
			}
		}
		seri = append(seri, TitikTren{
			Bulan:     bulan,
			Anggaran:  anggaranBulan,
			Realisasi: realisasiBulan,
			Variance:  anggaranBulan - realisasiBulan,
		})
	}
	return seri
}
