package anggaran

import (
	"fmt"
	"math"
	"testing"

	"github.com/grahakarya/api-anggaran/internal/apperror"
	"github.com/grahakarya/api-anggaran/internal/proyek"
)

func proyekUji(jangka int, mulai string) *proyek.Proyek {
	p := &proyek.Proyek{
		NoSP2K:         "SP2K-001",
		JudulPekerjaan: "Pengadaan Tenaga Kerja",
		TanggalMulai:   mulai,
		JangkaWaktu:    jangka,
		NilaiPekerjaan: 300_000_000,
	}
	p.ID = 7
	return p
}

func TestGenerateAlokasiBulanan(t *testing.T) {
	hasil, err := GenerateAlokasi(proyekUji(3, "2024-01-01"), 2, KategoriBulanan, 300_000_000, "Gaji")
	if err != nil {
		t.Fatalf("GenerateAlokasi: %v", err)
	}

	induk := hasil.Parent
	if !induk.IsParent {
		t.Error("induk harus IsParent=true")
	}
	if induk.TotalAnggaran != 300_000_000 || induk.JumlahAnggaran != 300_000_000 {
		t.Errorf("induk total=%v jumlah=%v, mau 300000000 keduanya", induk.TotalAnggaran, induk.JumlahAnggaran)
	}
	if induk.PeriodeBulan != "2024-01" {
		t.Errorf("periode induk = %q, mau 2024-01", induk.PeriodeBulan)
	}

	if len(hasil.Children) != 3 {
		t.Fatalf("jumlah anak = %d, mau 3", len(hasil.Children))
	}
	mauPeriode := []string{"2024-01", "2024-02", "2024-03"}
	for i, anak := range hasil.Children {
		if anak.JumlahAnggaran != 100_000_000 {
			t.Errorf("anak %d jumlah = %v, mau 100000000", i+1, anak.JumlahAnggaran)
		}
		if anak.PeriodeBulan != mauPeriode[i] {
			t.Errorf("anak %d periode = %q, mau %q", i+1, anak.PeriodeBulan, mauPeriode[i])
		}
		if anak.BulanKe != i+1 {
			t.Errorf("anak %d bulan_ke = %d", i+1, anak.BulanKe)
		}
		mauDesk := fmt.Sprintf("Gaji - Bulan %d", i+1)
		if anak.Deskripsi != mauDesk {
			t.Errorf("anak %d deskripsi = %q, mau %q", i+1, anak.Deskripsi, mauDesk)
		}
		if anak.IsParent {
			t.Errorf("anak %d tidak boleh IsParent", i+1)
		}
	}
}

func TestGenerateAlokasiSisaKeBulanTerakhir(t *testing.T) {
	// 100/3 tidak habis dibagi; jumlah anak harus tetap persis 100.
	hasil, err := GenerateAlokasi(proyekUji(3, "2024-01-01"), 1, KategoriBulanan, 100, "Operasional")
	if err != nil {
		t.Fatalf("GenerateAlokasi: %v", err)
	}
	var jumlah float64
	for _, anak := range hasil.Children {
		jumlah += anak.JumlahAnggaran
	}
	if jumlah != 100 {
		t.Errorf("jumlah anak = %v, mau persis 100", jumlah)
	}
}

func TestGenerateAlokasiJumlahAnakSamaDenganTotal(t *testing.T) {
	kasus := []struct {
		total  float64
		jangka int
	}{
		{300_000_000, 3},
		{1_000_000, 7},
		{999_999.99, 12},
		{50_000_000, 1},
	}
	for _, k := range kasus {
		hasil, err := GenerateAlokasi(proyekUji(k.jangka, "2024-03-15"), 1, KategoriBulanan, k.total, "Biaya")
		if err != nil {
			t.Fatalf("total=%v jangka=%d: %v", k.total, k.jangka, err)
		}
		if len(hasil.Children) != k.jangka {
			t.Errorf("total=%v: jumlah anak = %d, mau %d", k.total, len(hasil.Children), k.jangka)
		}
		var jumlah float64
		for _, anak := range hasil.Children {
			jumlah += anak.JumlahAnggaran
		}
		if math.Abs(jumlah-k.total) > 1e-6 {
			t.Errorf("total=%v jangka=%d: jumlah anak = %v", k.total, k.jangka, jumlah)
		}
	}
}

func TestGenerateAlokasiJangkaWaktuFallback(t *testing.T) {
	// jangka waktu tidak diisi -> dianggap 12 bulan
	hasil, err := GenerateAlokasi(proyekUji(0, "2024-01-01"), 1, KategoriBulanan, 120, "Biaya")
	if err != nil {
		t.Fatalf("GenerateAlokasi: %v", err)
	}
	if len(hasil.Children) != 12 {
		t.Errorf("jumlah anak = %d, mau 12", len(hasil.Children))
	}
}

func TestGenerateAlokasiLumpsum(t *testing.T) {
	hasil, err := GenerateAlokasi(proyekUji(6, "2024-01-01"), 3, KategoriLumpsum, 75_000_000, "Sewa Alat")
	if err != nil {
		t.Fatalf("GenerateAlokasi: %v", err)
	}
	if len(hasil.Children) != 0 {
		t.Errorf("lumpsum tidak boleh punya anak, dapat %d", len(hasil.Children))
	}
	if !hasil.Parent.IsParent || hasil.Parent.JumlahAnggaran != 75_000_000 {
		t.Errorf("induk lumpsum salah: %+v", hasil.Parent)
	}
}

func TestGenerateAlokasiValidasi(t *testing.T) {
	kasus := []struct {
		nama     string
		proyek   *proyek.Proyek
		kategori string
		total    float64
	}{
		{"total nol", proyekUji(3, "2024-01-01"), KategoriBulanan, 0},
		{"total negatif", proyekUji(3, "2024-01-01"), KategoriLumpsum, -5},
		{"total NaN", proyekUji(3, "2024-01-01"), KategoriLumpsum, math.NaN()},
		{"kategori tidak dikenal", proyekUji(3, "2024-01-01"), "weekly", 100},
		{"bulanan tanpa tanggal mulai", proyekUji(3, ""), KategoriBulanan, 100},
	}
	for _, k := range kasus {
		hasil, err := GenerateAlokasi(k.proyek, 1, k.kategori, k.total, "X")
		if err == nil {
			t.Errorf("%s: mau error validasi, dapat hasil %+v", k.nama, hasil)
			continue
		}
		if !apperror.IsValidasi(err) {
			t.Errorf("%s: error bukan ErrValidasi: %v", k.nama, err)
		}
		if hasil != nil {
			t.Errorf("%s: tidak boleh ada alokasi parsial", k.nama)
		}
	}
}

func TestRevisiAlokasiBulanan(t *testing.T) {
	asal, err := GenerateAlokasi(proyekUji(3, "2024-01-01"), 2, KategoriBulanan, 300, "Gaji")
	if err != nil {
		t.Fatalf("GenerateAlokasi: %v", err)
	}

	hasil, err := RevisiAlokasi(asal.Parent, asal.Children, 5, 600, "Gaji Revisi")
	if err != nil {
		t.Fatalf("RevisiAlokasi: %v", err)
	}
	if hasil.Parent.TotalAnggaran != 600 || hasil.Parent.JumlahAnggaran != 600 {
		t.Errorf("induk hasil revisi: %+v", hasil.Parent)
	}
	if hasil.Parent.JenisBiayaID != 5 {
		t.Errorf("jenis biaya induk = %d, mau 5", hasil.Parent.JenisBiayaID)
	}
	if len(hasil.Children) != 3 {
		t.Fatalf("revisi mengubah jumlah anak: %d", len(hasil.Children))
	}
	for i, anak := range hasil.Children {
		if anak.JumlahAnggaran != 200 {
			t.Errorf("anak %d jumlah = %v, mau 200", i+1, anak.JumlahAnggaran)
		}
		// periode dan bulan_ke tidak boleh berubah saat revisi
		if anak.PeriodeBulan != asal.Children[i].PeriodeBulan || anak.BulanKe != asal.Children[i].BulanKe {
			t.Errorf("anak %d periode/bulan_ke berubah", i+1)
		}
		mauDesk := fmt.Sprintf("Gaji Revisi - Bulan %d", anak.BulanKe)
		if anak.Deskripsi != mauDesk {
			t.Errorf("anak %d deskripsi = %q, mau %q", i+1, anak.Deskripsi, mauDesk)
		}
	}
}

func TestRevisiAlokasiPertahankanJumlahAnak(t *testing.T) {
	// Jangka waktu proyek berubah setelah alokasi dibuat; revisi tetap
	// memakai jumlah anak yang ada (perilaku warisan yang dipertahankan).
	asal, err := GenerateAlokasi(proyekUji(3, "2024-01-01"), 1, KategoriBulanan, 300, "Biaya")
	if err != nil {
		t.Fatalf("GenerateAlokasi: %v", err)
	}
	hasil, err := RevisiAlokasi(asal.Parent, asal.Children, 1, 400, "Biaya")
	if err != nil {
		t.Fatalf("RevisiAlokasi: %v", err)
	}
	if len(hasil.Children) != 3 {
		t.Errorf("jumlah anak = %d, mau tetap 3", len(hasil.Children))
	}
}

func TestRevisiAlokasiValidasi(t *testing.T) {
	asal, _ := GenerateAlokasi(proyekUji(3, "2024-01-01"), 1, KategoriBulanan, 300, "Biaya")

	if _, err := RevisiAlokasi(asal.Parent, asal.Children, 1, 0, "Biaya"); !apperror.IsValidasi(err) {
		t.Errorf("total 0: mau ErrValidasi, dapat %v", err)
	}
	// anak segar dari generator: ParentBudgetID masih nil
	if _, err := RevisiAlokasi(asal.Children[0], nil, 1, 100, "Biaya"); !apperror.IsValidasi(err) {
		t.Errorf("revisi pada anak belum dipersist: mau ErrValidasi, dapat %v", err)
	}

	// anak yang sudah dipersist: ParentBudgetID terisi
	indukID := uint(9)
	tersimpan := asal.Children[1]
	tersimpan.ParentBudgetID = &indukID
	if _, err := RevisiAlokasi(tersimpan, nil, 1, 100, "Biaya"); !apperror.IsValidasi(err) {
		t.Errorf("revisi pada anak tersimpan: mau ErrValidasi, dapat %v", err)
	}
}

func TestRevisiAlokasiBarisLama(t *testing.T) {
	// Baris lumpsum lama tanpa IsParent dan tanpa referensi induk tetap
	// boleh direvisi.
	lama := ItemAnggaran{
		ProyekID:         7,
		KategoriAnggaran: KategoriLumpsum,
		JumlahAnggaran:   500,
	}
	hasil, err := RevisiAlokasi(lama, nil, 1, 750, "Sewa")
	if err != nil {
		t.Fatalf("RevisiAlokasi baris lama: %v", err)
	}
	if hasil.Parent.TotalAnggaran != 750 || hasil.Parent.JumlahAnggaran != 750 {
		t.Errorf("induk hasil revisi: %+v", hasil.Parent)
	}
}

func TestDaftarPeriode(t *testing.T) {
	periode := DaftarPeriode("2023-11-20", 4)
	mau := []string{"2023-11", "2023-12", "2024-01", "2024-02"}
	if len(periode) != len(mau) {
		t.Fatalf("panjang = %d, mau %d", len(periode), len(mau))
	}
	for i := range mau {
		if periode[i] != mau[i] {
			t.Errorf("periode[%d] = %q, mau %q", i, periode[i], mau[i])
		}
	}
	if DaftarPeriode("", 4) != nil {
		t.Error("tanggal kosong harus nil")
	}
}
