package dasbor

import (
	"testing"

	"github.com/grahakarya/api-anggaran/internal/anggaran"
	"github.com/grahakarya/api-anggaran/internal/apperror"
	"github.com/grahakarya/api-anggaran/internal/proyek"
	"github.com/grahakarya/api-anggaran/internal/rekap"
	"github.com/grahakarya/api-anggaran/internal/transaksi"
)

func proyekUji(id uint, status string) proyek.Proyek {
	p := proyek.Proyek{
		NoSP2K:         "SP2K-001",
		JudulPekerjaan: "Proyek Uji",
		StatusKontrak:  status,
		TanggalMulai:   "2024-01-01",
		JangkaWaktu:    3,
		NilaiPekerjaan: 300_000_000,
	}
	p.ID = id
	return p
}

func indukUji(id, proyekID uint, jumlah float64) anggaran.ItemAnggaran {
	item := anggaran.ItemAnggaran{
		ProyekID:         proyekID,
		KategoriAnggaran: anggaran.KategoriLumpsum,
		TotalAnggaran:    jumlah,
		JumlahAnggaran:   jumlah,
		IsParent:         true,
	}
	item.ID = id
	return item
}

func txUji(proyekID, jenisBiayaID uint, bulan string, jumlah float64) transaksi.Transaksi {
	return transaksi.Transaksi{
		ProyekID:        proyekID,
		JenisBiayaID:    jenisBiayaID,
		BulanRealisasi:  bulan,
		JumlahRealisasi: jumlah,
	}
}

func TestTingkatAmbang(t *testing.T) {
	kasus := []struct {
		persen float64
		mau    string
	}{
		{95, TingkatKritis},
		{90, TingkatKritis},
		{89.99, TingkatWaspada},
		{80, TingkatWaspada},
		{79.99, TingkatNormal},
		{0, TingkatNormal},
	}
	for _, k := range kasus {
		if got := TingkatAmbang(k.persen); got != k.mau {
			t.Errorf("TingkatAmbang(%v) = %q, mau %q", k.persen, got, k.mau)
		}
	}
}

func TestBatasAlertTegas(t *testing.T) {
	proyeks := []proyek.Proyek{proyekUji(1, proyek.StatusAktif)}
	items := []anggaran.ItemAnggaran{indukUji(1, 1, 1_000_000)}

	// tepat 80%: BUKAN alert (batas tegas > 0.8), tetapi tingkat
	// tampilannya waspada bila dihitung lewat jalur lain
	m := HitungMetrik(proyeks, items, []transaksi.Transaksi{txUji(1, 1, "2024-01", 800_000)})
	if m.JumlahAlert != 0 {
		t.Errorf("tepat 80%% masuk alert: %+v", m.ProyekAlert)
	}
	if tingkat := TingkatAmbang(rekap.Penyerapan(1_000_000, 800_000)); tingkat != TingkatWaspada {
		t.Errorf("tingkat tampilan di 80%% = %q, mau waspada", tingkat)
	}

	// satu rupiah di atas 80%: alert
	m = HitungMetrik(proyeks, items, []transaksi.Transaksi{txUji(1, 1, "2024-01", 800_001)})
	if m.JumlahAlert != 1 {
		t.Fatalf("800001 dari 1000000 harus alert, dapat %d", m.JumlahAlert)
	}
	if m.ProyekAlert[0].Tingkat != TingkatWaspada {
		t.Errorf("tingkat alert = %q, mau waspada", m.ProyekAlert[0].Tingkat)
	}

	// anggaran nol tidak pernah alert meski ada realisasi
	m = HitungMetrik(proyeks, nil, []transaksi.Transaksi{txUji(1, 1, "2024-01", 999)})
	if m.JumlahAlert != 0 {
		t.Errorf("proyek tanpa anggaran tidak boleh alert")
	}
}

func TestHitungMetrik(t *testing.T) {
	proyeks := []proyek.Proyek{
		proyekUji(1, proyek.StatusAktif),
		proyekUji(2, proyek.StatusPending),
		proyekUji(3, proyek.StatusAktif),
	}
	indukID := uint(1)
	anak := anggaran.ItemAnggaran{ProyekID: 1, JumlahAnggaran: 100, ParentBudgetID: &indukID}
	items := []anggaran.ItemAnggaran{
		indukUji(1, 1, 1_000_000),
		anak, // tidak boleh menambah total
		indukUji(2, 2, 500_000),
	}
	txs := []transaksi.Transaksi{
		txUji(1, 1, "2024-01", 950_000), // 95% -> alert kritis
		txUji(2, 1, "2024-01", 100_000),
	}

	m := HitungMetrik(proyeks, items, txs)
	if m.TotalAnggaran != 1_500_000 {
		t.Errorf("TotalAnggaran = %v, mau 1500000", m.TotalAnggaran)
	}
	if m.TotalRealisasi != 1_050_000 {
		t.Errorf("TotalRealisasi = %v, mau 1050000", m.TotalRealisasi)
	}
	if m.Sisa != 450_000 {
		t.Errorf("Sisa = %v, mau 450000", m.Sisa)
	}
	if m.ProyekAktif != 2 {
		t.Errorf("ProyekAktif = %d, mau 2", m.ProyekAktif)
	}
	if m.TotalProyek != 3 {
		t.Errorf("TotalProyek = %d, mau 3", m.TotalProyek)
	}
	if m.JumlahAlert != 1 || m.ProyekAlert[0].ProyekID != 1 {
		t.Fatalf("alert salah: %+v", m.ProyekAlert)
	}
	if m.ProyekAlert[0].Tingkat != TingkatKritis {
		t.Errorf("tingkat alert = %q, mau kritis", m.ProyekAlert[0].Tingkat)
	}
}

func TestHitungMetrikKoleksiKosong(t *testing.T) {
	m := HitungMetrik(nil, nil, nil)
	if m.TotalAnggaran != 0 || m.TotalRealisasi != 0 || m.Sisa != 0 || m.Persentase != 0 {
		t.Errorf("koleksi kosong harus serba nol: %+v", m)
	}
	if m.JumlahAlert != 0 {
		t.Errorf("koleksi kosong tidak boleh ada alert")
	}
}

func TestHitungMetrikProyekTidakDitemukan(t *testing.T) {
	proyeks := []proyek.Proyek{proyekUji(1, proyek.StatusAktif)}
	if _, err := HitungMetrikProyek(42, proyeks, nil, nil); !apperror.IsTidakDitemukan(err) {
		t.Errorf("mau ErrTidakDitemukan, dapat %v", err)
	}
}

// Skenario ujung-ke-ujung: proyek 3 bulan, anggaran bulanan 300 juta,
// satu transaksi 50 juta di bulan kedua.
func TestSkenarioAlokasiDanRealisasi(t *testing.T) {
	p := proyekUji(1, proyek.StatusAktif)
	hasil, err := anggaran.GenerateAlokasi(&p, 1, anggaran.KategoriBulanan, 300_000_000, "Gaji")
	if err != nil {
		t.Fatalf("GenerateAlokasi: %v", err)
	}

	hasil.Parent.ID = 100
	items := []anggaran.ItemAnggaran{hasil.Parent}
	for i, anak := range hasil.Children {
		anak.ID = uint(101 + i)
		anak.ParentBudgetID = &hasil.Parent.ID
		items = append(items, anak)
	}

	txs := []transaksi.Transaksi{txUji(1, 1, "2024-02", 50_000_000)}

	// realisasi bulanan cocok persis pada periode dan jenis biaya
	if got := rekap.RealisasiBulanan(txs, "2024-02", 1); got != 50_000_000 {
		t.Errorf("RealisasiBulanan = %v, mau 50000000", got)
	}

	// sisa dan penyerapan bulan kedua: anggaran anak 100 juta
	anggaranFeb := hasil.Children[1].JumlahAnggaran
	if anggaranFeb != 100_000_000 {
		t.Fatalf("anggaran Februari = %v, mau 100000000", anggaranFeb)
	}
	if sisa := rekap.SisaAnggaran(anggaranFeb, 50_000_000); sisa != 50_000_000 {
		t.Errorf("sisa Februari = %v, mau 50000000", sisa)
	}
	if persen := rekap.Penyerapan(anggaranFeb, 50_000_000); persen != 50 {
		t.Errorf("penyerapan Februari = %v, mau 50", persen)
	}

	// tren proyek: tiga titik, Februari terisi
	tren := TrenProyek(&p, items, txs)
	if len(tren) != 3 {
		t.Fatalf("panjang tren = %d, mau 3", len(tren))
	}
	if tren[1].Bulan != "2024-02" || tren[1].Anggaran != 100_000_000 || tren[1].Realisasi != 50_000_000 {
		t.Errorf("titik Februari salah: %+v", tren[1])
	}
	if tren[1].Variance != 50_000_000 {
		t.Errorf("variance Februari = %v, mau 50000000", tren[1].Variance)
	}
	if tren[0].Realisasi != 0 || tren[2].Realisasi != 0 {
		t.Errorf("bulan tanpa transaksi harus 0")
	}

	// metrik proyek memakai anggaran level induk
	metrik, err := HitungMetrikProyek(1, []proyek.Proyek{p}, items, txs)
	if err != nil {
		t.Fatalf("HitungMetrikProyek: %v", err)
	}
	if metrik.Anggaran != 300_000_000 || metrik.Realisasi != 50_000_000 {
		t.Errorf("metrik proyek salah: %+v", metrik)
	}
}

func TestSeriBulanan(t *testing.T) {
	indukID := uint(1)
	items := []anggaran.ItemAnggaran{
		indukUji(1, 1, 300),
		{ProyekID: 1, JumlahAnggaran: 100, ParentBudgetID: &indukID, PeriodeBulan: "2024-01"},
	}
	items[0].PeriodeBulan = "2024-01"
	txs := []transaksi.Transaksi{
		txUji(1, 1, "2024-02", 40),
		txUji(1, 1, "2024-01", 60),
		txUji(1, 1, "", 999), // tanpa bulan: dilewati
	}

	seri := SeriBulanan(items, txs)
	if len(seri) != 2 {
		t.Fatalf("panjang seri = %d, mau 2", len(seri))
	}
	if seri[0].Bulan != "2024-01" || seri[1].Bulan != "2024-02" {
		t.Errorf("seri tidak urut: %+v", seri)
	}
	// hanya induk yang dihitung sebagai anggaran
	if seri[0].Anggaran != 300 || seri[0].Realisasi != 60 {
		t.Errorf("titik Januari salah: %+v", seri[0])
	}
	if seri[1].Anggaran != 0 || seri[1].Realisasi != 40 {
		t.Errorf("titik Februari salah: %+v", seri[1])
	}
}

func TestSeriBulananPotong12(t *testing.T) {
	var txs []transaksi.Transaksi
	for _, bulan := range anggaran.DaftarPeriode("2023-01-01", 15) {
		txs = append(txs, txUji(1, 1, bulan, 10))
	}
	seri := SeriBulanan(nil, txs)
	if len(seri) != 12 {
		t.Fatalf("panjang seri = %d, mau 12 (dipotong)", len(seri))
	}
	if seri[0].Bulan != "2023-04" || seri[11].Bulan != "2024-03" {
		t.Errorf("rentang seri salah: %s..%s", seri[0].Bulan, seri[11].Bulan)
	}
}
