package managementfee

import (
	"math"
	"testing"

	"github.com/grahakarya/api-anggaran/internal/proyek"
	"github.com/grahakarya/api-anggaran/internal/transaksi"
)

func TestHitungFee(t *testing.T) {
	kasus := []struct {
		jumlah, tarif, mau float64
	}{
		{50_000_000, 2.5, 1_250_000},
		{100_000, 10, 10_000},
		{100_000, 0, 0},
		{0, 5, 0},
	}
	for _, k := range kasus {
		if got := HitungFee(k.jumlah, k.tarif); got != k.mau {
			t.Errorf("HitungFee(%v, %v) = %v, mau %v", k.jumlah, k.tarif, got, k.mau)
		}
	}
}

func TestHitungFeeLinear(t *testing.T) {
	// fee(a+b, r) = fee(a, r) + fee(b, r)
	kasus := []struct{ a, b, r float64 }{
		{100, 200, 2.5},
		{1_000_000, 2_500_000, 7},
		{0.1, 0.2, 3},
	}
	for _, k := range kasus {
		gabungan := HitungFee(k.a+k.b, k.r)
		terpisah := HitungFee(k.a, k.r) + HitungFee(k.b, k.r)
		if math.Abs(gabungan-terpisah) > 1e-6 {
			t.Errorf("fee tidak linear pada a=%v b=%v r=%v: %v vs %v", k.a, k.b, k.r, gabungan, terpisah)
		}
	}
}

func txFee(proyekID uint, bulan string, jumlah, nilaiFee float64) transaksi.Transaksi {
	return transaksi.Transaksi{
		ProyekID:           proyekID,
		BulanRealisasi:     bulan,
		JumlahRealisasi:    jumlah,
		NilaiManagementFee: nilaiFee,
	}
}

func TestRekapBulananPakaiSnapshot(t *testing.T) {
	// dua transaksi Januari dengan snapshot tarif berbeda: rekap harus
	// menjumlahkan nilai tersimpan, bukan menghitung ulang dari tarif kini
	txs := []transaksi.Transaksi{
		txFee(10, "2024-01", 100_000, 2_500), // snapshot 2.5%
		txFee(10, "2024-01", 100_000, 5_000), // snapshot 5% (tarif lama)
		txFee(10, "2024-02", 200_000, 5_000),
		txFee(99, "2024-01", 999_999, 9_999), // proyek lain
		txFee(10, "", 50_000, 1_000),         // tanpa bulan: dilewati
	}

	rekap := RekapBulanan(txs, 10)
	if len(rekap) != 2 {
		t.Fatalf("jumlah periode = %d, mau 2", len(rekap))
	}
	jan := rekap["2024-01"]
	if jan.TotalRealisasi != 200_000 || jan.ManagementFee != 7_500 || jan.JumlahTransaksi != 2 {
		t.Errorf("rekap Januari salah: %+v", jan)
	}
	feb := rekap["2024-02"]
	if feb.TotalRealisasi != 200_000 || feb.ManagementFee != 5_000 || feb.JumlahTransaksi != 1 {
		t.Errorf("rekap Februari salah: %+v", feb)
	}
}

func proyekDenganTarif(id uint, judul string, tarif *float64) proyek.Proyek {
	p := proyek.Proyek{JudulPekerjaan: judul, NoSP2K: "SP-" + judul, TarifManagementFeePersen: tarif}
	p.ID = id
	return p
}

func TestSusunLaporan(t *testing.T) {
	tarif := 2.5
	proyeks := []proyek.Proyek{
		proyekDenganTarif(1, "A", &tarif),
		proyekDenganTarif(2, "B", nil), // tanpa tarif: dilewati
	}
	txs := []transaksi.Transaksi{
		txFee(1, "2024-01", 100_000, 2_500),
		txFee(1, "2024-03", 200_000, 5_000),
		txFee(2, "2024-01", 999_999, 0),
	}

	baris := SusunLaporan(proyeks, txs)
	if len(baris) != 2 {
		t.Fatalf("jumlah baris = %d, mau 2 (proyek tanpa tarif dilewati)", len(baris))
	}
	// urut bulan terbaru lebih dulu
	if baris[0].Bulan != "2024-03" || baris[1].Bulan != "2024-01" {
		t.Errorf("urutan baris salah: %q lalu %q", baris[0].Bulan, baris[1].Bulan)
	}
	if baris[0].Tarif != 2.5 || baris[0].ManagementFee != 5_000 {
		t.Errorf("baris pertama salah: %+v", baris[0])
	}

	ringkas := Ringkas(baris)
	if len(ringkas) != 1 {
		t.Fatalf("jumlah ringkasan = %d, mau 1", len(ringkas))
	}
	if ringkas[0].TotalFee != 7_500 || ringkas[0].TotalRealisasi != 300_000 {
		t.Errorf("ringkasan salah: %+v", ringkas[0])
	}
	if len(ringkas[0].Bulan) != 2 {
		t.Errorf("jumlah bulan ringkasan = %d, mau 2", len(ringkas[0].Bulan))
	}
}
