package format

import "testing"

func TestRupiah(t *testing.T) {
	kasus := []struct {
		jumlah float64
		mau    string
	}{
		{1_000_000, "Rp 1.000.000"},
		{1_500_000_000, "Rp 1.500.000.000"},
		{1234, "Rp 1.234"},
		{500, "Rp 500"},
		{0, "Rp 0"},
		{-250_000, "-Rp 250.000"},
	}
	for _, k := range kasus {
		if got := Rupiah(k.jumlah); got != k.mau {
			t.Errorf("Rupiah(%v) = %q, mau %q", k.jumlah, got, k.mau)
		}
	}
}

func TestRupiahSingkat(t *testing.T) {
	kasus := []struct {
		jumlah float64
		mau    string
	}{
		{1_500_000_000, "Rp 1.5M"},
		{2_500_000, "Rp 2.5Jt"},
		{7_500, "Rp 7.5Rb"},
		{1_000_000, "Rp 1.0Jt"},
		{999, "Rp 999"},
		{0, "Rp 0"},
		{-2_500_000, "-Rp 2.5Jt"},
		{-1_500_000_000, "-Rp 1.5M"},
		{-999, "-Rp 999"},
	}
	for _, k := range kasus {
		if got := RupiahSingkat(k.jumlah); got != k.mau {
			t.Errorf("RupiahSingkat(%v) = %q, mau %q", k.jumlah, got, k.mau)
		}
	}
}

func TestAngka(t *testing.T) {
	if got := Angka(1_234_567); got != "1.234.567" {
		t.Errorf("Angka(1234567) = %q", got)
	}
}

func TestTanggalDisplay(t *testing.T) {
	kasus := []struct {
		iso string
		mau string
	}{
		{"2024-08-17", "17 Agu 2024"},
		{"2024-01-05", "05 Jan 2024"},
		{"2024-05-01T00:00:00Z", "01 Mei 2024"},
		{"2024-12-31", "31 Des 2024"},
		{"", ""},
		{"bukan-tanggal", ""},
		{"2024-13-01", ""},
	}
	for _, k := range kasus {
		if got := TanggalDisplay(k.iso); got != k.mau {
			t.Errorf("TanggalDisplay(%q) = %q, mau %q", k.iso, got, k.mau)
		}
	}
}

func TestPeriodeDisplay(t *testing.T) {
	kasus := []struct {
		periode string
		mau     string
	}{
		{"2024-01", "Jan 24"},
		{"2023-11", "Nov 23"},
		{" 2024-06 ", "Jun 24"},
		{"", ""},
		{"2024", ""},
	}
	for _, k := range kasus {
		if got := PeriodeDisplay(k.periode); got != k.mau {
			t.Errorf("PeriodeDisplay(%q) = %q, mau %q", k.periode, got, k.mau)
		}
	}
}
