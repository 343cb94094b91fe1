// Package format berisi fungsi murni untuk menampilkan angka dan tanggal
// dalam format Indonesia. Hanya dipakai di lapisan presentasi; komponen
// perhitungan tidak pernah menyimpan string hasil format.
package format

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Indonesian)

// namaBulanSingkat mengikuti singkatan bulan bahasa Indonesia.
var namaBulanSingkat = [...]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// Rupiah memformat jumlah menjadi "Rp 1.000.000" (tanpa desimal,
// pemisah ribuan titik). Nilai negatif diawali tanda minus.
func Rupiah(jumlah float64) string {
	negatif := jumlah < 0
	if negatif {
		jumlah = -jumlah
	}
	s := printer.Sprint(number.Decimal(jumlah, number.MaxFractionDigits(0)))
	if negatif {
		return "-Rp " + s
	}
	return "Rp " + s
}

// RupiahSingkat memadatkan jumlah besar: M untuk miliar, Jt untuk juta,
// Rb untuk ribu, satu angka di belakang koma. Nilai negatif dipadatkan
// dari nilai mutlaknya lalu diberi tanda minus.
func RupiahSingkat(jumlah float64) string {
	if jumlah < 0 {
		return "-" + RupiahSingkat(-jumlah)
	}
	switch {
	case jumlah >= 1_000_000_000:
		return fmt.Sprintf("Rp %.1fM", jumlah/1_000_000_000)
	case jumlah >= 1_000_000:
		return fmt.Sprintf("Rp %.1fJt", jumlah/1_000_000)
	case jumlah >= 1_000:
		return fmt.Sprintf("Rp %.1fRb", jumlah/1_000)
	}
	return Rupiah(jumlah)
}

// Angka memformat angka biasa dengan pemisah ribuan Indonesia.
func Angka(n float64) string {
	return printer.Sprint(number.Decimal(n, number.MaxFractionDigits(0)))
}

// TanggalDisplay mengubah tanggal ISO (YYYY-MM-DD, boleh dengan komponen
// waktu di belakang) menjadi "02 Jan 2006". String kosong bila input
// tidak bisa diparse.
func TanggalDisplay(iso string) string {
	if len(iso) >= 10 {
		iso = iso[:10]
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%02d %s %d", t.Day(), namaBulanSingkat[t.Month()-1], t.Year())
}

// PeriodeDisplay mengubah periode "2024-01" menjadi "Jan 24".
func PeriodeDisplay(periode string) string {
	t, err := time.Parse("2006-01", strings.TrimSpace(periode))
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s %02d", namaBulanSingkat[t.Month()-1], t.Year()%100)
}
