package transaksi

import "time"

// StatusSLA mengklasifikasikan ketepatan pembayaran sebuah transaksi
// relatif terhadap tanggal PO/tagihan.
type StatusSLA string

const (
	SLAOntime  StatusSLA = "ontime"
	SLAHPlus1  StatusSLA = "h+1"
	SLALate    StatusSLA = "late"
	SLAUnknown StatusSLA = "unknown"
)

// LabelSLA adalah nama tampilan tiap status.
var LabelSLA = map[StatusSLA]string{
	SLAOntime:  "Tepat Waktu",
	SLAHPlus1:  "H+1",
	SLALate:    "Terlambat",
	SLAUnknown: "Tidak Ada Data",
}

// KlasifikasiSLA menentukan status pembayaran dari tanggal PO dan
// tanggal transaksi (string ISO, komponen waktu diabaikan):
//
//	transaksi <= akhir bulan PO            -> ontime
//	transaksi <= akhir bulan berikutnya    -> h+1
//	selebihnya                             -> late
//
// Kedua tanggal dinormalkan ke tengah malam UTC sebelum dibandingkan
// sehingga perbandingannya murni tanggal kalender. Tanggal kosong atau
// tidak bisa diparse menghasilkan unknown.
func KlasifikasiSLA(tanggalPO, tanggalTransaksi string) StatusSLA {
	po, okPO := tanggalKalender(tanggalPO)
	tx, okTx := tanggalKalender(tanggalTransaksi)
	if !okPO || !okTx {
		return SLAUnknown
	}

	// hari ke-0 bulan berikutnya = hari terakhir bulan ini
	akhirBulanPO := time.Date(po.Year(), po.Month()+1, 0, 0, 0, 0, 0, time.UTC)
	akhirBulanBerikut := time.Date(po.Year(), po.Month()+2, 0, 0, 0, 0, 0, time.UTC)

	switch {
	case !tx.After(akhirBulanPO):
		return SLAOntime
	case !tx.After(akhirBulanBerikut):
		return SLAHPlus1
	}
	return SLALate
}

// tanggalKalender memotong string ISO ke tanggal kalender UTC.
func tanggalKalender(iso string) (time.Time, bool) {
	if len(iso) >= 10 {
		iso = iso[:10]
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
}
