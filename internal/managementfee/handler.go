package managementfee

import (
	"encoding/json"
	"net/http"

	"github.com/grahakarya/api-anggaran/internal/proyek"
	"github.com/grahakarya/api-anggaran/internal/transaksi"
)

// Handler menyajikan laporan management fee.
type Handler struct {
	ProyekRepo    *proyek.Repository
	TransaksiRepo *transaksi.Repository
}

func NewHandler(proyekRepo *proyek.Repository, transaksiRepo *transaksi.Repository) *Handler {
	return &Handler{ProyekRepo: proyekRepo, TransaksiRepo: transaksiRepo}
}

// Laporan menangani GET /management-fee: baris per proyek per bulan,
// ringkasan per proyek, dan total keseluruhan.
func (h *Handler) Laporan(w http.ResponseWriter, r *http.Request) {
	proyeks, err := h.ProyekRepo.FindAll()
	if err != nil {
		http.Error(w, "Gagal mengambil proyek", http.StatusInternalServerError)
		return
	}
	txs, err := h.TransaksiRepo.FindAll()
	if err != nil {
		http.Error(w, "Gagal mengambil transaksi", http.StatusInternalServerError)
		return
	}

	baris := SusunLaporan(proyeks, txs)
	var totalFee, totalRealisasi float64
	for _, b := range baris {
		totalFee += b.ManagementFee
		totalRealisasi += b.TotalRealisasi
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"rows":            baris,
		"summary":         Ringkas(baris),
		"total_fee":       totalFee,
		"total_realisasi": totalRealisasi,
	})
}
