package dasbor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/grahakarya/api-anggaran/internal/anggaran"
	"github.com/grahakarya/api-anggaran/internal/apperror"
	"github.com/grahakarya/api-anggaran/internal/proyek"
	"github.com/grahakarya/api-anggaran/internal/transaksi"
)

// Handler menyajikan agregat dashboard dan detail proyek.
type Handler struct {
	ProyekRepo    *proyek.Repository
	AnggaranRepo  *anggaran.Repository
	TransaksiRepo *transaksi.Repository
}

func NewHandler(proyekRepo *proyek.Repository, anggaranRepo *anggaran.Repository, transaksiRepo *transaksi.Repository) *Handler {
	return &Handler{ProyekRepo: proyekRepo, AnggaranRepo: anggaranRepo, TransaksiRepo: transaksiRepo}
}

func (h *Handler) muatKoleksi(w http.ResponseWriter) ([]proyek.Proyek, []anggaran.ItemAnggaran, []transaksi.Transaksi, bool) {
	proyeks, err := h.ProyekRepo.FindAll()
	if err != nil {
		http.Error(w, "Gagal mengambil proyek", http.StatusInternalServerError)
		return nil, nil, nil, false
	}
	items, err := h.AnggaranRepo.FindAll()
	if err != nil {
		http.Error(w, "Gagal mengambil item anggaran", http.StatusInternalServerError)
		return nil, nil, nil, false
	}
	txs, err := h.TransaksiRepo.FindAll()
	if err != nil {
		http.Error(w, "Gagal mengambil transaksi", http.StatusInternalServerError)
		return nil, nil, nil, false
	}
	return proyeks, items, txs, true
}

// Metrics menangani GET /dashboard/metrics.
func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	proyeks, items, txs, ok := h.muatKoleksi(w)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(HitungMetrik(proyeks, items, txs))
}

// Chart menangani GET /dashboard/chart.
func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	_, items, txs, ok := h.muatKoleksi(w)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"series": SeriBulanan(items, txs)})
}

// ProyekMetrics menangani GET /projects/{id}/metrics.
func (h *Handler) ProyekMetrics(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID proyek tidak valid", http.StatusBadRequest)
		return
	}
	proyeks, items, txs, ok := h.muatKoleksi(w)
	if !ok {
		return
	}
	metrik, err := HitungMetrikProyek(uint(id), proyeks, items, txs)
	if err != nil {
		apperror.TulisHTTP(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(metrik)
}

// ProyekTren menangani GET /projects/{id}/trend.
func (h *Handler) ProyekTren(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID proyek tidak valid", http.StatusBadRequest)
		return
	}
	p, err := h.ProyekRepo.FindByID(uint(id))
	if err != nil {
		apperror.TulisHTTP(w, err)
		return
	}
	items, err := h.AnggaranRepo.FindByProyek(p.ID)
	if err != nil {
		http.Error(w, "Gagal mengambil item anggaran", http.StatusInternalServerError)
		return
	}
	txs, err := h.TransaksiRepo.FindByProyek(p.ID)
	if err != nil {
		http.Error(w, "Gagal mengambil transaksi", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"trend": TrenProyek(p, items, txs)})
}
