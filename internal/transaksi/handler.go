package transaksi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/grahakarya/api-anggaran/internal/apperror"
	"github.com/grahakarya/api-anggaran/internal/proyek"
)

// Handler mengelola rute transaksi realisasi.
type Handler struct {
	Repo       *Repository
	ProyekRepo *proyek.Repository
}

func NewHandler(repo *Repository, proyekRepo *proyek.Repository) *Handler {
	return &Handler{Repo: repo, ProyekRepo: proyekRepo}
}

// Create menangani POST /transactions. Tarif management fee proyek
// di-snapshot ke transaksi pada saat ini.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto TransaksiDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON tidak valid", http.StatusBadRequest)
		return
	}
	if err := dto.Validasi(); err != nil {
		apperror.TulisHTTP(w, err)
		return
	}

	p, err := h.ProyekRepo.FindByID(dto.ProyekID)
	if err != nil {
		apperror.TulisHTTP(w, err)
		return
	}

	t := Transaksi{
		ProyekID:          dto.ProyekID,
		JenisBiayaID:      dto.JenisBiayaID,
		TanggalTransaksi:  dto.TanggalTransaksi,
		TanggalPOTagihan:  dto.TanggalPOTagihan,
		BulanRealisasi:    dto.BulanEfektif(),
		JumlahRealisasi:   dto.JumlahRealisasi,
		Deskripsi:         dto.Deskripsi,
		JumlahTenagaKerja: dto.JumlahTenagaKerja,
		BuktiURL:          dto.BuktiURL,
	}
	t.SnapshotFee(p.TarifFee())

	if err := h.Repo.Create(&t); err != nil {
		http.Error(w, "Gagal menyimpan transaksi", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(t)
}

// List menangani GET /transactions. Query param opsional `project_id`
// dan `bulan` (YYYY-MM).
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var (
		list []Transaksi
		err  error
	)
	switch {
	case r.URL.Query().Get("project_id") != "":
		id, convErr := strconv.Atoi(r.URL.Query().Get("project_id"))
		if convErr != nil {
			http.Error(w, "project_id tidak valid", http.StatusBadRequest)
			return
		}
		list, err = h.Repo.FindByProyek(uint(id))
	case r.URL.Query().Get("bulan") != "":
		list, err = h.Repo.FindByBulan(r.URL.Query().Get("bulan"))
	default:
		list, err = h.Repo.FindAll()
	}
	if err != nil {
		http.Error(w, "Gagal mengambil transaksi", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"transactions": list})
}

// Get menangani GET /transactions/{id}; status SLA disertakan.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID tidak valid", http.StatusBadRequest)
		return
	}
	t, err := h.Repo.FindByID(uint(id))
	if err != nil {
		apperror.TulisHTTP(w, err)
		return
	}
	sla := KlasifikasiSLA(t.TanggalPOTagihan, t.TanggalTransaksi)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"transaction": t,
		"sla_status":  sla,
		"sla_label":   LabelSLA[sla],
	})
}

// Update menangani PUT /transactions/{id}. Snapshot fee dihitung ulang
// dengan tarif proyek saat edit, sesuai kontrak pembuatan/edit.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID tidak valid", http.StatusBadRequest)
		return
	}
	t, err := h.Repo.FindByID(uint(id))
	if err != nil {
		apperror.TulisHTTP(w, err)
		return
	}
	var dto TransaksiDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON tidak valid", http.StatusBadRequest)
		return
	}
	if dto.ProyekID == 0 {
		dto.ProyekID = t.ProyekID
	}
	if err := dto.Validasi(); err != nil {
		apperror.TulisHTTP(w, err)
		return
	}
	p, err := h.ProyekRepo.FindByID(dto.ProyekID)
	if err != nil {
		apperror.TulisHTTP(w, err)
		return
	}

	t.ProyekID = dto.ProyekID
	t.JenisBiayaID = dto.JenisBiayaID
	t.TanggalTransaksi = dto.TanggalTransaksi
	t.TanggalPOTagihan = dto.TanggalPOTagihan
	t.BulanRealisasi = dto.BulanEfektif()
	t.JumlahRealisasi = dto.JumlahRealisasi
	t.Deskripsi = dto.Deskripsi
	t.JumlahTenagaKerja = dto.JumlahTenagaKerja
	t.BuktiURL = dto.BuktiURL
	t.SnapshotFee(p.TarifFee())

	if err := h.Repo.Update(t); err != nil {
		http.Error(w, "Gagal memperbarui transaksi", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(t)
}

// Delete menangani DELETE /transactions/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID tidak valid", http.StatusBadRequest)
		return
	}
	t, err := h.Repo.FindByID(uint(id))
	if err != nil {
		apperror.TulisHTTP(w, err)
		return
	}
	if err := h.Repo.Delete(t); err != nil {
		http.Error(w, "Gagal menghapus transaksi", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
