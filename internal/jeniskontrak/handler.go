package jeniskontrak

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/grahakarya/api-anggaran/internal/apperror"
)

// Handler mengelola rute CRUD jenis kontrak.
type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var j JenisKontrak
	if err := json.NewDecoder(r.Body).Decode(&j); err != nil {
		http.Error(w, "JSON tidak valid", http.StatusBadRequest)
		return
	}
	if j.Nama == "" {
		http.Error(w, "Nama jenis kontrak wajib diisi", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Create(&j); err != nil {
		http.Error(w, "Gagal menyimpan jenis kontrak", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(j)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.FindAll()
	if err != nil {
		http.Error(w, "Gagal mengambil jenis kontrak", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"contract_types": list})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID tidak valid", http.StatusBadRequest)
		return
	}
	j, err := h.Repo.FindByID(uint(id))
	if err != nil {
		apperror.TulisHTTP(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(j)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID tidak valid", http.StatusBadRequest)
		return
	}
	j, err := h.Repo.FindByID(uint(id))
	if err != nil {
		apperror.TulisHTTP(w, err)
		return
	}
	var payload JenisKontrak
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON tidak valid", http.StatusBadRequest)
		return
	}
	j.Nama = payload.Nama
	j.Kode = payload.Kode
	j.Deskripsi = payload.Deskripsi
	if err := h.Repo.Update(j); err != nil {
		http.Error(w, "Gagal memperbarui jenis kontrak", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(j)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID tidak valid", http.StatusBadRequest)
		return
	}
	j, err := h.Repo.FindByID(uint(id))
	if err != nil {
		apperror.TulisHTTP(w, err)
		return
	}
	if err := h.Repo.Delete(j); err != nil {
		http.Error(w, "Gagal menghapus jenis kontrak", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
