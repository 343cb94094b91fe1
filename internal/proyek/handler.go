package proyek

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/grahakarya/api-anggaran/internal/apperror"
)

// Handler mengelola rute CRUD proyek.
type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// Create menangani POST /projects.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto ProyekDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON tidak valid", http.StatusBadRequest)
		return
	}
	if err := dto.Validasi(); err != nil {
		apperror.TulisHTTP(w, err)
		return
	}
	var p Proyek
	dto.KeModel(&p)
	if err := h.Repo.Create(&p); err != nil {
		http.Error(w, "Gagal menyimpan proyek", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"project": p})
}

// List menangani GET /projects. Query param opsional `status`.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var (
		list []Proyek
		err  error
	)
	if status := r.URL.Query().Get("status"); status != "" {
		list, err = h.Repo.FindByStatus(status)
	} else {
		list, err = h.Repo.FindAll()
	}
	if err != nil {
		http.Error(w, "Gagal mengambil proyek", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"projects": list})
}

// Get menangani GET /projects/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID proyek tidak valid", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.FindByID(uint(id))
	if err != nil {
		apperror.TulisHTTP(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"project": p})
}

// Update menangani PUT /projects/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID proyek tidak valid", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.FindByID(uint(id))
	if err != nil {
		apperror.TulisHTTP(w, err)
		return
	}
	var dto ProyekDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON tidak valid", http.StatusBadRequest)
		return
	}
	if err := dto.Validasi(); err != nil {
		apperror.TulisHTTP(w, err)
		return
	}
	dto.KeModel(p)
	if err := h.Repo.Update(p); err != nil {
		http.Error(w, "Gagal memperbarui proyek", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"project": p})
}

// Delete menangani DELETE /projects/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID proyek tidak valid", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.FindByID(uint(id))
	if err != nil {
		apperror.TulisHTTP(w, err)
		return
	}
	if err := h.Repo.Delete(p); err != nil {
		http.Error(w, "Gagal menghapus proyek", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
