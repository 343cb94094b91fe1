package klien

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/grahakarya/api-anggaran/internal/apperror"
)

// Handler mengelola rute CRUD data master klien.
type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var k Klien
	if err := json.NewDecoder(r.Body).Decode(&k); err != nil {
		http.Error(w, "JSON tidak valid", http.StatusBadRequest)
		return
	}
	if k.Nama == "" {
		http.Error(w, "Nama klien wajib diisi", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Create(&k); err != nil {
		http.Error(w, "Gagal menyimpan klien", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(k)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.FindAll()
	if err != nil {
		http.Error(w, "Gagal mengambil data klien", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"clients": list})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID tidak valid", http.StatusBadRequest)
		return
	}
	k, err := h.Repo.FindByID(uint(id))
	if err != nil {
		apperror.TulisHTTP(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(k)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID tidak valid", http.StatusBadRequest)
		return
	}
	k, err := h.Repo.FindByID(uint(id))
	if err != nil {
		apperror.TulisHTTP(w, err)
		return
	}
	var payload Klien
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON tidak valid", http.StatusBadRequest)
		return
	}
	k.Nama = payload.Nama
	k.NamaKontak = payload.NamaKontak
	k.Telepon = payload.Telepon
	k.Alamat = payload.Alamat
	if err := h.Repo.Update(k); err != nil {
		http.Error(w, "Gagal memperbarui klien", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(k)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID tidak valid", http.StatusBadRequest)
		return
	}
	k, err := h.Repo.FindByID(uint(id))
	if err != nil {
		apperror.TulisHTTP(w, err)
		return
	}
	if err := h.Repo.Delete(k); err != nil {
		http.Error(w, "Gagal menghapus klien", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
