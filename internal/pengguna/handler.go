package pengguna

import (
	"encoding/json"
	"net/http"

	"github.com/grahakarya/api-anggaran/internal/apperror"
	"github.com/grahakarya/api-anggaran/internal/auth"
	"github.com/grahakarya/api-anggaran/internal/utils"
)

// Handler mengelola rute autentikasi dan profil pengguna.
type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

type credensialDTO struct {
	Nama  string `json:"nama"`
	Email string `json:"email"`
	Sandi string `json:"sandi"`
}

// Register menangani POST /auth/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto credensialDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON tidak valid", http.StatusBadRequest)
		return
	}
	if dto.Email == "" || dto.Sandi == "" {
		http.Error(w, "Email dan sandi wajib diisi", http.StatusBadRequest)
		return
	}
	hash, err := utils.HashSandi(dto.Sandi)
	if err != nil {
		http.Error(w, "Gagal memproses sandi", http.StatusInternalServerError)
		return
	}
	p := Pengguna{Nama: dto.Nama, Email: dto.Email, Sandi: hash}
	if err := h.Repo.Create(&p); err != nil {
		http.Error(w, "Email sudah terdaftar", http.StatusConflict)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// Login menangani POST /auth/login dan mengembalikan access token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto credensialDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON tidak valid", http.StatusBadRequest)
		return
	}
	p, err := h.Repo.FindByEmail(dto.Email)
	if err != nil || !utils.VerifikasiSandi(p.Sandi, dto.Sandi) {
		http.Error(w, "Email atau sandi salah", http.StatusUnauthorized)
		return
	}
	token, err := auth.GenerateAccessToken(p.ID, p.IsAdmin)
	if err != nil {
		http.Error(w, "Gagal menerbitkan token", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"token":    token,
		"pengguna": p,
	})
}

// Me menangani GET /me.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.UserIDDari(r.Context())
	if !ok {
		http.Error(w, "Context tanpa identitas", http.StatusUnauthorized)
		return
	}
	p, err := h.Repo.FindByID(id)
	if err != nil {
		apperror.TulisHTTP(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// UpdateMe menangani PUT /me (nama dan sandi saja).
func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.UserIDDari(r.Context())
	if !ok {
		http.Error(w, "Context tanpa identitas", http.StatusUnauthorized)
		return
	}
	p, err := h.Repo.FindByID(id)
	if err != nil {
		apperror.TulisHTTP(w, err)
		return
	}
	var dto credensialDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON tidak valid", http.StatusBadRequest)
		return
	}
	if dto.Nama != "" {
		p.Nama = dto.Nama
	}
	if dto.Sandi != "" {
		hash, err := utils.HashSandi(dto.Sandi)
		if err != nil {
			http.Error(w, "Gagal memproses sandi", http.StatusInternalServerError)
			return
		}
		p.Sandi = hash
	}
	if err := h.Repo.Update(p); err != nil {
		http.Error(w, "Gagal menyimpan perubahan", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}
