package handlers

import (
	"net/http"
	"time"

	"seaboat-backend/internal/config"
	"seaboat-backend/internal/domain"
	"seaboat-backend/internal/domain/models"
	"seaboat-backend/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var jwtSecret = []byte("super-secret-key-change-me")

// SetJWTSecret overrides the signing key from env config at startup.
func SetJWTSecret(secret string) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
}

type loginRequest struct {
	Identity string `json:"identity"` // kode agen atau email
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.AgentRepository{DB: config.DB}
	agent, hash, err := repo.GetCredentials(req.Identity)
	if err != nil {
		if domain.IsNotFound(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Kode agen/email atau password salah"})
			return
		}
		RespondError(c, http.StatusInternalServerError, "gagal query agen", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Kode agen/email atau password salah"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": agent.ID,
		"role":    agent.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal membuat token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tokenString,
		"user":  agent,
	})
}

type registerRequest struct {
	KodeAgen string `json:"kode_agen"`
	Nama     string `json:"nama"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// POST /api/auth/register (hanya admin)
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.KodeAgen == "" || req.Nama == "" || req.Password == "" {
		RespondError(c, http.StatusBadRequest, "kode agen, nama dan password wajib diisi", nil)
		return
	}

	role := req.Role
	if role != models.RoleAdmin {
		role = models.RoleAgent
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal meng-hash password", err)
		return
	}

	repo := repositories.AgentRepository{DB: config.DB}
	id, err := repo.Create(models.Agent{
		KodeAgen: req.KodeAgen,
		Nama:     req.Nama,
		Email:    req.Email,
		Role:     role,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := repo.SetPassword(id, string(hash)); err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyimpan password", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "registrasi berhasil",
		"user": models.Agent{
			ID:       id,
			KodeAgen: req.KodeAgen,
			Nama:     req.Nama,
			Email:    req.Email,
			Role:     role,
		},
	})
}
