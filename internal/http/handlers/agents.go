package handlers

import (
	"net/http"

	"seaboat-backend/internal/config"
	"seaboat-backend/internal/domain/models"
	"seaboat-backend/internal/repositories"
	"seaboat-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

func agentRepo() repositories.AgentRepository {
	return repositories.AgentRepository{DB: config.DB}
}

// GET /api/agens
func GetAgents(c *gin.Context) {
	agents, err := agentRepo().List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal mengambil data agen", err)
		return
	}
	c.JSON(http.StatusOK, agents)
}

// POST /api/agens
func CreateAgent(c *gin.Context) {
	var input models.Agent
	if !BindJSONOrError(c, &input) {
		return
	}
	input.KodeAgen = utils.TrimOrEmpty(input.KodeAgen)
	input.Nama = utils.NormalizeSpace(input.Nama)
	if input.KodeAgen == "" || input.Nama == "" {
		RespondError(c, http.StatusBadRequest, "kode agen dan nama wajib diisi", nil)
		return
	}
	if input.Role != models.RoleAdmin {
		input.Role = models.RoleAgent
	}

	id, err := agentRepo().Create(input)
	if err != nil {
		// kode agen duplikat jadi conflict, bukan 500
		RespondDomainError(c, err)
		return
	}
	input.ID = id
	c.JSON(http.StatusCreated, input)
}

// PUT /api/agens/:id
func UpdateAgent(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var input models.Agent
	if !BindJSONOrError(c, &input) {
		return
	}
	input.ID = id
	if input.Role != models.RoleAdmin {
		input.Role = models.RoleAgent
	}

	if err := agentRepo().Update(input); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, input)
}

// DELETE /api/agens/:id
func DeleteAgent(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if err := agentRepo().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "agen dihapus"})
}
