package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/models"
)

// POST /api/v1/gacha/draw
type drawReq struct {
	Free bool `json:"free"`
}

// DrawGacha 抽一次卡
func (g *Garden) DrawGacha(c *gin.Context) {
	var req drawReq
	_ = c.ShouldBindJSON(&req)
	seed, err := g.Store.DrawGacha(req.Free)
	if err != nil {
		fail(c, err)
		return
	}
	var species *models.PlantSpecies
	if sp := models.SpeciesByID(seed.SpeciesID); sp != nil {
		species = sp
	}
	c.JSON(200, gin.H{"seed": seed, "species": species})
}

// GachaStatus GET /api/v1/gacha/status
func (g *Garden) GachaStatus(c *gin.Context) {
	remaining, err := g.Store.FreeGachaRemaining()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"free_remaining": remaining})
}

// ListSeeds GET /api/v1/seeds
func (g *Garden) ListSeeds(c *gin.Context) {
	seeds, err := g.Store.Seeds()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, seeds)
}

// ListSpecies GET /api/v1/species 植物种目录（静态数据）
func (g *Garden) ListSpecies(c *gin.Context) {
	c.JSON(200, models.Species)
}
