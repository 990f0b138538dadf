package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/care"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/models"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/rules"
)

// plantView 植物 + 派生的展示字段
type plantView struct {
	models.Plant
	SpeciesName      string  `json:"species_name"`
	GrowthPercentage float64 `json:"growth_percentage"`
	FullyGrown       bool    `json:"fully_grown"`
	Condition        string  `json:"condition"`
	NeedsWater       bool    `json:"needs_water"`
	NeedsFertilizer  bool    `json:"needs_fertilizer"`
	NeedsCure        bool    `json:"needs_cure"`
}

func toView(p models.Plant) plantView {
	name := ""
	if sp := models.SpeciesByID(p.SpeciesID); sp != nil {
		name = sp.Name
	}
	return plantView{
		Plant:            p,
		SpeciesName:      name,
		GrowthPercentage: rules.GrowthPercentage(p.GrowthPoints),
		FullyGrown:       rules.IsFullyGrown(p.GrowthPoints),
		Condition:        string(care.PlantCondition(p)),
		NeedsWater:       care.NeedsWater(p),
		NeedsFertilizer:  care.NeedsFertilizer(p),
		NeedsCure:        care.NeedsCure(p),
	}
}

// ListPlants GET /api/v1/plants
func (g *Garden) ListPlants(c *gin.Context) {
	plants, err := g.Store.Plants()
	if err != nil {
		fail(c, err)
		return
	}
	views := make([]plantView, 0, len(plants))
	for _, p := range plants {
		views = append(views, toView(p))
	}
	maxSlots, err := g.Store.MaxSlots()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"plants": views, "max_slots": maxSlots})
}

// GetPlant GET /api/v1/plants/:id
func (g *Garden) GetPlant(c *gin.Context) {
	p, err := g.Store.Plant(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, toView(p))
}

// POST /api/v1/plants
type plantSeedReq struct {
	SeedID    string  `json:"seed_id"`
	SlotIndex int     `json:"slot_index"`
	Nickname  *string `json:"nickname"`
}

// PlantSeed 把种子种进槽位
func (g *Garden) PlantSeed(c *gin.Context) {
	var req plantSeedReq
	if err := c.ShouldBindJSON(&req); err != nil || req.SeedID == "" {
		c.JSON(400, gin.H{"message": "bad request"})
		return
	}
	p, err := g.Store.PlantSeed(req.SeedID, req.SlotIndex, req.Nickname)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, toView(p))
}

// DeletePlant DELETE /api/v1/plants/:id
func (g *Garden) DeletePlant(c *gin.Context) {
	if err := g.Store.DeletePlant(c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"ok": true})
}

// WaterPlant POST /api/v1/plants/:id/water
func (g *Garden) WaterPlant(c *gin.Context) {
	p, err := g.Store.WaterPlant(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, toView(p))
}

// FertilizePlant POST /api/v1/plants/:id/fertilize
func (g *Garden) FertilizePlant(c *gin.Context) {
	p, err := g.Store.FertilizePlant(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, toView(p))
}

// CurePlant POST /api/v1/plants/:id/cure
func (g *Garden) CurePlant(c *gin.Context) {
	p, err := g.Store.CurePlant(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, toView(p))
}
