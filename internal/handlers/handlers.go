package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/care"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/garden"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/session"
)

// Garden 所有业务接口的处理器，拿着协调层的 Store
type Garden struct {
	Store *garden.Store
}

func NewGarden(store *garden.Store) *Garden { return &Garden{Store: store} }

// userErrors 预期内的用户操作错误，给 400 + 原因
var userErrors = []error{
	garden.ErrNoPlants,
	garden.ErrSessionInProgress,
	garden.ErrNoActiveSession,
	garden.ErrSeedNotFound,
	garden.ErrPlantNotFound,
	garden.ErrSlotOccupied,
	garden.ErrSlotOutOfRange,
	garden.ErrNoFreeDraws,
	care.ErrPlantDead,
	care.ErrNotDiseased,
	session.ErrBadMinutes,
}

// fail 统一错误出口：用户错误 400，非 active 会话被结算是调用顺序 bug 给 500
func fail(c *gin.Context, err error) {
	for _, ue := range userErrors {
		if errors.Is(err, ue) {
			c.JSON(400, gin.H{"message": err.Error()})
			return
		}
	}
	c.JSON(500, gin.H{"message": err.Error()})
}
