package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/models"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/session"
)

// POST /api/v1/sessions/start
type startReq struct {
	Minutes int `json:"minutes"` // 10/25/45/60
}

// StartSession 开始一次专注会话
func (g *Garden) StartSession(c *gin.Context) {
	var req startReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"message": "bad request"})
		return
	}
	sess, err := g.Store.StartSession(models.SessionMinutes(req.Minutes))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{
		"session_id": sess.ID,
		"status":     sess.Status,
		"minutes":    int(sess.Minutes),
		"started_at": sess.StartedAt.UTC(),
	})
}

// CurrentSession GET /api/v1/sessions/current
// 没有活跃会话时返回 null（和客户端约定好的）
func (g *Garden) CurrentSession(c *gin.Context) {
	sess, err := g.Store.CurrentSession()
	if err != nil {
		fail(c, err)
		return
	}
	if sess == nil || sess.Status != models.StatusActive {
		c.JSON(200, nil)
		return
	}
	now := g.Store.Clock()
	c.JSON(200, gin.H{
		"session_id":   sess.ID,
		"status":       sess.Status,
		"minutes":      int(sess.Minutes),
		"started_at":   sess.StartedAt.UTC(),
		"elapsed_ms":   session.Elapsed(*sess, now).Milliseconds(),
		"remaining_ms": session.Remaining(*sess, now).Milliseconds(),
		"progress":     session.Progress(*sess, now),
	})
}

// InterruptSession POST /api/v1/sessions/interrupt
// 中断没收全部进度，结果里每株都是 0 GP
func (g *Garden) InterruptSession(c *gin.Context) {
	results, err := g.Store.InterruptSession()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, gin.H{"status": models.StatusInterrupted, "plant_results": results})
}

// ListSessions GET /api/v1/sessions
func (g *Garden) ListSessions(c *gin.Context) {
	sessions, err := g.Store.Sessions()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(200, sessions)
}

// LastResults GET /api/v1/sessions/results
// 拉取上一次会话的结算结果（结果弹窗用）
func (g *Garden) LastResults(c *gin.Context) {
	c.JSON(200, g.Store.LastResults())
}

// ClearResults POST /api/v1/sessions/results/clear
// 弹窗关掉后确认清空，防止重复展示
func (g *Garden) ClearResults(c *gin.Context) {
	g.Store.ClearResults()
	c.JSON(200, gin.H{"ok": true})
}
