package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/internal/config"
	"github.com/NCUHOME-Y/26-Hack-FocusGarden-BE/pkg/util"
)

// GuestLogin POST /guest-login
// 单存档应用，登录只为给客户端发个 token；有 cookie 就复用
func GuestLogin(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		gid, _ := c.Cookie("fgid")
		if gid == "" {
			gid = uuid.NewString()
			// SameSite=Lax + HttpOnly；上线 HTTPS 后把 secure 改成 true
			c.SetCookie("fgid", gid, 3600*24*365, "/", "", false, true)
		}
		token, err := util.GenerateToken(cfg.JWTSecret, gid)
		if err != nil {
			c.JSON(500, gin.H{"code": 500, "message": "token error"})
			return
		}
		c.JSON(200, gin.H{"token": token})
	}
}
