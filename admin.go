// admin.go - privacy-conscious visit tracking and the admin pages over it
package main

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const adminCookie = "admin_token"

// Admin guards the dashboard with a per-process token cookie.
type Admin struct {
	username string
	password string
	token    string
	tracker  *Tracker
	log      *zap.Logger
}

func NewAdmin(cfg Config, tracker *Tracker, log *zap.Logger) (*Admin, error) {
	token, err := randomHex(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate admin token: %w", err)
	}

	a := &Admin{
		username: cfg.AdminUsername,
		password: cfg.AdminPassword,
		token:    token,
		tracker:  tracker,
		log:      log,
	}

	// Config.Validate refuses empty credentials in release mode.
	if a.username == "" {
		a.username = "admin"
		log.Warn("using default admin username, set ADMIN_USERNAME")
	}
	if a.password == "" {
		a.password = "admin123"
		log.Warn("using default admin password, set ADMIN_PASSWORD")
	}
	if cfg.Development() {
		log.Debug("admin token (dev only)", zap.String("token", token))
	}
	return a, nil
}

func (a *Admin) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (a *Admin) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	return userOK && passOK
}

// visitorTracking records page views in the background. Static assets, admin
// pages and visitors sending DNT are skipped.
func visitorTracking(tracker *Tracker, log *zap.Logger) gin.HandlerFunc {
	skipped := []string{"/static/", "/admin/", "/api/", "/favicon", "/privacy", "/healthz"}
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range skipped {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}
		if c.GetHeader("DNT") == "1" || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		tracker.Go(log, "visitor", func(ctx context.Context) error {
			return tracker.RecordVisit(ctx, ip, ua, path)
		})
		c.Next()
	}
}

func (a *Admin) setupRoutes(r *gin.Engine) {
	// Privacy policy
	r.GET("/privacy", func(c *gin.Context) {
		c.HTML(http.StatusOK, "privacy.html", gin.H{
			"title": "Privacy Policy",
		})
	})

	// Admin login page
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{
			"title": "Admin Login",
		})
	})

	// Admin login handler
	r.POST("/admin/login", func(c *gin.Context) {
		client := a.tracker.HashIP(c.ClientIP())
		if !a.checkCredentials(c.PostForm("username"), c.PostForm("password")) {
			a.log.Warn("failed admin login", zap.String("client", client))
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"title": "Admin Login",
				"error": "Invalid credentials",
			})
			return
		}

		c.SetSameSite(http.SameSiteStrictMode)
		c.SetCookie(adminCookie, a.token, 3600*24, "/admin", "", false, true)
		a.log.Info("admin login", zap.String("client", client))
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	// Admin logout
	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		a.log.Info("admin logout", zap.String("client", a.tracker.HashIP(c.ClientIP())))
		c.Redirect(http.StatusFound, "/admin/login")
	})

	// Protected admin routes
	admin := r.Group("/admin")
	admin.Use(a.authMiddleware())

	// Admin dashboard
	admin.GET("/dashboard", func(c *gin.Context) {
		stats, err := a.tracker.Stats(c.Request.Context())
		if err != nil {
			a.log.Error("error loading admin stats", zap.Error(err))
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{
			"stats": stats,
		})
	})

	// Stats for HTMX/AJAX refreshes
	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := a.tracker.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	// Recent visitors, hashed
	admin.GET("/visitors", func(c *gin.Context) {
		visitors, err := a.tracker.RecentVisitors(c.Request.Context(), 200)
		if err != nil {
			a.log.Error("error loading visitors", zap.Error(err))
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load visitors",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-visitors.html", gin.H{
			"visitors": visitors,
		})
	})

	// Retention cleanup on demand
	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		removed, err := a.tracker.Cleanup(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		a.log.Info("privacy cleanup", zap.Int64("removed", removed))
		c.JSON(http.StatusOK, gin.H{"removed": removed})
	})

	// Stats export as a JSON download
	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := a.tracker.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		a.log.Info("admin stats exported", zap.String("client", a.tracker.HashIP(c.ClientIP())))
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		c.JSON(http.StatusOK, stats)
	})
}
