package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/config"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/api/handler"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/api/middleware"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/pkg/jwt"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/pkg/redis"
)

const maxBodyBytes = 1 << 20 // 1MB

// Setup builds the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(maxBodyBytes))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		// Public routes. Login carries a rate limit to slow down
		// credential stuffing; signup shares it.
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Signup)
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
		}
		v1.GET("/courses", h.Course.List)
		v1.GET("/books", h.Book.List)

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			users := authorized.Group("/users/me")
			{
				users.PUT("/progress", h.User.UpdateProgress)
				users.PUT("/subscription", h.User.UpdateSubscription)
			}

			courses := authorized.Group("/courses")
			{
				courses.POST("/enroll", h.Course.Enroll)
				courses.GET("/enrollments", h.Course.MyEnrollments)
			}

			books := authorized.Group("/books")
			{
				books.POST("", h.Book.Create)
				books.POST("/:id/purchase", h.Book.Purchase)
				books.DELETE("/:id", h.Book.Delete)
			}

			sessions := authorized.Group("/sessions")
			{
				sessions.POST("", h.Session.Create)
				sessions.GET("", h.Session.List)
				sessions.GET("/calendar.ics", h.Session.Calendar)
			}

			feedback := authorized.Group("/feedback")
			{
				feedback.POST("", h.Feedback.Create)
				feedback.GET("", h.Feedback.List)
			}

			contests := authorized.Group("/contests")
			{
				contests.GET("", h.Contest.List)
				contests.POST("/:id/register", h.Contest.Register)
				contests.GET("/:id/questions", h.Contest.Questions)
				contests.POST("/:id/submit", h.Contest.Submit)
				contests.GET("/:id/export", h.Export.ContestResults)
			}

			authorized.POST("/chat", h.Chat.Send)
		}
	}

	if cfg.Server.StaticDir != "" {
		serveSPA(r, cfg.Server.StaticDir)
	}

	return r
}

// serveSPA serves the built frontend bundle. Unknown non-API paths fall
// back to index.html so client-side routing works on refresh.
func serveSPA(r *gin.Engine, dir string) {
	r.Static("/assets", filepath.Join(dir, "assets"))
	r.StaticFile("/", filepath.Join(dir, "index.html"))

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"code": 10006, "message": "route not found"})
			return
		}
		index := filepath.Join(dir, "index.html")
		if _, err := os.Stat(index); err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.File(index)
	})
}
