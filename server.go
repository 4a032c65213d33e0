package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"

	"github.com/hekimalabs/smas_backend/activities"
	"github.com/hekimalabs/smas_backend/archive"
	"github.com/hekimalabs/smas_backend/config"
	"github.com/hekimalabs/smas_backend/middlewares"
	"github.com/hekimalabs/smas_backend/models"
	"github.com/hekimalabs/smas_backend/models/reports"
	"github.com/hekimalabs/smas_backend/sms"
	"github.com/hekimalabs/smas_backend/utils"
)

const defaultPort = "8080"

var tracer = otel.Tracer("smas-backend")

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// loginHandler issues a short-lived operator token. Only admin
// accounts may use the internal ops surface.
func loginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := models.GetUserByUsername(c.Request.Context(), req.Username)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		if err := utils.ComparePassword(user.Password, req.Password); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		if user.Role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			return
		}

		token, err := utils.JwtGenerate(user.ID, user.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

type tickRequest struct {
	At string `json:"at"`
}

// tickHandler replays one scheduler tick at a given instant, for
// recovering a missed firing or verifying cadence in staging.
func tickHandler(scheduler *activities.Scheduler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req tickRequest
		// An empty body means "tick now".
		_ = c.ShouldBindJSON(&req)

		at := time.Now()
		if req.At != "" {
			parsed, err := time.Parse(time.RFC3339, req.At)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "at must be RFC3339"})
				return
			}
			at = parsed
		}

		results := scheduler.RunTickAt(c.Request.Context(), activities.NewTick(at))
		c.JSON(http.StatusOK, gin.H{"tick": at.Format(time.RFC3339), "results": results})
	}
}

type reportRequest struct {
	BranchId uint   `json:"branch_id" binding:"required"`
	Period   string `json:"period" binding:"required"`
	At       string `json:"at"`
}

func reportHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracer.Start(c.Request.Context(), "ops.report")
		defer span.End()

		var req reportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		at := time.Now()
		if req.At != "" {
			parsed, err := time.Parse(time.RFC3339, req.At)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "at must be RFC3339"})
				return
			}
			at = parsed
		}

		tick := activities.NewTick(at)
		var from time.Time
		switch req.Period {
		case "daily":
			from = tick.StartOfDay()
		case "weekly":
			from = tick.StartOfWeek()
		case "monthly":
			from = tick.StartOfMonth()
		case "annual":
			from = tick.StartOfYear()
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "period must be daily, weekly, monthly or annual"})
			return
		}

		statement, err := reports.GetIncomeStatement(ctx, req.BranchId, from, tick.EndOfDay())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, statement)
	}
}

type restoreRequest struct {
	Object string `json:"object" binding:"required"`
}

// restoreHandler brings an archived branch back under a fresh id.
func restoreHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req restoreRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		data, err := archive.Load(c.Request.Context(), req.Object)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		branch, err := archive.Restore(c.Request.Context(), config.GetDB(), data)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, branch)
	}
}

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		// Cloud Run standard env var.
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = defaultPort
	}

	logger := config.GetLogger()

	// Cloud Run sends SIGTERM on revision shutdown; drain gracefully.
	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	// Start the HTTP server before the dependencies so the startup
	// probe passes; app endpoints return 503 until DB and Redis are up.
	r := gin.New()
	r.Use(func(c *gin.Context) {
		cid := c.GetHeader("x-correlation-id")
		if cid == "" {
			cid = uuid.NewString()
		}
		c.Request = c.Request.WithContext(utils.SetCorrelationIdInContext(c.Request.Context(), cid))
		c.Next()
	})
	r.Use(func(c *gin.Context) {
		if c.Request.URL.Path == "/healthz" {
			c.Status(http.StatusNoContent)
			c.Abort()
			return
		}
		if config.GetDB() == nil || config.GetRedisDB() == nil {
			c.AbortWithStatus(http.StatusServiceUnavailable)
			return
		}
		c.Next()
	})

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	corsConfig := cors.DefaultConfig()
	allowedOrigins := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if strings.EqualFold(strings.TrimSpace(os.Getenv("GO_ENV")), "production") {
		if allowedOrigins == "" {
			corsConfig.AllowOrigins = []string{}
		} else {
			corsConfig.AllowOrigins = splitAndTrim(allowedOrigins)
		}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowMethods("GET", "POST", "PUT", "DELETE", "OPTIONS")
	corsConfig.AddAllowHeaders("token", "Origin", "Content-Type", "Authorization")
	corsConfig.AddExposeHeaders("Content-Length")
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	r.Use(middlewares.SessionMiddleware())
	r.Use(gin.Recovery())

	scheduler := activities.NewScheduler(logger, sms.NewClient())

	r.POST("/internal/ops/login", loginHandler())
	ops := r.Group("/internal/ops", middlewares.AdminMiddleware())
	ops.POST("/activities/tick", tickHandler(scheduler))
	ops.POST("/report", reportHandler())
	ops.POST("/restore-branch", restoreHandler())

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- srv.ListenAndServe()
	}()

	// Connect dependencies after the port is open.
	config.ConnectDatabaseWithRetry()
	config.ConnectRedisWithRetry()

	db := config.GetDB()
	sqlDB, _ := db.DB()
	defer func() {
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
	}()

	// AutoMigrate can run DDL that blocks tables; allow running
	// migrations as a separate job instead.
	if !strings.EqualFold(strings.TrimSpace(os.Getenv("SKIP_MIGRATIONS")), "true") {
		if err := models.MigrateTable(); err != nil {
			logger.WithFields(logrus.Fields{"field": "migrations"}).Panic(err.Error())
		}
	} else {
		logger.WithFields(logrus.Fields{"field": "migrations"}).Warn("SKIP_MIGRATIONS=true; skipping AutoMigrate on startup")
	}

	schedulerCtx, cancelScheduler := context.WithCancel(context.Background())
	defer cancelScheduler()
	go scheduler.Run(schedulerCtx)

	logger.WithFields(logrus.Fields{
		"port": port,
	}).Info("smas backend started")

	select {
	case <-sigCtx.Done():
		// graceful shutdown below
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithFields(logrus.Fields{"field": "http"}).Error("server stopped unexpectedly: " + err.Error())
		}
	}

	// Stop the scheduler first so no new tick starts mid-drain.
	cancelScheduler()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithFields(logrus.Fields{"field": "http"}).Error("shutdown: " + err.Error())
	}
}
