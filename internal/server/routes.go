// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	"satellite-recruit-backend/internal/auth"
	"satellite-recruit-backend/internal/controller"
	"satellite-recruit-backend/internal/intake"
	"satellite-recruit-backend/internal/middleware"
	"satellite-recruit-backend/internal/repository"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOriginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrigins := strings.Split(allowOriginsStr, ",")

	repo := repository.New(s.DB)
	intakeService := intake.NewService(repo, s.Files)

	lAuth := auth.NewLoginHandler(repo)
	departmentController := controller.NewDepartmentController(repo)
	applicantController := controller.NewApplicantController(intakeService, repo, s.Files)
	aboutController := controller.NewAboutController(repo)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)

	api := r.Group("/api")
	{
		api.POST("/auth/login", lAuth.AdminLoginHandler)

		api.GET("/departments", departmentController.GetDepartments)
		api.GET("/departments/:id", departmentController.GetDepartment)

		api.POST("/applicants",
			middleware.EnvRateLimitMiddleware(),
			middleware.SizeLimit(intake.MaxResumeSize),
			applicantController.CreateApplicant)

		api.GET("/about", aboutController.GetAbout)

		admin := api.Group("/admin")
		{
			admin.Use(middleware.RequireAdmin(repo))
			admin.GET("applicants", applicantController.GetApplicants)
			admin.GET("applicants/:id/resume", applicantController.DownloadResume)
			admin.DELETE("applicants/:id", applicantController.DeleteApplicant)
			admin.PUT("about", aboutController.UpdateAbout)
		}
	}

	return r
}

// HelloWorldHandler handle request by return a running banner
func (s *Server) HelloWorldHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "Research Satellite API is running!"

	c.JSON(http.StatusOK, resp)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DB.Health())
}
