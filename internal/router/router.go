package router

import (
	"time"

	"candiqr/internal/config"
	"candiqr/internal/handler"
	"candiqr/internal/middleware"
	"candiqr/internal/model"
	"candiqr/internal/repository"
	"candiqr/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(rdb, cfg.RateLimit, time.Duration(cfg.RateWindowMinutes)*time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	classRepo := repository.NewClassRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	parentRepo := repository.NewParentRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	studentSvc := service.NewStudentService(studentRepo)
	teacherSvc := service.NewTeacherService(teacherRepo)
	classSvc := service.NewClassService(classRepo)
	subjectSvc := service.NewSubjectService(subjectRepo)
	scheduleSvc := service.NewScheduleService(scheduleRepo)
	parentSvc := service.NewParentService(parentRepo)
	operatorSvc := service.NewUserService(userRepo, model.RoleOperator)
	locationSvc := service.NewLocationService(locationRepo)
	attendanceSvc := service.NewAttendanceService(attendanceRepo, studentRepo, scheduleRepo, locationRepo, cfg)
	reportSvc := service.NewReportService(attendanceRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	studentsH := handler.NewStudentsHandler(studentSvc)
	teachersH := handler.NewTeachersHandler(teacherSvc)
	classesH := handler.NewClassesHandler(classSvc)
	subjectsH := handler.NewSubjectsHandler(subjectSvc)
	schedulesH := handler.NewSchedulesHandler(scheduleSvc, teacherRepo)
	parentsH := handler.NewParentsHandler(parentSvc)
	operatorsH := handler.NewOperatorsHandler(operatorSvc)
	locationsH := handler.NewLocationsHandler(locationSvc)
	attendanceH := handler.NewAttendanceHandler(attendanceSvc)
	reportsH := handler.NewReportsHandler(reportSvc, parentRepo, studentRepo)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, cfg.Env))

	// Auth (public)
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes — every role decision lives in the policy table.
	jwtMW := middleware.JWTAuth(cfg.JWTSecret, userRepo)
	policy := middleware.DefaultPolicy
	api := r.Group("/api", jwtMW)
	{
		api.GET("/auth/profile", authH.Profile)

		// Attendance scanning
		api.POST("/attendance/scan", policy.Require("scan"), attendanceH.Scan)
		api.POST("/yolo/attendance", policy.Require("scan"), attendanceH.ScanYolo)
		api.PUT("/attendance/:id", policy.Require("attendance"), attendanceH.UpdateStatus)

		students := api.Group("/students", policy.Require("students"))
		{
			students.GET("", studentsH.List)
			students.POST("", studentsH.Create)
			students.GET("/:id", studentsH.Get)
			students.PUT("/:id", studentsH.Update)
			students.DELETE("/:id", studentsH.Delete)
		}

		teachers := api.Group("/teachers", policy.Require("teachers"))
		{
			teachers.GET("", teachersH.List)
			teachers.POST("", teachersH.Create)
			teachers.GET("/:id", teachersH.Get)
			teachers.PUT("/:id", teachersH.Update)
			teachers.DELETE("/:id", teachersH.Delete)
		}

		classes := api.Group("/classes", policy.Require("classes"))
		{
			classes.GET("", classesH.List)
			classes.POST("", classesH.Create)
			classes.GET("/:id", classesH.Get)
			classes.PUT("/:id", classesH.Update)
			classes.DELETE("/:id", classesH.Delete)
		}

		subjects := api.Group("/subjects", policy.Require("subjects"))
		{
			subjects.GET("", subjectsH.List)
			subjects.POST("", subjectsH.Create)
			subjects.GET("/:id", subjectsH.Get)
			subjects.PUT("/:id", subjectsH.Update)
			subjects.DELETE("/:id", subjectsH.Delete)
		}

		schedules := api.Group("/schedules", policy.Require("schedules"))
		{
			schedules.GET("", schedulesH.List)
			schedules.POST("", schedulesH.Create)
			schedules.GET("/:id", schedulesH.Get)
			schedules.PUT("/:id", schedulesH.Update)
			schedules.DELETE("/:id", schedulesH.Delete)
		}

		parents := api.Group("/parents", policy.Require("parents"))
		{
			parents.GET("", parentsH.List)
			parents.POST("", parentsH.Create)
			parents.GET("/:id", parentsH.Get)
			parents.PUT("/:id", parentsH.Update)
			parents.DELETE("/:id", parentsH.Delete)
		}

		operators := api.Group("/operators", policy.Require("operators"))
		{
			operators.GET("", operatorsH.List)
			operators.POST("", operatorsH.Create)
			operators.GET("/:id", operatorsH.Get)
			operators.PUT("/:id", operatorsH.Update)
			operators.DELETE("/:id", operatorsH.Delete)
		}

		locations := api.Group("/locations", policy.Require("locations"))
		{
			locations.GET("", locationsH.List)
			locations.POST("", locationsH.Create)
			locations.GET("/:id", locationsH.Get)
			locations.PUT("/:id", locationsH.Update)
			locations.DELETE("/:id", locationsH.Delete)
		}

		reports := api.Group("/reports")
		{
			reports.GET("/attendance", policy.Require("reports"), reportsH.Attendance)
			// Parents see only their own children; the handler enforces the scope.
			reports.GET("/students/:id/summary",
				middleware.RequireRole(model.RoleAdmin, model.RoleOperator, model.RoleTeacher, model.RoleParent),
				reportsH.StudentSummary)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
