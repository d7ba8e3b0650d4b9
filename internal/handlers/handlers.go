package handlers

import (
	"context"
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/config"
	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/middleware"
	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/models"
	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/repository"
	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/service"
)

// AuthAPI is the slice of the auth service the HTTP layer consumes.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (service.LoginResult, error)
	Register(ctx context.Context, employeeNumber, email, password string) error
	CheckRegistrationEligibility(ctx context.Context, employeeNumber string) (bool, error)
	ValidateToken(ctx context.Context, token string) (service.TokenStatus, error)
	Logout(ctx context.Context, token string) error
}

type DirectoryAPI interface {
	ListBranches(ctx context.Context) ([]models.Branch, error)
	GetBranch(ctx context.Context, id int) (models.Branch, error)
	CreateBranch(ctx context.Context, branch models.Branch) error
	DeleteBranch(ctx context.Context, id int) error
	ListDepartments(ctx context.Context, branchID int) ([]models.Department, error)
	GetDepartment(ctx context.Context, branchID, deptID int) (models.Department, error)
	CreateDepartment(ctx context.Context, dept models.Department) error
	DeleteDepartment(ctx context.Context, id int) error
	ListRoles(ctx context.Context, deptID int) ([]models.Role, error)
	GetRole(ctx context.Context, deptID, roleID int) (models.Role, error)
	CreateRole(ctx context.Context, role models.Role) error
	DeleteRole(ctx context.Context, id int) error
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployee(ctx context.Context, number string) (models.Employee, error)
	CreateEmployee(ctx context.Context, emp models.Employee) error
	DeleteEmployee(ctx context.Context, number string) error
}

type ProfileAPI interface {
	Profile(ctx context.Context, email string) (json.RawMessage, error)
}

type HandlerSet struct {
	log       zerolog.Logger
	cfg       *config.AppConfig
	auth      AuthAPI
	directory DirectoryAPI
	profiles  ProfileAPI
	db        *pgxpool.Pool
	cache     *redis.Client
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, cache *redis.Client, cfg *config.AppConfig) HandlerSet {
	userRepo := repository.NewUserRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	deptRepo := repository.NewDepartmentRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)

	auth := service.NewAuthService(userRepo, employeeRepo, cfg.Security, log)
	directory := service.NewDirectoryService(branchRepo, deptRepo, roleRepo, employeeRepo, log)
	profiles := service.NewProfileService(cache, cfg.Gravatar, log)

	return HandlerSet{
		log:       log,
		cfg:       cfg,
		auth:      auth,
		directory: directory,
		profiles:  profiles,
		db:        db,
		cache:     cache,
	}
}

func (h HandlerSet) Mount(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	v1 := router.Group("/v1")
	{
		auth := v1.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
		auth.GET("/register", h.RegistrationEligibility)
		auth.POST("/session", h.ValidateSession)
		auth.POST("/logout", h.Logout)

		protected := v1.Group("")
		protected.Use(middleware.SessionAuth(h.auth))

		protected.GET("/branches", h.ListBranches)
		protected.POST("/branches", h.CreateBranch)
		protected.DELETE("/branches/:id", h.DeleteBranch)

		protected.GET("/departments", h.ListDepartments)
		protected.POST("/departments", h.CreateDepartment)
		protected.DELETE("/departments/:id", h.DeleteDepartment)

		protected.GET("/roles", h.ListRoles)
		protected.POST("/roles", h.CreateRole)
		protected.DELETE("/roles/:id", h.DeleteRole)

		protected.GET("/employees", h.ListEmployees)
		protected.POST("/employees", h.CreateEmployee)
		protected.DELETE("/employees/:number", h.DeleteEmployee)

		protected.GET("/profile", h.Profile)
	}
}
