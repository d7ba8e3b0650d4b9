package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/apperr"
	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/models"
	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/service"
)

type branchResponse struct {
	BranchID int    `json:"branch_id"`
	Name     string `json:"name"`
}

func (h HandlerSet) ListBranches(c *gin.Context) {
	if branchParam := c.Query("branch_id"); branchParam != "" {
		branchID, err := strconv.Atoi(branchParam)
		if err != nil {
			h.respondError(c, apperr.Validation("branch ID must be numeric"))
			return
		}
		branch, err := h.directory.GetBranch(c.Request.Context(), branchID)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, branchResponse{BranchID: branch.ID, Name: branch.Name})
		return
	}

	branches, err := h.directory.ListBranches(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]branchResponse, 0, len(branches))
	for _, branch := range branches {
		resp = append(resp, branchResponse{BranchID: branch.ID, Name: branch.Name})
	}
	c.JSON(http.StatusOK, resp)
}

type createBranchRequest struct {
	BranchNumber int    `json:"branch_number"`
	BranchName   string `json:"branch_name"`
}

func (h HandlerSet) CreateBranch(c *gin.Context) {
	var req createBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	branch := models.Branch{ID: req.BranchNumber, Name: req.BranchName}
	if err := h.directory.CreateBranch(c.Request.Context(), branch); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Branch added"})
}

func (h HandlerSet) DeleteBranch(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.respondError(c, apperr.Validation("branch ID must be numeric"))
		return
	}

	if err := h.directory.DeleteBranch(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type departmentResponse struct {
	DeptID int    `json:"dept_id"`
	Name   string `json:"name"`
	Branch int    `json:"branch"`
}

func (h HandlerSet) ListDepartments(c *gin.Context) {
	branchID, _ := strconv.Atoi(c.Query("branch_id"))

	if deptParam := c.Query("dept_id"); deptParam != "" {
		deptID, err := strconv.Atoi(deptParam)
		if err != nil {
			h.respondError(c, apperr.Validation("department ID must be numeric"))
			return
		}
		dept, err := h.directory.GetDepartment(c.Request.Context(), branchID, deptID)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, departmentResponse{DeptID: dept.ID, Name: dept.Name, Branch: dept.Branch})
		return
	}

	departments, err := h.directory.ListDepartments(c.Request.Context(), branchID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]departmentResponse, 0, len(departments))
	for _, dept := range departments {
		resp = append(resp, departmentResponse{DeptID: dept.ID, Name: dept.Name, Branch: dept.Branch})
	}
	c.JSON(http.StatusOK, resp)
}

type createDepartmentRequest struct {
	Name   string `json:"name"`
	Branch int    `json:"branch"`
}

func (h HandlerSet) CreateDepartment(c *gin.Context) {
	var req createDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	dept := models.Department{Name: req.Name, Branch: req.Branch}
	if err := h.directory.CreateDepartment(c.Request.Context(), dept); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Department added"})
}

func (h HandlerSet) DeleteDepartment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.respondError(c, apperr.Validation("department ID must be numeric"))
		return
	}

	if err := h.directory.DeleteDepartment(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type roleResponse struct {
	RoleID       int    `json:"role_id"`
	Name         string `json:"name"`
	DepartmentID int    `json:"department_id"`
}

func (h HandlerSet) ListRoles(c *gin.Context) {
	deptID, _ := strconv.Atoi(c.Query("dept_id"))

	if roleParam := c.Query("role_id"); roleParam != "" {
		roleID, err := strconv.Atoi(roleParam)
		if err != nil {
			h.respondError(c, apperr.Validation("role ID must be numeric"))
			return
		}
		role, err := h.directory.GetRole(c.Request.Context(), deptID, roleID)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, roleResponse{RoleID: role.ID, Name: role.Name, DepartmentID: role.DepartmentID})
		return
	}

	roles, err := h.directory.ListRoles(c.Request.Context(), deptID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]roleResponse, 0, len(roles))
	for _, role := range roles {
		resp = append(resp, roleResponse{RoleID: role.ID, Name: role.Name, DepartmentID: role.DepartmentID})
	}
	c.JSON(http.StatusOK, resp)
}

type createRoleRequest struct {
	Name         string `json:"name"`
	DepartmentID int    `json:"department_id"`
}

func (h HandlerSet) CreateRole(c *gin.Context) {
	var req createRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	role := models.Role{Name: req.Name, DepartmentID: req.DepartmentID}
	if err := h.directory.CreateRole(c.Request.Context(), role); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Role added"})
}

func (h HandlerSet) DeleteRole(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.respondError(c, apperr.Validation("role ID must be numeric"))
		return
	}

	if err := h.directory.DeleteRole(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type employeeResponse struct {
	EmployeeNumber string  `json:"employee_number"`
	DeptNumber     int     `json:"dept_number"`
	BranchNumber   int     `json:"branch_number"`
	RoleNumber     int     `json:"role_number"`
	Name           string  `json:"name"`
	Surname        string  `json:"surname"`
	BirthDate      string  `json:"birth_date,omitempty"`
	Salary         float64 `json:"salary"`
}

func toEmployeeResponse(emp models.Employee) employeeResponse {
	resp := employeeResponse{
		EmployeeNumber: emp.Number,
		DeptNumber:     emp.DeptNumber,
		BranchNumber:   emp.BranchNumber,
		RoleNumber:     emp.RoleNumber,
		Name:           emp.Name,
		Surname:        emp.Surname,
		Salary:         emp.Salary,
	}
	if emp.BirthDate != nil {
		resp.BirthDate = emp.BirthDate.Format("2006-01-02")
	}
	return resp
}

func (h HandlerSet) ListEmployees(c *gin.Context) {
	if number := c.Query("employee_number"); number != "" {
		emp, err := h.directory.GetEmployee(c.Request.Context(), number)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toEmployeeResponse(emp))
		return
	}

	employees, err := h.directory.ListEmployees(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]employeeResponse, 0, len(employees))
	for _, emp := range employees {
		resp = append(resp, toEmployeeResponse(emp))
	}
	c.JSON(http.StatusOK, resp)
}

type createEmployeeRequest struct {
	EmployeeNumber string  `json:"employee_number"`
	DeptNumber     int     `json:"dept_number"`
	BranchNumber   int     `json:"branch_number"`
	RoleNumber     int     `json:"role_number"`
	Name           string  `json:"name"`
	Surname        string  `json:"surname"`
	BirthDate      string  `json:"birth_date"`
	Salary         float64 `json:"salary"`
}

func (h HandlerSet) CreateEmployee(c *gin.Context) {
	var req createEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	birthDate, err := service.ParseBirthDate(req.BirthDate)
	if err != nil {
		h.respondError(c, err)
		return
	}

	emp := models.Employee{
		Number:       req.EmployeeNumber,
		DeptNumber:   req.DeptNumber,
		BranchNumber: req.BranchNumber,
		RoleNumber:   req.RoleNumber,
		Name:         req.Name,
		Surname:      req.Surname,
		BirthDate:    birthDate,
		Salary:       req.Salary,
	}
	if err := h.directory.CreateEmployee(c.Request.Context(), emp); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Employee added"})
}

func (h HandlerSet) DeleteEmployee(c *gin.Context) {
	if err := h.directory.DeleteEmployee(c.Request.Context(), c.Param("number")); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
