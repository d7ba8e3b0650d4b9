package models

import "time"

type Branch struct {
	ID   int
	Name string
}

type Department struct {
	ID     int
	Name   string
	Branch int
}

type Role struct {
	ID           int
	Name         string
	DepartmentID int
}

type Employee struct {
	Number       string
	DeptNumber   int
	BranchNumber int
	RoleNumber   int
	Name         string
	Surname      string
	BirthDate    *time.Time
	Salary       float64
}
