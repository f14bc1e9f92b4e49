// Package api содержит транспортные типы HTTP API корпоративного портала.
// Формы ответов соответствуют контракту мини-приложения (/api/v1).
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// User — профиль пользователя. Поле Role вычисляется из RoleId на сервере.
type User struct {
	Id            int64               `json:"id"`
	TelegramId    string              `json:"telegram_id"`
	RoleId        int                 `json:"role_id"`
	IsActive      bool                `json:"is_active"`
	Name          string              `json:"name"`
	Surname       string              `json:"surname"`
	Position      string              `json:"position"`
	Email         openapi_types.Email `json:"email"`
	WorkPhone     string              `json:"workPhone"`
	PersonalPhone string              `json:"personalPhone"`
	Role          string              `json:"role"`
}

// NewsItem — новость портала.
type NewsItem struct {
	Id       int64     `json:"id"`
	Title    string    `json:"title"`
	Summary  string    `json:"summary"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
	Likes    int       `json:"likes"`
	Comments int       `json:"comments"`
	Category string    `json:"category"`
}

// NewsResponse — страница новостей.
type NewsResponse struct {
	Items  []NewsItem `json:"items"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

// LikeResponse — результат изменения счетчика лайков.
type LikeResponse struct {
	NewsId   int64 `json:"news_id"`
	NewLikes int   `json:"new_likes"`
}

// Task — задача сотрудника.
type Task struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
	Assignee    string `json:"assignee"`
	Category    string `json:"category"`
}

// TaskListResponse — отфильтрованный список задач.
type TaskListResponse struct {
	Tasks []Task `json:"tasks"`
	Total int    `json:"total"`
}

// PostTasksJSONBody — тело запроса создания задачи.
type PostTasksJSONBody struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Priority     string `json:"priority"`
	AssignToSelf bool   `json:"assign_to_self"`
	Category     string `json:"category"`
}

// Employee — сотрудник в оргструктуре.
type Employee struct {
	Id               string `json:"id"`
	Name             string `json:"name"`
	Position         string `json:"position"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	Department       string `json:"department"`
	Location         string `json:"location"`
	StartDate        string `json:"startDate"`
	IsManager        bool   `json:"isManager,omitempty"`
	IsDepartmentHead bool   `json:"isDepartmentHead,omitempty"`
}

// SubDepartment — подотдел с руководителем и сотрудниками.
type SubDepartment struct {
	Id        string     `json:"id"`
	Name      string     `json:"name"`
	Manager   *Employee  `json:"manager,omitempty"`
	Employees []Employee `json:"employees"`
}

// Department — отдел оргструктуры с посчитанным числом сотрудников.
type Department struct {
	Id             string          `json:"id"`
	Name           string          `json:"name"`
	Manager        *Employee       `json:"manager,omitempty"`
	SubDepartments []SubDepartment `json:"subDepartments,omitempty"`
	Employees      []Employee      `json:"employees,omitempty"`
	EmployeeCount  int             `json:"employeeCount"`
}

// DepartmentsResponse — отфильтрованное дерево оргструктуры.
type DepartmentsResponse struct {
	Departments []Department `json:"departments"`
}

// GraphInfoItem — точка временного ряда статистики.
type GraphInfoItem struct {
	Day   openapi_types.Date `json:"day"`
	Count int                `json:"count"`
}

// StatisticsResponse — сырой временной ряд за период.
type StatisticsResponse struct {
	GraphInfo          []GraphInfoItem `json:"graphInfo"`
	UniqueUserInPeriod int             `json:"uniqueUserInPeriod"`
}

// ChartPoint — точка графика в единичном квадрате 0..100.
type ChartPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ChartResponse — подготовленные данные графика за период.
type ChartResponse struct {
	Points             []ChartPoint `json:"points"`
	Path               string       `json:"path"`
	XLabels            []string     `json:"xLabels"`
	ChartMin           float64      `json:"chartMin"`
	ChartMax           float64      `json:"chartMax"`
	Average            int          `json:"average"`
	UniqueUserInPeriod int          `json:"uniqueUserInPeriod"`
}

// ErrorDetail — код и сообщение ошибки.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse — стандартное тело ответа об ошибке.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
