package handler

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"corporate-portal-service/api"
	"corporate-portal-service/internal/domain"
)

// Вспомогательные функции преобразования доменных моделей в API модели

func toAPIUser(user *domain.User) api.User {
	return api.User{
		Id:            user.ID,
		TelegramId:    user.TelegramID,
		RoleId:        user.RoleID,
		IsActive:      user.IsActive,
		Name:          user.Name,
		Surname:       user.Surname,
		Position:      user.Position,
		Email:         openapi_types.Email(user.Email),
		WorkPhone:     user.WorkPhone,
		PersonalPhone: user.PersonalPhone,
		Role:          string(user.Role()),
	}
}

func toAPINewsItem(n *domain.NewsItem) api.NewsItem {
	return api.NewsItem{
		Id:       n.ID,
		Title:    n.Title,
		Summary:  n.Summary,
		Content:  n.Content,
		Date:     n.Date,
		Likes:    n.Likes,
		Comments: n.Comments,
		Category: n.Category,
	}
}

func toAPINewsResponse(page *domain.NewsPage) api.NewsResponse {
	items := make([]api.NewsItem, len(page.Items))
	for i, n := range page.Items {
		items[i] = toAPINewsItem(n)
	}
	return api.NewsResponse{
		Items:  items,
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}
}

func toAPITask(t *domain.Task) api.Task {
	return api.Task{
		Id:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		Assignee:    t.Assignee,
		Category:    t.Category,
	}
}

func toAPITasks(tasks []*domain.Task) []api.Task {
	result := make([]api.Task, len(tasks))
	for i, t := range tasks {
		result[i] = toAPITask(t)
	}
	return result
}

func toAPIEmployee(e *domain.Employee) api.Employee {
	return api.Employee{
		Id:               e.ID,
		Name:             e.Name,
		Position:         e.Position,
		Phone:            e.Phone,
		Email:            e.Email,
		Department:       e.Department,
		Location:         e.Location,
		StartDate:        e.StartDate,
		IsManager:        e.IsManager,
		IsDepartmentHead: e.IsHead,
	}
}

func toAPIEmployees(employees []*domain.Employee) []api.Employee {
	result := make([]api.Employee, len(employees))
	for i, e := range employees {
		result[i] = toAPIEmployee(e)
	}
	return result
}

func toAPIDepartment(d *domain.Department) api.Department {
	dept := api.Department{
		Id:            d.ID,
		Name:          d.Name,
		EmployeeCount: d.EmployeeCount(),
	}
	if d.Manager != nil {
		m := toAPIEmployee(d.Manager)
		dept.Manager = &m
	}

	switch d.Kind {
	case domain.KindSubDepartments:
		dept.SubDepartments = make([]api.SubDepartment, len(d.SubDepartments))
		for i, sub := range d.SubDepartments {
			apiSub := api.SubDepartment{
				Id:        sub.ID,
				Name:      sub.Name,
				Employees: toAPIEmployees(sub.Employees),
			}
			if sub.Manager != nil {
				m := toAPIEmployee(sub.Manager)
				apiSub.Manager = &m
			}
			dept.SubDepartments[i] = apiSub
		}
	case domain.KindDirectEmployees:
		dept.Employees = toAPIEmployees(d.Employees)
	}

	return dept
}

func toAPIDepartments(departments []*domain.Department) api.DepartmentsResponse {
	result := make([]api.Department, len(departments))
	for i, d := range departments {
		result[i] = toAPIDepartment(d)
	}
	return api.DepartmentsResponse{Departments: result}
}

func toAPIStatistics(series *domain.StatisticsSeries) api.StatisticsResponse {
	graphInfo := make([]api.GraphInfoItem, len(series.GraphInfo))
	for i, p := range series.GraphInfo {
		graphInfo[i] = api.GraphInfoItem{
			Day:   openapi_types.Date{Time: p.Day},
			Count: p.Count,
		}
	}
	return api.StatisticsResponse{
		GraphInfo:          graphInfo,
		UniqueUserInPeriod: series.UniqueUsers,
	}
}

func toAPIChart(data *domain.ChartData, series *domain.StatisticsSeries) api.ChartResponse {
	points := make([]api.ChartPoint, len(data.Points))
	for i, p := range data.Points {
		points[i] = api.ChartPoint{X: p.X, Y: p.Y}
	}
	return api.ChartResponse{
		Points:             points,
		Path:               data.Path,
		XLabels:            data.XLabels,
		ChartMin:           data.ChartMin,
		ChartMax:           data.ChartMax,
		Average:            data.Average,
		UniqueUserInPeriod: series.UniqueUsers,
	}
}

func toErrorResponse(code, message string) api.ErrorResponse {
	return api.ErrorResponse{
		Error: api.ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

func toAPIErrorResponse(httpErr domain.HTTPError) api.ErrorResponse {
	return api.ErrorResponse{
		Error: api.ErrorDetail{
			Code:    httpErr.Code,
			Message: httpErr.Message,
		},
	}
}

func getHTTPStatusCode(err error) int {
	switch err {
	// Forbidden errors (403)
	case domain.ErrForbidden, domain.ErrUserInactive:
		return http.StatusForbidden

	// Not Found errors (404)
	case domain.ErrUserNotFound, domain.ErrNewsNotFound, domain.ErrTaskNotFound:
		return http.StatusNotFound

	// Bad Request errors (400) - валидация
	case domain.ErrInvalidTaskTitle, domain.ErrInvalidTaskStatus,
		domain.ErrInvalidTaskPriority, domain.ErrInvalidNewsID,
		domain.ErrInvalidPeriod, domain.ErrInvalidDateRange:
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
