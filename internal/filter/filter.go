// Package filter реализует поиск по спискам и дереву оргструктуры.
// Все функции чистые: исходные коллекции никогда не изменяются.
package filter

import (
	"strings"

	"corporate-portal-service/internal/domain"
)

// Matches сообщает, содержит ли хотя бы одно из полей подстроку query
// без учета регистра. Пустой query совпадает со всем.
func Matches(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// Tasks возвращает задачи, у которых query содержится в названии, описании,
// исполнителе или категории.
func Tasks(query string, tasks []*domain.Task) []*domain.Task {
	if query == "" {
		return tasks
	}
	result := make([]*domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if Matches(query, t.Title, t.Description, t.Assignee, t.Category) {
			result = append(result, t)
		}
	}
	return result
}

// News возвращает новости, у которых query содержится в заголовке,
// аннотации или категории.
func News(query string, items []*domain.NewsItem) []*domain.NewsItem {
	if query == "" {
		return items
	}
	result := make([]*domain.NewsItem, 0, len(items))
	for _, n := range items {
		if Matches(query, n.Title, n.Summary, n.Category) {
			result = append(result, n)
		}
	}
	return result
}

// Employees возвращает сотрудников, у которых query содержится в имени
// или должности.
func Employees(query string, employees []*domain.Employee) []*domain.Employee {
	if query == "" {
		return employees
	}
	result := make([]*domain.Employee, 0, len(employees))
	for _, e := range employees {
		if Matches(query, e.Name, e.Position) {
			result = append(result, e)
		}
	}
	return result
}

// managerMatches проверяет совпадение по имени или должности руководителя.
func managerMatches(query string, m *domain.Employee) bool {
	return m != nil && Matches(query, m.Name, m.Position)
}

// Departments фильтрует дерево оргструктуры.
//
// Правила видимости:
//   - пустой query возвращает исходный срез без изменений;
//   - отдел, совпавший собственным названием, включается целиком со всеми
//     дочерними элементами;
//   - отдел, совпавший только руководителем или потомком, включается лишь
//     с совпавшими ветками — несовпавшие соседи исключаются;
//   - отдел без единого совпадения исключается.
//
// Для подотделов действуют те же правила уровнем ниже.
func Departments(query string, departments []*domain.Department) []*domain.Department {
	if query == "" {
		return departments
	}

	result := make([]*domain.Department, 0, len(departments))
	for _, dept := range departments {
		if Matches(query, dept.Name) {
			result = append(result, dept)
			continue
		}

		filtered := &domain.Department{
			ID:      dept.ID,
			Name:    dept.Name,
			Kind:    dept.Kind,
			Manager: dept.Manager,
		}

		retained := managerMatches(query, dept.Manager)

		switch dept.Kind {
		case domain.KindSubDepartments:
			for _, sub := range dept.SubDepartments {
				if fs := filterSubDepartment(query, sub); fs != nil {
					filtered.SubDepartments = append(filtered.SubDepartments, fs)
					retained = true
				}
			}
		case domain.KindDirectEmployees:
			filtered.Employees = Employees(query, dept.Employees)
			if len(filtered.Employees) > 0 {
				retained = true
			}
		}

		if retained {
			result = append(result, filtered)
		}
	}
	return result
}

// filterSubDepartment возвращает копию подотдела с совпавшими сотрудниками
// или nil, если в подотделе нет ни одного совпадения.
func filterSubDepartment(query string, sub *domain.SubDepartment) *domain.SubDepartment {
	if Matches(query, sub.Name) {
		return sub
	}

	employees := Employees(query, sub.Employees)
	if !managerMatches(query, sub.Manager) && len(employees) == 0 {
		return nil
	}

	return &domain.SubDepartment{
		ID:        sub.ID,
		Name:      sub.Name,
		Manager:   sub.Manager,
		Employees: employees,
	}
}
