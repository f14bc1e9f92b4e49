package domain

import "context"

// Employee представляет сотрудника в оргструктуре.
type Employee struct {
	ID         string
	Name       string
	Position   string
	Phone      string
	Email      string
	Department string
	Location   string
	StartDate  string
	IsManager  bool
	IsHead     bool
}

// DepartmentKind — форма отдела: либо подотделы, либо прямые сотрудники.
// Тег устраняет неоднозначность "оба поля заполнены" у опциональных полей.
type DepartmentKind string

const (
	KindSubDepartments  DepartmentKind = "sub-departments"
	KindDirectEmployees DepartmentKind = "direct-employees"
)

// SubDepartment — подотдел: ровно один руководитель и список сотрудников.
type SubDepartment struct {
	ID        string
	Name      string
	Manager   *Employee
	Employees []*Employee
}

// Department — корень дерева оргструктуры. В зависимости от Kind заполнен
// либо SubDepartments, либо Employees, никогда оба сразу.
type Department struct {
	ID             string
	Name           string
	Kind           DepartmentKind
	Manager        *Employee
	SubDepartments []*SubDepartment
	Employees      []*Employee
}

// EmployeeCount возвращает отображаемое число сотрудников отдела.
// Для отдела с подотделами: руководитель отдела + по каждому подотделу его
// руководитель и сотрудники. Для отдела с прямыми сотрудниками: руководитель
// отдела + сотрудники. Формы никогда не суммируются.
func (d *Department) EmployeeCount() int {
	count := 0
	if d.Manager != nil {
		count++
	}
	if d.Kind == KindSubDepartments {
		for _, sub := range d.SubDepartments {
			count += 1 + len(sub.Employees)
		}
		return count
	}
	return count + len(d.Employees)
}

// DirectoryRepository определяет контракт для работы с оргструктурой.
type DirectoryRepository interface {
	Departments(ctx context.Context) ([]*Department, error)
}
