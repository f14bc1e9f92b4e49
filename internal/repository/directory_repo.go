package repository

import (
	"context"

	"corporate-portal-service/internal/domain"
)

// DirectoryRepository отдает оргструктуру компании. Справочник небольшой и
// редко меняется, поэтому хранится в памяти процесса.
type DirectoryRepository struct {
	departments []*domain.Department
}

// NewDirectoryRepository создает справочник с текущей оргструктурой.
func NewDirectoryRepository() domain.DirectoryRepository {
	return &DirectoryRepository{departments: companyDepartments()}
}

// Departments возвращает корневые отделы компании.
func (r *DirectoryRepository) Departments(_ context.Context) ([]*domain.Department, error) {
	return r.departments, nil
}

func companyDepartments() []*domain.Department {
	return []*domain.Department{
		{
			ID:   "b2c",
			Name: "B2C клиенты",
			Kind: domain.KindSubDepartments,
			Manager: &domain.Employee{
				ID: "head-1", Name: "Александр Иванов", Position: "Директор B2C",
				Phone: "+7 (495) 123-45-60", Email: "aleksandr.ivanov@company.com",
				Department: "B2C клиенты", Location: "Москва, офис 1",
				StartDate: "15.01.2018", IsHead: true,
			},
			SubDepartments: []*domain.SubDepartment{
				{
					ID:   "bfu-sales",
					Name: "BFU Продажи",
					Manager: &domain.Employee{
						ID: "manager-1", Name: "Анна Петрова", Position: "Директор по продажам",
						Phone: "+7 (495) 123-45-67", Email: "anna.petrova@company.com",
						Department: "BFU Продажи", Location: "Москва, офис 1",
						StartDate: "15.03.2020", IsManager: true,
					},
					Employees: []*domain.Employee{
						{
							ID: "emp-1", Name: "Сергей Иванов", Position: "Менеджер по продажам",
							Phone: "+7 (495) 123-45-68", Email: "sergey.ivanov@company.com",
							Department: "BFU Продажи", Location: "Москва, офис 1",
							StartDate: "22.06.2021",
						},
						{
							ID: "emp-2", Name: "Мария Сидорова", Position: "Менеджер по продажам",
							Phone: "+7 (495) 123-45-69", Email: "maria.sidorova@company.com",
							Department: "BFU Продажи", Location: "Москва, офис 1",
							StartDate: "10.09.2022",
						},
					},
				},
				{
					ID:   "bfu-service",
					Name: "BFU Клиентский сервис",
					Manager: &domain.Employee{
						ID: "manager-2", Name: "Елена Волкова", Position: "Руководитель клиентского сервиса",
						Phone: "+7 (495) 123-45-70", Email: "elena.volkova@company.com",
						Department: "BFU Клиентский сервис", Location: "Москва, офис 1",
						StartDate: "01.08.2019", IsManager: true,
					},
					Employees: []*domain.Employee{
						{
							ID: "emp-3", Name: "Дмитрий Козлов", Position: "Специалист клиентского сервиса",
							Phone: "+7 (495) 123-45-71", Email: "dmitry.kozlov@company.com",
							Department: "BFU Клиентский сервис", Location: "Москва, офис 1",
							StartDate: "14.05.2021",
						},
					},
				},
				{
					ID:   "bfu-activation",
					Name: "BFU Отдел активации и подключения",
					Manager: &domain.Employee{
						ID: "manager-3", Name: "Виктор Петров", Position: "Руководитель отдела активации",
						Phone: "+7 (495) 123-45-72", Email: "viktor.petrov@company.com",
						Department: "BFU Отдел активации и подключения", Location: "Москва, офис 1",
						StartDate: "12.04.2020", IsManager: true,
					},
					Employees: []*domain.Employee{
						{
							ID: "emp-4", Name: "Ольга Николаева", Position: "Специалист по активации",
							Phone: "+7 (495) 123-45-73", Email: "olga.nikolaeva@company.com",
							Department: "BFU Отдел активации и подключения", Location: "Москва, офис 1",
							StartDate: "08.07.2022",
						},
					},
				},
			},
		},
		{
			ID:   "b2b",
			Name: "B2B Клиенты",
			Kind: domain.KindDirectEmployees,
			Manager: &domain.Employee{
				ID: "head-2", Name: "Михаил Смирнов", Position: "Директор B2B",
				Phone: "+7 (495) 123-45-74", Email: "mikhail.smirnov@company.com",
				Department: "B2B Клиенты", Location: "Москва, офис 2",
				StartDate: "01.03.2017", IsHead: true,
			},
			Employees: []*domain.Employee{
				{
					ID: "emp-5", Name: "Алексей Семенов", Position: "Менеджер по корпоративным продажам",
					Phone: "+7 (495) 123-45-75", Email: "alexey.semenov@company.com",
					Department: "B2B Клиенты", Location: "Москва, офис 2",
					StartDate: "15.09.2021",
				},
				{
					ID: "emp-6", Name: "Татьяна Морозова", Position: "Специалист по работе с корпоративными клиентами",
					Phone: "+7 (495) 123-45-76", Email: "tatyana.morozova@company.com",
					Department: "B2B Клиенты", Location: "Москва, офис 2",
					StartDate: "03.11.2020",
				},
			},
		},
		{
			ID:   "cfu-finance",
			Name: "CFU финансы",
			Kind: domain.KindDirectEmployees,
			Manager: &domain.Employee{
				ID: "head-3", Name: "Наталья Соколова", Position: "Финансовый директор",
				Phone: "+7 (495) 123-45-77", Email: "natalya.sokolova@company.com",
				Department: "CFU финансы", Location: "Москва, офис 1",
				StartDate: "12.02.2016", IsHead: true,
			},
			Employees: []*domain.Employee{
				{
					ID: "emp-7", Name: "Игорь Лебедев", Position: "Главный бухгалтер",
					Phone: "+7 (495) 123-45-78", Email: "igor.lebedev@company.com",
					Department: "CFU финансы", Location: "Москва, офис 1",
					StartDate: "25.06.2019",
				},
			},
		},
		{
			ID:   "cfu-it",
			Name: "CFU IT",
			Kind: domain.KindDirectEmployees,
			Manager: &domain.Employee{
				ID: "head-4", Name: "Андрей Кузнецов", Position: "IT директор",
				Phone: "+7 (495) 123-45-79", Email: "andrey.kuznetsov@company.com",
				Department: "CFU IT", Location: "Москва, офис 2",
				StartDate: "08.01.2015", IsHead: true,
			},
			Employees: []*domain.Employee{
				{
					ID: "emp-8", Name: "Максим Федоров", Position: "Системный администратор",
					Phone: "+7 (495) 123-45-80", Email: "maxim.fedorov@company.com",
					Department: "CFU IT", Location: "Москва, офис 2",
					StartDate: "14.10.2021",
				},
				{
					ID: "emp-9", Name: "Екатерина Новикова", Position: "Frontend разработчик",
					Phone: "+7 (495) 123-45-81", Email: "ekaterina.novikova@company.com",
					Department: "CFU IT", Location: "Москва, офис 2",
					StartDate: "18.04.2022",
				},
			},
		},
	}
}
