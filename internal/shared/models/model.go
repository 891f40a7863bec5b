// Package models содержит модели данных, общие для сервера и CLI-клиента.
package models

import "time"

// Portfolio — портфолио пользователя, как оно ходит по HTTP API.
//
// Все поля, кроме UserID, опциональны: пустая строка/пустой список означает
// "секция отсутствует", а не ошибку. Списковые поля всегда сериализуются как
// массивы (nil нормализуется в []), чтобы клиенту не приходилось отличать
// null от [].
//
// Поля:
//   - ID: уникальный идентификатор документа (UUID в виде строки)
//   - UserID: владелец; на одного пользователя существует не более одного портфолио
//   - Name/Email/Phone/Summary: контактная шапка и краткое описание
//   - Skills/Achievements: плоские списки строк
//   - Projects/Education/Experience: структурированные секции
//   - CreatedAt: время первого сохранения (серверное)
type Portfolio struct {
	ID           string       `json:"id,omitempty"`
	UserID       string       `json:"userId,omitempty"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Summary      string       `json:"summary"`
	Skills       []string     `json:"skills"`
	Achievements []string     `json:"achievements"`
	Projects     []Project    `json:"projects"`
	Education    []Education  `json:"education"`
	Experience   []Experience `json:"experience"`
	CreatedAt    time.Time    `json:"createdAt,omitempty"`
}

// Project — один проект в портфолио.
type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// Education — одна запись об образовании.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// Experience — одна запись об опыте работы.
type Experience struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Links — ссылки на профили, которые модель достаёт из резюме.
//
// Ссылки возвращаются клиенту вместе с распарсенными полями,
// но в хранимый Portfolio не входят.
type Links struct {
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
}

// ParsedResume — результат разбора текста резюме генеративной моделью.
//
// Схема совпадает с редактируемыми полями Portfolio плюс Links.
// Модель не обязана возвращать все ключи, поэтому перед использованием
// результат нужно прогнать через Normalize.
type ParsedResume struct {
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Summary      string       `json:"summary"`
	Skills       []string     `json:"skills"`
	Achievements []string     `json:"achievements"`
	Projects     []Project    `json:"projects"`
	Education    []Education  `json:"education"`
	Experience   []Experience `json:"experience"`
	Links        Links        `json:"links"`
}

// Normalize приводит отсутствующие поля к дефолтам: nil-списки становятся
// пустыми. Строки в Go и так дефолтятся в "", отдельной обработки не нужно.
func (p *ParsedResume) Normalize() {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Achievements == nil {
		p.Achievements = []string{}
	}
	if p.Projects == nil {
		p.Projects = []Project{}
	}
	if p.Education == nil {
		p.Education = []Education{}
	}
	if p.Experience == nil {
		p.Experience = []Experience{}
	}
}

// Normalize приводит nil-списки портфолио к пустым спискам.
//
// Вызывается сервисом перед сохранением и после чтения из бд,
// чтобы инвариант "списки всегда [] а не null" держался на всех путях.
func (p *Portfolio) Normalize() {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Achievements == nil {
		p.Achievements = []string{}
	}
	if p.Projects == nil {
		p.Projects = []Project{}
	}
	if p.Education == nil {
		p.Education = []Education{}
	}
	if p.Experience == nil {
		p.Experience = []Experience{}
	}
}
