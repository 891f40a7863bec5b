// В этом файле описаны методы клиента для работы с портфолио:
// сохранение, чтение своего портфолио, публичное чтение по id пользователя
// и загрузка файла резюме для разбора моделью.
package api

import (
	"net/url"

	"github.com/foliodev/go-folio/internal/shared/models"
)

// UploadResponse описывает ответ сервера на загрузку резюме.
//
// ParsedData содержит структурированные поля, извлечённые моделью из текста резюме.
type UploadResponse struct {
	ParsedData models.ParsedResume `json:"parsedData"`
}

// SavePortfolio сохраняет (создаёт или полностью заменяет) портфолио текущего пользователя.
//
// Метод отправляет POST запрос на /portfolio и возвращает сохранённый документ
// в каноническом виде (как его хранит сервер).
func (c *Client) SavePortfolio(doc models.Portfolio, authToken string) (models.Portfolio, error) {
	var resp models.Portfolio
	err := c.PostJSON("/portfolio", doc, &resp, authToken)
	return resp, err
}

// MyPortfolio возвращает портфолио текущего пользователя.
//
// Метод отправляет GET запрос на /myportfolio и использует authToken для авторизации.
func (c *Client) MyPortfolio(authToken string) (models.Portfolio, error) {
	var resp models.Portfolio
	err := c.GetJSON("/myportfolio", &resp, authToken)
	return resp, err
}

// PublicPortfolio возвращает портфолио произвольного пользователя по его id.
//
// Эндпоинт /portfolio/{userId} публичный, токен не требуется.
func (c *Client) PublicPortfolio(userID string) (models.Portfolio, error) {
	var resp models.Portfolio
	err := c.GetJSON("/portfolio/"+url.PathEscape(userID), &resp, "")
	return resp, err
}

// UploadResume загружает файл резюме на сервер и возвращает разобранные поля.
//
// Файл отправляется в multipart-поле "resume" на эндпоинт /upload.
// Разбор выполняется моделью на стороне сервера и может занять заметное время.
func (c *Client) UploadResume(filePath string) (UploadResponse, error) {
	var resp UploadResponse
	err := c.UploadFile("/upload", "resume", filePath, &resp, "")
	return resp, err
}
