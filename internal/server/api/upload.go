// HTTP-хендлер загрузки резюме
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	serr "github.com/foliodev/go-folio/internal/shared/errors"
	"github.com/foliodev/go-folio/internal/shared/models"
)

// multipart-форма держит в памяти до 10 MiB, остальное уходит на диск
const uploadMemoryLimit = 10 << 20

// UploadResponse описывает успешный ответ загрузки резюме.
type UploadResponse struct {
	ParsedData models.ParsedResume `json:"parsedData"`
}

// Upload принимает файл резюме и возвращает распарсенные поля портфолио.
//
// Ожидается multipart/form-data с файлом в поле resume.
// Файл сохраняется во временный каталог, текст извлекается, временный файл
// удаляется (всегда), текст уходит генеративной модели.
//
// Эндпоинт публичный: загрузка резюме доступна до регистрации,
// сохранение результата в портфолио — уже под auth-токеном.
//
// Ответы:
//   - 200 OK: {"parsedData": {...}};
//   - 400 Bad Request: нет файла, неподдерживаемый формат, ошибка извлечения,
//     в ответе модели нет валидного JSON;
//   - 502 Bad Gateway: генеративное API недоступно;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Upload resume
// @Description  Extracts text from an uploaded resume and parses it into portfolio fields.
// @Tags         resume
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume formData file true "Resume file (pdf/doc/docx/txt)"
// @Success      200 {object} UploadResponse
// @Failure      400 {object} ErrorResponse "Missing file, unsupported format or unparseable reply"
// @Failure      502 {object} ErrorResponse "Upstream AI service error"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(uploadMemoryLimit); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}
	defer file.Close()

	parsed, err := h.Svc.Resume.Parse(r.Context(), file, header.Filename)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput),
			errors.Is(err, serr.ErrUnsupportedFormat),
			errors.Is(err, serr.ErrExtractionFailed),
			errors.Is(err, serr.ErrNoJSONFound),
			errors.Is(err, serr.ErrMalformedJSON):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrUpstream):
			WriteError(w, http.StatusBadGateway, serr.ErrUpstream)
		default:
			h.Log.Logger.Sugar().Errorw("upload failed", "file", header.Filename)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	w.Header().Set(ContentType, JsonContentType)
	json.NewEncoder(w).Encode(UploadResponse{ParsedData: parsed})
}
