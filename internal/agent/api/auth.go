// В этом файле описаны методы клиента для работы
// с эндпоинтами аутентификации: регистрация, вход и получение
// информации о текущем пользователе.
package api

// RegisterRequest описывает тело запроса регистрации пользователя.
//
// Name, Email и Password передаются в JSON формате в эндпоинт /createuser.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthTokenResponse описывает ответ сервера при успешной регистрации или входе.
//
// AuthToken используется для авторизации запросов к защищённым эндпоинтам
// (передаётся в заголовке auth-token).
type AuthTokenResponse struct {
	AuthToken string `json:"authtoken"`
}

// LoginRequest описывает тело запроса входа пользователя.
//
// Email и Password передаются в JSON формате в эндпоинт /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse описывает ответ сервера с информацией о текущем пользователе.
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// Register выполняет регистрацию пользователя на сервере.
//
// Метод отправляет POST запрос на /createuser и возвращает AuthTokenResponse.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Register(name, email, password string) (AuthTokenResponse, error) {
	var resp AuthTokenResponse
	err := c.PostJSON("/createuser", RegisterRequest{Name: name, Email: email, Password: password}, &resp, "")
	return resp, err
}

// Login выполняет вход пользователя и получает токен доступа.
//
// Метод отправляет POST запрос на /login и возвращает AuthTokenResponse.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Login(email, password string) (AuthTokenResponse, error) {
	var resp AuthTokenResponse
	err := c.PostJSON("/login", LoginRequest{Email: email, Password: password}, &resp, "")
	return resp, err
}

// Me запрашивает информацию о текущем пользователе.
//
// Метод отправляет POST запрос на /getuser и использует authToken для авторизации.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Me(authToken string) (UserResponse, error) {
	var resp UserResponse
	err := c.PostJSON("/getuser", nil, &resp, authToken)
	return resp, err
}
