package auth

type loginInput struct {
	Body loginRequest
}

type loginRequest struct {
	Username string `json:"username" doc:"Логин" minLength:"1"`
	Password string `json:"password" doc:"Пароль" minLength:"1"`
}

type loginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Role    string `json:"role" enum:"user,admin"`
}
