package model

type ErrorResponse struct {
	Error string `json:"error"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type RootResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type RegisterResponse struct {
	User *User `json:"user"`
}

type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type TodoEnvelope struct {
	Message string `json:"message"`
	Todo    *Todo  `json:"todo"`
}
