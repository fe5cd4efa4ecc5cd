package accountservice

// existsResponse ответ проверки существования аккаунта
type existsResponse struct {
	Exists bool `json:"exists"`
}
