package dto

// CreateNotificationDTO используется сервисами при регистрации побочных
// эффектов мутаций; прямого HTTP-эндпоинта создания уведомлений нет.
type CreateNotificationDTO struct {
	Type    string `json:"type" validate:"required"`
	Message string `json:"message" validate:"required"`
}
