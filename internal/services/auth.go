package services

import (
	"context"
	"errors"

	"fieldops-system/internal/dto"
	"fieldops-system/internal/repositories"
	apperrors "fieldops-system/pkg/errors"
	"fieldops-system/pkg/utils"

	"go.uber.org/zap"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error)
}

type AuthService struct {
	userRepository repositories.UserRepositoryInterface
	token          string
	logger         *zap.Logger
}

func NewAuthService(userRepository repositories.UserRepositoryInterface, token string, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		token:          token,
		logger:         logger,
	}
}

// Login проверяет пару логин/пароль и возвращает статический токен
// панели. Токен один на всех: кто бы ни вошёл, ответ одинаковый.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, payload.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Warn("попытка входа с неизвестным логином", zap.String("username", payload.Username))
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utils.ComparePasswords(user.Password, payload.Password); err != nil {
		s.logger.Warn("неверный пароль", zap.String("username", payload.Username))
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Info("успешный вход", zap.Uint64("userID", user.ID))
	return &dto.LoginResponseDTO{
		User: dto.LoginUserDTO{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
		},
		Token: s.token,
	}, nil
}
