package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/brunoadrover/gestiontaller/internal/dto"
	apperrors "github.com/brunoadrover/gestiontaller/pkg/errors"
	"github.com/brunoadrover/gestiontaller/pkg/service"
)

// La clave usada cuando TALLER_PASSWORD_HASH no está configurado. Sólo para
// desarrollo: en producción siempre va el hash por entorno.
const claveDefecto = "taller2026"

// AuthService valida la clave compartida del taller y emite el token de
// sesión. No hay usuarios: todo el que sabe la clave es "el taller".
type AuthService struct {
	passwordHash []byte
	jwtService   service.JWTService
	logger       *zap.Logger
}

func NewAuthService(passwordHash string, jwtService service.JWTService, logger *zap.Logger) *AuthService {
	hash := []byte(passwordHash)
	if passwordHash == "" {
		generado, err := bcrypt.GenerateFromPassword([]byte(claveDefecto), bcrypt.DefaultCost)
		if err != nil {
			logger.Fatal("no se pudo generar el hash de la clave por defecto", zap.Error(err))
		}
		hash = generado
		logger.Warn("TALLER_PASSWORD_HASH no configurado, usando la clave por defecto")
	}
	return &AuthService{
		passwordHash: hash,
		jwtService:   jwtService,
		logger:       logger,
	}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.AuthResponseDTO, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(payload.Password)); err != nil {
		s.logger.Warn("intento de login con clave incorrecta")
		return nil, apperrors.ErrInvalidCredentials
	}

	sessionID := uuid.NewString()
	token, err := s.jwtService.GenerateToken(sessionID)
	if err != nil {
		s.logger.Error("error generando token de sesión", zap.Error(err))
		return nil, err
	}

	s.logger.Info("sesión de taller iniciada", zap.String("session_id", sessionID))
	return &dto.AuthResponseDTO{
		AccessToken: token,
		ExpiresIn:   int64(s.jwtService.GetAccessTokenTTL().Seconds()),
	}, nil
}
