package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/brunoadrover/gestiontaller/internal/dto"
	apperrors "github.com/brunoadrover/gestiontaller/pkg/errors"
	"github.com/brunoadrover/gestiontaller/pkg/service"
)

func TestAuthService_Login(t *testing.T) {
	jwtSvc := service.NewJWTService("secreto-de-test", time.Hour)
	hash, err := bcrypt.GenerateFromPassword([]byte("clave-del-taller"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := NewAuthService(string(hash), jwtSvc, zap.NewNop())

	t.Run("clave correcta emite token válido", func(t *testing.T) {
		res, err := svc.Login(context.Background(), dto.LoginDTO{Password: "clave-del-taller"})
		require.NoError(t, err)
		require.NotEmpty(t, res.AccessToken)
		assert.EqualValues(t, 3600, res.ExpiresIn)

		claims, err := jwtSvc.ValidateToken(res.AccessToken)
		require.NoError(t, err)
		assert.NotEmpty(t, claims.SessionID)
	})

	t.Run("clave incorrecta", func(t *testing.T) {
		_, err := svc.Login(context.Background(), dto.LoginDTO{Password: "otra-clave"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("cada login emite una sesión distinta", func(t *testing.T) {
		a, err := svc.Login(context.Background(), dto.LoginDTO{Password: "clave-del-taller"})
		require.NoError(t, err)
		b, err := svc.Login(context.Background(), dto.LoginDTO{Password: "clave-del-taller"})
		require.NoError(t, err)

		claimsA, err := jwtSvc.ValidateToken(a.AccessToken)
		require.NoError(t, err)
		claimsB, err := jwtSvc.ValidateToken(b.AccessToken)
		require.NoError(t, err)
		assert.NotEqual(t, claimsA.SessionID, claimsB.SessionID)
	})
}

func TestAuthService_ClaveDefecto(t *testing.T) {
	jwtSvc := service.NewJWTService("secreto-de-test", time.Hour)
	svc := NewAuthService("", jwtSvc, zap.NewNop())

	_, err := svc.Login(context.Background(), dto.LoginDTO{Password: "taller2026"})
	assert.NoError(t, err, "sin hash configurado rige la clave por defecto")
}
