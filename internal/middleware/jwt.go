package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"Feira/config"
	"Feira/internal/domain/user"
	appErrors "Feira/internal/errors"
	"Feira/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type JwtService struct {
	secret      []byte
	ttl         time.Duration
	userService *user.Service
}

func NewJwtService(cfg config.JWTConfig, userSvc *user.Service) (*JwtService, error) {
	if cfg.Secret == "" {
		return nil, errors.New("JWT_SECRET não configurado")
	}
	return &JwtService{
		secret:      []byte(cfg.Secret),
		ttl:         cfg.TTL,
		userService: userSvc,
	}, nil
}

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (s *JwtService) GenerateToken(u *user.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Id.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	return signed, nil
}

func (s *JwtService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("método de assinatura inesperado")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, appErrors.NewAuthError("TOKEN_INVALID", "Token inválido ou expirado").WithError(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, appErrors.NewAuthError("TOKEN_INVALID", "Token inválido ou expirado")
	}
	return claims, nil
}

// AuthMiddleware valida o bearer token e injeta o user_id no contexto da
// requisição.
func AuthMiddleware(jwtSvc *JwtService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   appErrors.ErrUnauthorized.Code,
				"message": "Token de autenticação não fornecido",
			})
			c.Abort()
			return
		}

		claims, err := jwtSvc.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			appErr := appErrors.FromError(err)
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   appErr.Code,
				"message": appErr.Message,
			})
			c.Abort()
			return
		}

		userID, err := pkg.ParseULID(claims.Subject)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   appErrors.ErrUnauthorized.Code,
				"message": appErrors.ErrUnauthorized.Message,
			})
			c.Abort()
			return
		}

		if jwtSvc.userService != nil {
			if err := jwtSvc.userService.Exists(c.Request.Context(), userID); err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{
					"error":   appErrors.ErrUnauthorized.Code,
					"message": appErrors.ErrUnauthorized.Message,
				})
				c.Abort()
				return
			}
		}

		c.Set("user_id", claims.Subject)
		c.Next()
	}
}
