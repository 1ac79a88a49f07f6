package auth

import (
	"github.com/DanCG7040/RealTaker-cup-backend/packages/auth/middleware"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/auth/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Module bundles token validation and role checks. Tokens are issued by the identity
// provider; this service only verifies them.
type Module struct {
	Tokens *utils.TokenService
	db     *gorm.DB
}

func NewModule(db *gorm.DB, tokens *utils.TokenService) *Module {
	return &Module{Tokens: tokens, db: db}
}

func (m *Module) JWTMiddleware() gin.HandlerFunc {
	return middleware.JWTMiddleware(m.Tokens)
}

func (m *Module) OptionalJWTMiddleware() gin.HandlerFunc {
	return middleware.OptionalJWTMiddleware(m.Tokens)
}

func (m *Module) RequireRole(role string) gin.HandlerFunc {
	return middleware.RequireRole(m.db, role)
}

func (m *Module) RequireAnyRole(roles ...string) gin.HandlerFunc {
	return middleware.RequireAnyRole(m.db, roles...)
}

func GetUserID(c *gin.Context) (uint, bool) {
	return middleware.GetUserID(c)
}

func GetNickname(c *gin.Context) (string, bool) {
	return middleware.GetNickname(c)
}
