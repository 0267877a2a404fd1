package middleware

import (
	"net/http"

	"candiqr/internal/apierror"
	"candiqr/internal/model"

	"github.com/gin-gonic/gin"
)

// Policy maps a resource name to its allowed role set. The route table binds
// each resource group to one Require call — all role decisions live in a
// single declarative table instead of scattered per-handler checks. There is
// no implicit admin override: admin must be listed explicitly.
type Policy map[string][]string

// DefaultPolicy is the role table for the API resources.
var DefaultPolicy = Policy{
	"students":   {model.RoleAdmin, model.RoleOperator, model.RoleTeacher},
	"teachers":   {model.RoleAdmin, model.RoleOperator},
	"classes":    {model.RoleAdmin, model.RoleOperator, model.RoleTeacher},
	"subjects":   {model.RoleAdmin, model.RoleOperator, model.RoleTeacher},
	"schedules":  {model.RoleAdmin, model.RoleOperator, model.RoleTeacher},
	"parents":    {model.RoleAdmin, model.RoleOperator},
	"operators":  {model.RoleAdmin},
	"locations":  {model.RoleAdmin, model.RoleOperator},
	"scan":       {model.RoleAdmin, model.RoleOperator, model.RoleTeacher},
	"attendance": {model.RoleAdmin, model.RoleOperator, model.RoleTeacher},
	"reports":    {model.RoleAdmin, model.RoleOperator, model.RoleTeacher},
}

// Require is the single generic role guard: it checks the authenticated
// user's role against the policy entry for resource.
func (p Policy) Require(resource string) gin.HandlerFunc {
	allowed := make(map[string]bool)
	for _, r := range p[resource] {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		user := GetUser(c)
		if user == nil || !allowed[user.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.Fail("Role Anda tidak diizinkan mengakses resource ini"))
			return
		}
		c.Next()
	}
}

// RequireRole guards a single route with an explicit role set, for endpoints
// that do not map to one policy resource.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		user := GetUser(c)
		if user == nil || !allowed[user.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.Fail("Role Anda tidak diizinkan mengakses resource ini"))
			return
		}
		c.Next()
	}
}
