package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const operatorIDKey = "operator_id"

// OperatorGate guards operator-only routes against the configured allowlist.
// Membership is boolean, there is no role hierarchy.
type OperatorGate struct {
	allowed map[int64]struct{}
}

func NewOperatorGate(ids []int64) *OperatorGate {
	allowed := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		allowed[id] = struct{}{}
	}
	return &OperatorGate{allowed: allowed}
}

func (g *OperatorGate) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.GetHeader("X-Operator-ID"), 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing operator id"})
			return
		}
		if _, ok := g.allowed[id]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not an operator"})
			return
		}
		c.Set(operatorIDKey, id)
		c.Next()
	}
}
