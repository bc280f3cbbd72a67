package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"recharge_system/internal/apperr" // Error taxonomy

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// writeError converts a service error into an HTTP response. Classified
// errors carry their own client-facing message; anything unclassified is a
// server fault whose detail is logged, not echoed.
func writeError(c *gin.Context, err error) {
	code := apperr.StatusCode(err)
	if code == http.StatusInternalServerError {
		logrus.WithFields(logrus.Fields{
			"path":  c.FullPath(),
			"error": err.Error(),
		}).Error("Request failed")
		c.JSON(code, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(code, gin.H{"error": err.Error()})
}

// pathID parses an integer path parameter; on failure it writes a 400 and
// reports false.
func pathID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(v), true
}
