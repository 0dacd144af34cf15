package resp

import (
	"errors"
	"net/http"

	"backend/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": apperr.New(apperr.Validation, msg)})
}

func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": apperr.New(apperr.Unauthorized, msg)})
}

// Fail maps a service error onto the envelope. gorm's record-not-found is
// treated as NOT_FOUND so repositories don't have to translate it everywhere.
// Unexpected errors are logged with request context and surfaced opaquely.
func Fail(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = apperr.New(apperr.NotFound, "not found")
	}
	ae := apperr.From(err)
	if ae.Kind == apperr.Internal {
		logrus.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.FullPath(),
			"userId": c.GetUint("userId"),
		}).WithError(err).Error("request failed")
	}
	c.JSON(ae.Kind.HTTPStatus(), gin.H{"ok": false, "error": ae})
}
