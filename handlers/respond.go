package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hiringplatform/backend/auth"
	"github.com/hiringplatform/backend/models"
	"github.com/hiringplatform/backend/storage"
)

var registerTagNames sync.Once

// UseJSONFieldNames makes validation errors report JSON (or form) field names
// instead of Go struct field names
func UseJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			for _, key := range []string{"json", "form"} {
				name := strings.SplitN(field.Tag.Get(key), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return field.Name
		})
	})
}

func respondError(c *gin.Context, code int, message, details string) {
	c.JSON(code, models.ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	})
}

// validationDetails lists the offending fields of a binding error
func validationDetails(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: failed on %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s: failed on %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}

func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", validationDetails(err))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid query parameters", validationDetails(err))
		return false
	}
	return true
}

// pathID parses a UUID path parameter
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid "+name, err.Error())
		return uuid.Nil, false
	}
	return id, true
}

// currentUser returns the authenticated user's id and role
func currentUser(c *gin.Context) (uuid.UUID, models.Role, bool) {
	claims := auth.GetAuthClaims(c)
	if claims == nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", "")
		return uuid.Nil, "", false
	}
	id, err := claims.UserUUID()
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid authentication credentials", "")
		return uuid.Nil, "", false
	}
	return id, claims.Role, true
}

func isOwner(owner *uuid.UUID, userID uuid.UUID) bool {
	return owner != nil && *owner == userID
}

// storeError maps a storage error onto a response. notFound and conflict are
// the messages for ErrNotFound and ErrAlreadyExists.
func storeError(c *gin.Context, logger *zap.Logger, err error, notFound, conflict string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		respondError(c, http.StatusNotFound, notFound, "")
	case errors.Is(err, storage.ErrAlreadyExists):
		respondError(c, http.StatusBadRequest, conflict, "")
	default:
		logger.Error("storage operation failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		respondError(c, http.StatusInternalServerError, "Internal server error", "")
	}
}
