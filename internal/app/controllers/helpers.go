package controllers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yigit/placementportal/internal/pkg/apperrors"
)

// parseObjectIDParam parses a 24-hex document id from the request path
func parseObjectIDParam(ctx *gin.Context, paramName, entity string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(ctx.Param(paramName))
	if err != nil {
		return primitive.NilObjectID, apperrors.NewBadRequestError("Invalid " + entity + " ID")
	}
	return id, nil
}

// bindOptionalJSON binds a JSON body, treating an empty body as an empty object
func bindOptionalJSON(ctx *gin.Context, obj interface{}) error {
	if err := ctx.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// optionalFormFile returns the uploaded part for field, or nil when the request has none
func optionalFormFile(ctx *gin.Context, field string) (*multipart.FileHeader, error) {
	fh, err := ctx.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	return fh, nil
}
