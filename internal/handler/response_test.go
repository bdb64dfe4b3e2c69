package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"lcintel/internal/domain"
	"lcintel/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrSessionNotFound, http.StatusNotFound, "SESSION_NOT_FOUND"},
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrCustomerNotFound, http.StatusNotFound, "CUSTOMER_NOT_FOUND"},
		{domain.ErrPrerequisiteMissing, http.StatusConflict, "PREREQUISITE_MISSING"},
		{domain.ErrSessionBusy, http.StatusConflict, "SESSION_BUSY"},
		{domain.ErrInvalidRequest, http.StatusBadRequest, "INVALID_REQUEST"},
		{domain.ErrUnsupportedFileType, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE"},
		{domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{domain.ErrUnsupportedFormat, http.StatusUnprocessableEntity, "UNSUPPORTED_FORMAT"},
		{domain.ErrUnknownTool, http.StatusBadRequest, "UNKNOWN_TOOL"},
		{domain.ErrCapabilityTimeout, http.StatusGatewayTimeout, "CAPABILITY_TIMEOUT"},
		{domain.ErrCapabilityFailure, http.StatusBadGateway, "CAPABILITY_FAILURE"},
		{domain.ErrArchiveFailed, http.StatusInternalServerError, "ARCHIVE_FAILED"},
		{errors.New("something else"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			status, code, msg := handler.MapDomainError(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, code)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestMapDomainErrorUnwrapsChains(t *testing.T) {
	wrapped := fmt.Errorf("%w: no document uploaded", domain.ErrPrerequisiteMissing)
	status, code, _ := handler.MapDomainError(wrapped)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "PREREQUISITE_MISSING", code)
}
