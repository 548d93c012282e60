package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceError_StatusAndCategory(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name     string
		err      error
		category Category
		status   int
		internal bool
	}{
		{name: "bad request", err: BadRequestError(cause, "bad limit"), category: CategoryDataError, status: http.StatusBadRequest},
		{name: "unauthorized", err: UnAuthorizedError(nil, "no token"), category: CategoryUnauthorized, status: http.StatusUnauthorized},
		{name: "not found", err: ResourceNotFoundError(nil, "vault not found"), category: CategoryResourceNotFound, status: http.StatusNotFound},
		{name: "rate limited", err: TooManyRequestsError("slow down"), category: CategoryRateLimited, status: http.StatusTooManyRequests},
		{name: "dependency", err: DependencyFailureError(cause, "upstream down"), category: CategoryDependencyFailure, status: http.StatusBadGateway, internal: true},
		{name: "timeout", err: TimeoutError(context.DeadlineExceeded, "upstream timed out"), category: CategoryConnectionTimeout, status: http.StatusGatewayTimeout, internal: true},
		{name: "general", err: GeneralError(cause), category: CategoryGeneralError, status: http.StatusInternalServerError, internal: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("handler: %w", tt.err)

			var svcErr *ServiceError
			require.True(t, errors.As(wrapped, &svcErr))
			assert.Equal(t, tt.status, svcErr.StatusCode())
			assert.True(t, Is(wrapped, tt.category))
			assert.Equal(t, tt.internal, IsInternalError(wrapped))
			assert.NotEmpty(t, svcErr.Error())
		})
	}
}

func TestServiceError_UnwrapsCause(t *testing.T) {
	err := TimeoutError(context.DeadlineExceeded, "upstream timed out")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, context.DeadlineExceeded.Error(), err.Error())

	var svcErr *ServiceError
	require.ErrorAs(t, GeneralError(errors.New("pq: secret")), &svcErr)
	assert.Equal(t, "Internal Server Error", svcErr.Message)
}

func TestIsInternalError_PlainError(t *testing.T) {
	assert.True(t, IsInternalError(errors.New("plain")))
	assert.False(t, Is(errors.New("plain"), CategoryDataError))
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "CategoryRateLimited", CategoryRateLimited.String())
	assert.Equal(t, "CategoryGeneralError", Category(99).String())
}
