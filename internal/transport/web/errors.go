package web

import (
	"errors"
	"net/http"

	"github.com/murkotick/catalog-admin/internal/app/catalog/domain"
	"github.com/murkotick/catalog-admin/internal/pkg/apiclient"
	"github.com/murkotick/catalog-admin/internal/pkg/jsonapi"
)

// httpStatus maps the closed error set to a response status. Validation
// failures re-render a form, backend statuses pass through, and transport
// or decode failures surface as a bad gateway.
func httpStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		return http.StatusUnprocessableEntity
	}

	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 600 {
			return apiErr.StatusCode
		}
		return http.StatusBadGateway
	}

	var netErr *apiclient.NetworkError
	if errors.As(err, &netErr) {
		return http.StatusBadGateway
	}

	if errors.Is(err, jsonapi.ErrMalformedEnvelope) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

// userMessage turns an error into text safe to show on a page.
func userMessage(err error) string {
	return apiclient.Message(err)
}

func asValidation(err error, target *domain.ValidationErrors) bool {
	return errors.As(err, target)
}
