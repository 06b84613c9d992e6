package web

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/murkotick/catalog-admin/internal/app/catalog/domain"
	"github.com/murkotick/catalog-admin/internal/pkg/apiclient"
	"github.com/murkotick/catalog-admin/internal/pkg/jsonapi"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", domain.ValidationErrors{{Field: "name", Message: "m"}}, http.StatusUnprocessableEntity},
		{"api 404 passes through", &apiclient.APIError{StatusCode: 404}, http.StatusNotFound},
		{"api 503 passes through", &apiclient.APIError{StatusCode: 503}, http.StatusServiceUnavailable},
		{"api bogus status clamps", &apiclient.APIError{StatusCode: 299}, http.StatusBadGateway},
		{"network", &apiclient.NetworkError{Err: errors.New("refused")}, http.StatusBadGateway},
		{"malformed envelope", fmt.Errorf("%w: junk", jsonapi.ErrMalformedEnvelope), http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, httpStatus(tc.err))
		})
	}
}
