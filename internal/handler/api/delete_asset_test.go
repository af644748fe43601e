package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/pcourtois/media-vault-go/internal/api_context"
	"github.com/pcourtois/media-vault-go/internal/db"
	"github.com/pcourtois/media-vault-go/internal/mock"
	assetUC "github.com/pcourtois/media-vault-go/internal/usecase/asset"
)

var (
	testAssetID = db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))
	testOwnerID = db.UUID(uuid.MustParse("11111111-2222-3333-4444-555555555555"))
)

func authedRequest(method, target string, body *strings.Reader) *http.Request {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, body)
	}
	ctx := context.WithValue(req.Context(), api_context.AuthUserIDKey, testOwnerID)
	return req.WithContext(ctx)
}

func withAssetID(req *http.Request, id db.UUID) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), api_context.AssetIDKey, id))
}

func TestDeleteAssetHandler(t *testing.T) {
	tests := []struct {
		name           string
		authed         bool
		withID         bool
		svcErr         error
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:           "unauthenticated",
			authed:         false,
			withID:         true,
			wantStatus:     http.StatusUnauthorized,
			wantBodySubstr: "authentication required",
		},
		{
			name:           "missing id",
			authed:         true,
			withID:         false,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "ID is required",
		},
		{
			name:           "not found",
			authed:         true,
			withID:         true,
			svcErr:         assetUC.ErrNotFound,
			wantStatus:     http.StatusNotFound,
			wantBodySubstr: "Asset not found",
		},
		{
			name:           "foreign owner",
			authed:         true,
			withID:         true,
			svcErr:         assetUC.ErrForbidden,
			wantStatus:     http.StatusForbidden,
			wantBodySubstr: "You do not have access to this asset",
		},
		{
			name:           "service error",
			authed:         true,
			withID:         true,
			svcErr:         errors.New("boom"),
			wantStatus:     http.StatusInternalServerError,
			wantBodySubstr: "Failed to delete asset",
		},
		{
			name:       "happy path",
			authed:     true,
			withID:     true,
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockSvc := &mock.MockAssetDeleter{Err: tc.svcErr}
			h := DeleteAssetHandler(mockSvc)

			req := httptest.NewRequest(http.MethodDelete, "/media/"+testAssetID.String(), nil)
			if tc.authed {
				req = req.WithContext(context.WithValue(req.Context(), api_context.AuthUserIDKey, testOwnerID))
			}
			if tc.withID {
				req = withAssetID(req, testAssetID)
			}

			rec := httptest.NewRecorder()
			h(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d", rec.Code, tc.wantStatus)
			}

			if tc.wantStatus == http.StatusNoContent {
				if rec.Body.Len() != 0 {
					t.Errorf("expected empty body, got %q", rec.Body.String())
				}
				if mockSvc.ID != testAssetID || mockSvc.OwnerID != testOwnerID {
					t.Errorf("service got (%s, %s); want (%s, %s)", mockSvc.ID, mockSvc.OwnerID, testAssetID, testOwnerID)
				}
			} else if !strings.Contains(rec.Body.String(), tc.wantBodySubstr) {
				t.Errorf("body = %q; want substring %q", rec.Body.String(), tc.wantBodySubstr)
			}
		})
	}
}
