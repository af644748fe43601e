package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pcourtois/media-vault-go/internal/mock"
	"github.com/pcourtois/media-vault-go/internal/model"
	assetUC "github.com/pcourtois/media-vault-go/internal/usecase/asset"
)

func TestGetAssetHandler_Unauthenticated(t *testing.T) {
	h := GetAssetHandler(&mock.MockAssetGetter{})

	req := httptest.NewRequest(http.MethodGet, "/media/"+testAssetID.String(), nil)
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestGetAssetHandler_NotFound(t *testing.T) {
	h := GetAssetHandler(&mock.MockAssetGetter{Err: assetUC.ErrNotFound})

	req := withAssetID(authedRequest(http.MethodGet, "/media/"+testAssetID.String(), nil), testAssetID)
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusNotFound)
	}
	if !strings.Contains(rec.Body.String(), "Asset not found") {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}

func TestGetAssetHandler_Forbidden(t *testing.T) {
	h := GetAssetHandler(&mock.MockAssetGetter{Err: assetUC.ErrForbidden})

	req := withAssetID(authedRequest(http.MethodGet, "/media/"+testAssetID.String(), nil), testAssetID)
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusForbidden)
	}
}

func TestGetAssetHandler_ServiceError(t *testing.T) {
	h := GetAssetHandler(&mock.MockAssetGetter{Err: errors.New("boom")})

	req := withAssetID(authedRequest(http.MethodGet, "/media/"+testAssetID.String(), nil), testAssetID)
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestGetAssetHandler_Success(t *testing.T) {
	desc := "a cat"
	mockSvc := &mock.MockAssetGetter{Out: &model.Asset{
		ID:               testAssetID,
		OwnerID:          testOwnerID,
		ObjectKey:        "owner/id_cat.png",
		OriginalFilename: "cat.png",
		MediaType:        model.MediaTypeImage,
		Description:      &desc,
		Labels:           model.Labels{"pets"},
	}}
	h := GetAssetHandler(mockSvc)

	req := withAssetID(authedRequest(http.MethodGet, "/media/"+testAssetID.String(), nil), testAssetID)
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
	}
	if mockSvc.ID != testAssetID || mockSvc.OwnerID != testOwnerID {
		t.Errorf("service got (%s, %s); want (%s, %s)", mockSvc.ID, mockSvc.OwnerID, testAssetID, testOwnerID)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["fileName"] != "owner/id_cat.png" {
		t.Errorf("unexpected fileName %v", body["fileName"])
	}
	if body["originalFileName"] != "cat.png" {
		t.Errorf("unexpected originalFileName %v", body["originalFileName"])
	}
	if body["mediaType"] != "image" {
		t.Errorf("unexpected mediaType %v", body["mediaType"])
	}
	if _, present := body["thumbnailUrl"]; !present {
		t.Error("expected thumbnailUrl to always be present")
	}
}
