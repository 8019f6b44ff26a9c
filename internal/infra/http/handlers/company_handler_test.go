package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/botsuinsure/botsuinsure-api/internal/entity"
	"github.com/botsuinsure/botsuinsure-api/internal/infra/catalog"
	"github.com/botsuinsure/botsuinsure-api/internal/infra/memory"
)

func TestCompanyListReturnsFixedSet(t *testing.T) {
	h := NewCompanyHandler(memory.NewCompanyRepository(catalog.Companies))

	req := httptest.NewRequest(http.MethodGet, "/api/companies", nil)
	rec := httptest.NewRecorder()
	h.HandleList(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var companies []entity.Company
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &companies))
	assert.Len(t, companies, 5)
	assert.Equal(t, 1, companies[0].ID)
	assert.Equal(t, "Liberty Life Botswana (Pty) Limited", companies[0].Name)
	assert.Equal(t, "Pula Medical Aid Fund (Pulamed)", companies[4].Name)
}
