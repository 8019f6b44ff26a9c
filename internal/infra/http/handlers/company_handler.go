package handlers

import (
	"net/http"

	"github.com/botsuinsure/botsuinsure-api/internal/usecase"
)

type CompanyHandler struct {
	Companies usecase.CompanyRepositoryInterface
}

func NewCompanyHandler(companies usecase.CompanyRepositoryInterface) *CompanyHandler {
	return &CompanyHandler{Companies: companies}
}

func (h *CompanyHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.Companies.FindAll())
}
