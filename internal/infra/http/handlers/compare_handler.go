package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/botsuinsure/botsuinsure-api/internal/infra/http/middleware"
	"github.com/botsuinsure/botsuinsure-api/internal/usecase"
)

type CompareHandler struct {
	CompareUC *usecase.CompareProductsUseCase
}

func NewCompareHandler(compareUC *usecase.CompareProductsUseCase) *CompareHandler {
	return &CompareHandler{CompareUC: compareUC}
}

func (h *CompareHandler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	input := usecase.CompareInput{}
	for _, raw := range strings.Split(query.Get("product_ids"), ",") {
		id, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			// non-numeric entries are skipped, never fatal
			continue
		}
		input.ProductIDs = append(input.ProductIDs, id)
	}

	if s := query.Get("salary"); s != "" {
		if salary, err := strconv.ParseFloat(s, 64); err == nil {
			input.Salary = &salary
		}
	}

	middleware.RecordComparison()
	respondJSON(w, http.StatusOK, h.CompareUC.Execute(input))
}
