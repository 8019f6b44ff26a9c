package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/botsuinsure/botsuinsure-api/internal/entity"
	"github.com/botsuinsure/botsuinsure-api/internal/usecase"
)

type ProductHandler struct {
	Products    usecase.ProductRepositoryInterface
	CalculateUC *usecase.CalculatePremiumsUseCase
}

func NewProductHandler(products usecase.ProductRepositoryInterface, calculateUC *usecase.CalculatePremiumsUseCase) *ProductHandler {
	return &ProductHandler{Products: products, CalculateUC: calculateUC}
}

func (h *ProductHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	company := r.URL.Query().Get("company")

	respondJSON(w, http.StatusOK, h.Products.FindAll(category, company))
}

func (h *ProductHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Product not found")
		return
	}

	product, err := h.Products.FindByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Product not found")
		return
	}

	respondJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	salary, err := strconv.ParseFloat(r.URL.Query().Get("salary"), 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "salary must be a number")
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		category = entity.CategoryMedical
	}

	respondJSON(w, http.StatusOK, h.CalculateUC.Execute(category, salary))
}
