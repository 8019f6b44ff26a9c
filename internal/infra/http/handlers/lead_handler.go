package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/botsuinsure/botsuinsure-api/internal/entity"
	"github.com/botsuinsure/botsuinsure-api/internal/infra/http/middleware"
	"github.com/botsuinsure/botsuinsure-api/internal/usecase"
)

type LeadHandler struct {
	CaptureUC *usecase.CaptureLeadUseCase
}

func NewLeadHandler(captureUC *usecase.CaptureLeadUseCase) *LeadHandler {
	return &LeadHandler{CaptureUC: captureUC}
}

// Handle accepts a lead submission and echoes it back with a generated
// id. Field presence is not validated; only a body that fails to parse is
// rejected.
func (h *LeadHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var lead entity.Lead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	middleware.RecordLeadCaptured()
	respondJSON(w, http.StatusOK, h.CaptureUC.Execute(lead))
}
