package usecase

import (
	"fmt"
	"time"

	"github.com/botsuinsure/botsuinsure-api/internal/entity"
)

type CaptureLeadUseCase struct {
	now func() time.Time
}

func NewCaptureLeadUseCase() *CaptureLeadUseCase {
	return &CaptureLeadUseCase{now: time.Now}
}

// Execute acknowledges a lead submission, echoing the payload back with a
// generated id. Nothing is stored; the id is unique only to millisecond
// granularity.
func (uc *CaptureLeadUseCase) Execute(lead entity.Lead) CaptureLeadOutput {
	return CaptureLeadOutput{
		Success: true,
		Message: "Lead submitted successfully.",
		LeadID:  fmt.Sprintf("LEAD-%d", uc.now().UnixMilli()),
		Data:    lead,
	}
}
