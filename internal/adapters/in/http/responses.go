package http

import (
	"time"

	"atelier/internal/core/application/usecases/queries"

	"github.com/oapi-codegen/runtime/types"
)

// AttachmentResponse is the wire representation of a stored file.
type AttachmentResponse struct {
	ID           string `json:"id"`
	StoredName   string `json:"storedName"`
	OriginalName string `json:"originalName"`
	MimeType     string `json:"mimeType"`
	SizeBytes    int64  `json:"sizeBytes"`
	Location     string `json:"location"`
}

// AdminContentResponse is the wire representation of delivered content.
type AdminContentResponse struct {
	ID          string               `json:"id"`
	Description string               `json:"description"`
	Files       []AttachmentResponse `json:"files"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// FeedbackResponse is the wire representation of one feedback entry.
type FeedbackResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
}

// OrderResponse is the wire representation of a complete order.
type OrderResponse struct {
	ID           string                `json:"id"`
	Code         string                `json:"code"`
	ClientID     string                `json:"clientId"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	Priority     string                `json:"priority"`
	Status       string                `json:"status"`
	DueDate      *types.Date           `json:"dueDate"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
	Attachments  []AttachmentResponse  `json:"attachments"`
	AdminContent *AdminContentResponse `json:"adminContent"`
	Feedbacks    []FeedbackResponse    `json:"feedbacks"`
}

func toOrderResponse(view queries.OrderView) OrderResponse {
	response := OrderResponse{
		ID:          view.ID.String(),
		Code:        view.Code,
		ClientID:    view.ClientID.String(),
		Title:       view.Title,
		Description: view.Description,
		Priority:    view.Priority,
		Status:      view.Status,
		CreatedAt:   view.CreatedAt,
		UpdatedAt:   view.UpdatedAt,
		Attachments: toAttachmentResponses(view.Attachments),
		Feedbacks:   make([]FeedbackResponse, 0, len(view.Feedbacks)),
	}

	if view.DueDate != nil {
		response.DueDate = &types.Date{Time: *view.DueDate}
	}

	if view.AdminContent != nil {
		response.AdminContent = &AdminContentResponse{
			ID:          view.AdminContent.ID.String(),
			Description: view.AdminContent.Description,
			Files:       toAttachmentResponses(view.AdminContent.Files),
			CreatedAt:   view.AdminContent.CreatedAt,
			UpdatedAt:   view.AdminContent.UpdatedAt,
		}
	}

	for _, feedback := range view.Feedbacks {
		response.Feedbacks = append(response.Feedbacks, FeedbackResponse{
			ID:        feedback.ID.String(),
			Type:      feedback.Type,
			Message:   feedback.Message,
			AuthorID:  feedback.AuthorID.String(),
			CreatedAt: feedback.CreatedAt,
		})
	}

	return response
}

func toAttachmentResponses(views []queries.AttachmentView) []AttachmentResponse {
	responses := make([]AttachmentResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, AttachmentResponse{
			ID:           view.ID.String(),
			StoredName:   view.StoredName,
			OriginalName: view.OriginalName,
			MimeType:     view.MimeType,
			SizeBytes:    view.SizeBytes,
			Location:     view.Location,
		})
	}
	return responses
}
