package todo

import "time"

const MaxTextLength = 500

type CreateRequest struct {
	Text string `json:"text"`
}

// UpdateRequest edits the text, sets the completed flag, or both.
type UpdateRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

type Response struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ListResponse struct {
	Items     []Response `json:"items"`
	Remaining int        `json:"remaining"`
}

func toResponse(t Todo) Response {
	return Response{
		ID:        t.ID,
		Text:      t.Text,
		Completed: t.Completed,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
