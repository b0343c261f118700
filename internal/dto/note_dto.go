package dto

import (
	"time"

	"todo-go/internal/models"
	"todo-go/internal/utils"
)

// NoteRequest 笔记创建/更新请求，对外content对应存储的description
type NoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Color   *string `json:"color"`
}

// Normalize 清洗输入字段
func (r *NoteRequest) Normalize() {
	r.Title = utils.StripPtr(r.Title)
	r.Content = utils.StripPtr(r.Content)
	r.Color = utils.StripPtr(r.Color)
}

// NoteResponse 笔记响应
type NoteResponse struct {
	ID       uint      `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Color    string    `json:"color"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`
	User     *string   `json:"user"`
}

// NewNoteResponse 从模型构建笔记响应
func NewNoteResponse(note *models.Note) NoteResponse {
	return NoteResponse{
		ID:       note.ID,
		Title:    note.Title,
		Content:  note.Description,
		Color:    note.Color,
		Created:  note.CreatedAt,
		Modified: note.UpdatedAt,
		User:     note.OwnerUsername(),
	}
}

// NewNoteResponses 从模型列表构建笔记响应列表
func NewNoteResponses(notes []models.Note) []NoteResponse {
	responses := make([]NoteResponse, 0, len(notes))
	for i := range notes {
		responses = append(responses, NewNoteResponse(&notes[i]))
	}
	return responses
}
