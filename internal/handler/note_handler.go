package handler

import (
	"net/http"

	"todo-go/internal/dto"
	"todo-go/internal/middleware"
	"todo-go/internal/service"
	"todo-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// NoteHandler 笔记处理器
type NoteHandler struct {
	noteService *service.NoteService
}

// NewNoteHandler 创建笔记处理器
func NewNoteHandler(noteService *service.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// List 获取当前用户的笔记列表
// GET /note
func (h *NoteHandler) List(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	notes, err := h.noteService.List(userID)
	if err != nil {
		utils.InternalError(c, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, dto.NewNoteResponses(notes))
}

// Get 获取当前用户的单条笔记
// GET /note/:id
func (h *NoteHandler) Get(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	id, ok := parseID(c)
	if !ok {
		utils.NotFound(c, "Note not found")
		return
	}

	note, err := h.noteService.Get(userID, id)
	if err != nil {
		respondError(c, err, "Note not found")
		return
	}

	c.JSON(http.StatusOK, dto.NewNoteResponse(note))
}

// Create 创建笔记
// POST /note
func (h *NoteHandler) Create(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.MalformedJSON(c)
		return
	}

	note, err := h.noteService.Create(userID, &req)
	if err != nil {
		respondError(c, err, "Note not found")
		return
	}

	utils.Success(c, http.StatusCreated, "Successfully added a new note", dto.NewNoteResponse(note))
}

// Update 部分更新笔记
// PUT|PATCH /note/:id
func (h *NoteHandler) Update(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	id, ok := parseID(c)
	if !ok {
		utils.NotFound(c, "Note not found")
		return
	}

	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.MalformedJSON(c)
		return
	}

	note, err := h.noteService.Update(userID, id, &req)
	if err != nil {
		respondError(c, err, "Note not found")
		return
	}

	utils.Success(c, http.StatusCreated, "Note successfully updated", dto.NewNoteResponse(note))
}

// Delete 删除笔记
// DELETE /note/:id
func (h *NoteHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	id, ok := parseID(c)
	if !ok {
		utils.NotFound(c, "Note not found")
		return
	}

	if err := h.noteService.Delete(userID, id); err != nil {
		respondError(c, err, "Note not found")
		return
	}

	utils.SuccessMessage(c, http.StatusOK, "Note Successfully deleted")
}
