package service

import (
	"errors"
	"testing"

	"todo-go/internal/dto"
	"todo-go/internal/repository"
)

func newNoteFixture(t *testing.T) (*NoteService, uint, uint) {
	t.Helper()

	db := newTestDB(t)
	owner := createUser(t, db, "alice", false)
	other := createUser(t, db, "bob", false)
	return NewNoteService(repository.NewNoteRepository(db)), owner.ID, other.ID
}

func TestNoteCreate(t *testing.T) {
	svc, ownerID, _ := newNoteFixture(t)

	note, err := svc.Create(ownerID, &dto.NoteRequest{
		Title:   strPtr(" Groceries. "),
		Content: strPtr("milk, eggs"),
		Color:   strPtr("yellow"),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if note.Title != "Groceries" {
		t.Errorf("Title = %q, want Groceries", note.Title)
	}
	// 对外content存入description字段
	if note.Description != "milk, eggs" {
		t.Errorf("Description = %q, want %q", note.Description, "milk, eggs")
	}
	if note.Color != "yellow" {
		t.Errorf("Color = %q, want yellow", note.Color)
	}
}

func TestNoteCreateMissingFields(t *testing.T) {
	svc, ownerID, _ := newNoteFixture(t)

	_, err := svc.Create(ownerID, &dto.NoteRequest{})

	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("err = %v, want FieldErrors", err)
	}
	for _, field := range []string{"title", "content"} {
		if _, ok := fieldErrs[field]; !ok {
			t.Errorf("missing field error for %q", field)
		}
	}
}

func TestNoteCreateDuplicateTitle(t *testing.T) {
	svc, ownerID, otherID := newNoteFixture(t)

	if _, err := svc.Create(ownerID, &dto.NoteRequest{
		Title:   strPtr("Shared"),
		Content: strPtr("c"),
	}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	_, err := svc.Create(otherID, &dto.NoteRequest{
		Title:   strPtr("Shared"),
		Content: strPtr("c"),
	})
	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("err = %v, want FieldErrors", err)
	}
	if fieldErrs["title"] != "Operation failed, there is an existing note with the same title." {
		t.Errorf("title error = %q", fieldErrs["title"])
	}
}

func TestNoteUpdatePartial(t *testing.T) {
	svc, ownerID, _ := newNoteFixture(t)

	note, err := svc.Create(ownerID, &dto.NoteRequest{
		Title:   strPtr("Original"),
		Content: strPtr("content"),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := svc.Update(ownerID, note.ID, &dto.NoteRequest{
		Content: strPtr("new content"),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Title != "Original" {
		t.Errorf("Title = %q, want Original", updated.Title)
	}
	if updated.Description != "new content" {
		t.Errorf("Description = %q, want %q", updated.Description, "new content")
	}
}

func TestNoteOwnershipEnforced(t *testing.T) {
	svc, ownerID, otherID := newNoteFixture(t)

	note, err := svc.Create(ownerID, &dto.NoteRequest{
		Title:   strPtr("Mine"),
		Content: strPtr("c"),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.Get(otherID, note.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get by non-owner = %v, want ErrNotFound", err)
	}
	if _, err := svc.Update(otherID, note.ID, &dto.NoteRequest{Content: strPtr("x")}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update by non-owner = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(otherID, note.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete by non-owner = %v, want ErrNotFound", err)
	}
}

func TestNoteDelete(t *testing.T) {
	svc, ownerID, _ := newNoteFixture(t)

	note, err := svc.Create(ownerID, &dto.NoteRequest{
		Title:   strPtr("Gone"),
		Content: strPtr("c"),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(ownerID, note.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := svc.Get(ownerID, note.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete = %v, want ErrNotFound", err)
	}
}
