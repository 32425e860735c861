package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/verseworks/poem-service/internal/api/respond"
	"github.com/verseworks/poem-service/internal/services"
)

// CatalogHandler is a thin HTTP transport over the CatalogService.
type CatalogHandler struct {
	svc *services.CatalogService
}

func NewCatalogHandler(svc *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// RecommendedPoems GET /recommended-poems
func (h *CatalogHandler) RecommendedPoems(w http.ResponseWriter, r *http.Request) {
	digest, err := h.svc.RecommendedDigest(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, digest)
}

// GetPoem GET /poems/{id}
func (h *CatalogHandler) GetPoem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.WriteBadRequest(w, "invalid poem id")
		return
	}
	detail, err := h.svc.PoemDetail(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, detail)
}

// GetPoemPreview GET /poem-preview/{id}
func (h *CatalogHandler) GetPoemPreview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.WriteBadRequest(w, "invalid poem id")
		return
	}
	preview, err := h.svc.PoemPreview(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, preview)
}

// ListCategories GET /categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.ListCategories(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, cats)
}

// GetThematicView GET /categories/{slug}
func (h *CatalogHandler) GetThematicView(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.ThematicView(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, view)
}

// ListAuthors GET /authors
func (h *CatalogHandler) ListAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.svc.ListAuthors(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, authors)
}

// GetAuthor GET /authors/{id}
func (h *CatalogHandler) GetAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.WriteBadRequest(w, "invalid author id")
		return
	}
	author, err := h.svc.GetAuthor(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, author)
}

// CreatePoem POST /new-poem
func (h *CatalogHandler) CreatePoem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AuthorID   int    `json:"authorId"`
		Title      string `json:"title"`
		CategoryID int    `json:"categoryId"`
		Content    string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	poem, err := h.svc.CreatePoem(r.Context(), req.Title, req.Content, req.AuthorID, req.CategoryID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, poem)
}

// CreateAuthor POST /new-author
func (h *CatalogHandler) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	author, err := h.svc.CreateAuthor(r.Context(), req.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, author)
}

// CreateCategory POST /new-category
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid JSON")
		return
	}
	cat, err := h.svc.CreateCategory(r.Context(), req.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, cat)
}

func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}
