package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fitpulse/gym-api/internal/models"
	"github.com/fitpulse/gym-api/internal/store"
	"github.com/fitpulse/gym-api/internal/utils"
)

type ForumHandler struct {
	store serviceStore
}

func NewForumHandler(store serviceStore) *ForumHandler {
	return &ForumHandler{store: store}
}

// GET /forum?page=&limit=
func (h *ForumHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := store.NormalizePage(q.Get("page"), q.Get("limit"))
	if err != nil {
		if errors.Is(err, utils.ErrInvalidPageSize) {
			utils.WriteJSONResponse(w, http.StatusBadRequest, false, "limit must be greater than 0", nil, nil)
			return
		}
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "invalid pagination", nil, err.Error())
		return
	}

	posts, total, err := h.store.ListForumPosts(r.Context(), page)
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching posts", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", models.PagedData{
		Data:       posts,
		Pagination: page.Pagination(total),
	}, nil)
}

// POST /forum
func (h *ForumHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		AuthorName  string `json:"authorName"`
		AuthorRole  string `json:"authorRole"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "Invalid request body", nil, err.Error())
		return
	}
	if req.Title == "" {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "title is required", nil, nil)
		return
	}
	p := &models.ForumPost{
		Title:       req.Title,
		Description: req.Description,
		AuthorName:  req.AuthorName,
		AuthorRole:  req.AuthorRole,
	}
	if err := h.store.CreateForumPost(r.Context(), p); err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error creating post", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, true, "post created", map[string]interface{}{
		"insertedId": p.ID,
	}, nil)
}

// GET /latest/forum: first six posts.
func (h *ForumHandler) LatestPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.store.LatestForumPosts(r.Context(), 6)
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error fetching posts", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", posts, nil)
}

// PATCH /posts/{postId}/upvote
func (h *ForumHandler) Upvote(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, store.VoteUp)
}

// PATCH /posts/{postId}/downvote
func (h *ForumHandler) Downvote(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, store.VoteDown)
}

func (h *ForumHandler) vote(w http.ResponseWriter, r *http.Request, dir store.VoteDirection) {
	postID := chi.URLParam(r, "postId")
	if postID == "" {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "missing post id", nil, nil)
		return
	}
	post, err := h.store.VotePost(r.Context(), postID, dir)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.WriteJSONResponse(w, http.StatusNotFound, false, "post not found", nil, nil)
			return
		}
		utils.WriteJSONResponse(w, http.StatusInternalServerError, false, "error updating votes", nil, err.Error())
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", post, nil)
}
