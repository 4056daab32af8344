package http

import (
	"encoding/json"
	"net/http"

	"github.com/docassist-labs/docassist-core/internal/core/domain"
	"github.com/docassist-labs/docassist-core/internal/core/ports/driving"
)

// ErrorResponse represents an API error response
// @Description API error response
type ErrorResponse struct {
	Error string `json:"error" example:"invalid request body"`
}

// StatusResponse represents a simple status response
// @Description Simple status response
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// VersionResponse represents the API version response
// @Description API version response
type VersionResponse struct {
	Version string `json:"version" example:"1.0.0"`
}

// SuggestRequest represents a suggestion query
// @Description Suggestion query over the caller's documents
type SuggestRequest struct {
	Query   string                `json:"query" example:"notes about the offsite"`
	Options domain.SuggestOptions `json:"options,omitempty"`
}

// CountResponse reports a document count
// @Description Document count for the caller
type CountResponse struct {
	Count int `json:"count" example:"3"`
}

// Health endpoints

// handleHealth godoc
// @Summary      Health check
// @Description  Returns the health status of the API
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady godoc
// @Summary      Readiness check
// @Description  Returns readiness, verifying database and cache connectivity
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Failure      503  {object}  ErrorResponse  "A dependency is unavailable"
// @Router       /ready [get]
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
	}
	if s.redisClient != nil {
		if err := s.redisClient.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "cache unavailable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleVersion godoc
// @Summary      Get API version
// @Description  Returns the current API version
// @Tags         Health
// @Produce      json
// @Success      200  {object}  VersionResponse
// @Router       /version [get]
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

// Auth endpoints

// handleSignup godoc
// @Summary      Register account
// @Description  Create a new account with username, email and password
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request  body      domain.SignupRequest  true  "Account details"
// @Success      201      {object}  domain.UserSummary
// @Failure      400      {object}  ErrorResponse  "Invalid request body or missing fields"
// @Failure      409      {object}  ErrorResponse  "Email already registered"
// @Router       /auth/signup [post]
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req domain.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	summary, err := s.userService.Signup(r.Context(), req)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			writeError(w, http.StatusBadRequest, "name, email and password are required")
		case domain.ErrAlreadyExists:
			writeError(w, http.StatusConflict, "email already registered")
		default:
			writeError(w, http.StatusInternalServerError, "signup failed")
		}
		return
	}

	writeJSON(w, http.StatusCreated, summary)
}

// handleLogin godoc
// @Summary      User login
// @Description  Authenticate with email and password to receive a JWT token
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request  body      domain.LoginRequest  true  "Login credentials"
// @Success      200      {object}  domain.LoginResponse
// @Failure      400      {object}  ErrorResponse  "Invalid request body"
// @Failure      401      {object}  ErrorResponse  "Invalid credentials or account disabled"
// @Router       /auth/login [post]
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := s.authService.Authenticate(r.Context(), req)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			writeError(w, http.StatusBadRequest, "email and password are required")
		case domain.ErrInvalidCredentials:
			writeError(w, http.StatusUnauthorized, "invalid credentials")
		case domain.ErrUnauthorized:
			writeError(w, http.StatusUnauthorized, "account disabled")
		default:
			writeError(w, http.StatusInternalServerError, "authentication failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleRefresh godoc
// @Summary      Refresh token
// @Description  Exchange a refresh token for a new JWT token
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request  body      domain.RefreshRequest  true  "Refresh token"
// @Success      200      {object}  domain.LoginResponse
// @Failure      400      {object}  ErrorResponse  "Invalid request body"
// @Failure      401      {object}  ErrorResponse  "Invalid refresh token"
// @Router       /auth/refresh [post]
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req domain.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := s.authService.RefreshToken(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid refresh token")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleLogout godoc
// @Summary      Logout user
// @Description  Invalidate the current session token
// @Tags         Authentication
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  StatusResponse
// @Router       /auth/logout [post]
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r)
	_ = s.authService.Logout(r.Context(), token)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// User endpoints

// handleGetMe godoc
// @Summary      Current user
// @Description  Returns the authenticated user's profile
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.UserSummary
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Router       /me [get]
func (s *Server) handleGetMe(w http.ResponseWriter, r *http.Request) {
	authCtx := GetAuthContext(r.Context())
	if authCtx == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := s.userService.Get(r.Context(), authCtx.UserID)
	if err != nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}

	writeJSON(w, http.StatusOK, user.ToSummary())
}

// Document endpoints

// handleIngestDocument godoc
// @Summary      Ingest document
// @Description  Segment, embed and store a text document for the caller
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      driving.IngestRequest  true  "Document to ingest"
// @Success      201      {object}  driving.IngestResponse
// @Failure      400      {object}  ErrorResponse  "Invalid request body or empty content"
// @Failure      415      {object}  ErrorResponse  "No normaliser for the content type"
// @Failure      502      {object}  ErrorResponse  "Embedding service failure"
// @Router       /documents [post]
func (s *Server) handleIngestDocument(w http.ResponseWriter, r *http.Request) {
	authCtx := GetAuthContext(r.Context())
	if authCtx == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req driving.IngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := s.ingestionService.Ingest(r.Context(), authCtx.UserID, req)
	if err != nil {
		writeIngestError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// handleListDocuments godoc
// @Summary      List documents
// @Description  Returns summaries of all of the caller's documents
// @Tags         Documents
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.DocumentSummary
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Router       /documents [get]
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	authCtx := GetAuthContext(r.Context())
	if authCtx == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	summaries, err := s.documentService.List(r.Context(), authCtx.UserID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list documents")
		return
	}

	writeJSON(w, http.StatusOK, summaries)
}

// handleGetDocument godoc
// @Summary      Get document
// @Description  Returns one of the caller's documents with its chunks
// @Tags         Documents
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Document ID"
// @Success      200  {object}  domain.Document
// @Failure      404  {object}  ErrorResponse  "Document not found"
// @Router       /documents/{id} [get]
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	authCtx := GetAuthContext(r.Context())
	if authCtx == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	doc, err := s.documentService.Get(r.Context(), authCtx.UserID, r.PathValue("id"))
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			writeError(w, http.StatusNotFound, "document not found")
		case domain.ErrInvalidInput:
			writeError(w, http.StatusBadRequest, "document id is required")
		default:
			writeError(w, http.StatusInternalServerError, "failed to get document")
		}
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// handleReplaceDocument godoc
// @Summary      Replace document
// @Description  Re-runs the ingestion pipeline over new content, keeping the document id
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                 true  "Document ID"
// @Param        request  body      driving.IngestRequest  true  "Replacement content"
// @Success      200      {object}  driving.IngestResponse
// @Failure      404      {object}  ErrorResponse  "Document not found"
// @Router       /documents/{id} [put]
func (s *Server) handleReplaceDocument(w http.ResponseWriter, r *http.Request) {
	authCtx := GetAuthContext(r.Context())
	if authCtx == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req driving.IngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := s.ingestionService.Replace(r.Context(), authCtx.UserID, r.PathValue("id"), req)
	if err != nil {
		writeIngestError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleDeleteDocument godoc
// @Summary      Delete document
// @Description  Removes one of the caller's documents and its chunks
// @Tags         Documents
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Document ID"
// @Success      200  {object}  StatusResponse
// @Failure      404  {object}  ErrorResponse  "Document not found"
// @Router       /documents/{id} [delete]
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	authCtx := GetAuthContext(r.Context())
	if authCtx == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	err := s.documentService.Delete(r.Context(), authCtx.UserID, r.PathValue("id"))
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			writeError(w, http.StatusNotFound, "document not found")
		case domain.ErrInvalidInput:
			writeError(w, http.StatusBadRequest, "document id is required")
		default:
			writeError(w, http.StatusInternalServerError, "failed to delete document")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Suggestion endpoint

// handleSuggest godoc
// @Summary      Suggest relevant passages
// @Description  Ranks the caller's document chunks against a free-text query
// @Tags         Suggestions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      SuggestRequest  true  "Query"
// @Success      200      {object}  domain.SuggestResult
// @Failure      400      {object}  ErrorResponse  "Invalid request body or empty query"
// @Failure      404      {object}  ErrorResponse  "No documents, or nothing relevant"
// @Failure      502      {object}  ErrorResponse  "Embedding service failure"
// @Router       /suggestions [post]
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	authCtx := GetAuthContext(r.Context())
	if authCtx == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.suggestionService.Suggest(r.Context(), authCtx.UserID, req.Query, req.Options)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			writeError(w, http.StatusBadRequest, "query is required")
		case domain.ErrNoDocuments:
			writeError(w, http.StatusNotFound, "no documents uploaded yet")
		case domain.ErrNoMatch:
			writeError(w, http.StatusNotFound, "no relevant content found")
		case domain.ErrEmbeddingFailed:
			writeError(w, http.StatusBadGateway, "embedding service unavailable")
		default:
			writeError(w, http.StatusInternalServerError, "suggestion failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// writeIngestError maps ingestion pipeline errors to HTTP statuses
func writeIngestError(w http.ResponseWriter, err error) {
	switch err {
	case domain.ErrInvalidInput:
		writeError(w, http.StatusBadRequest, "title and non-empty content are required")
	case domain.ErrUnsupportedFormat:
		writeError(w, http.StatusUnsupportedMediaType, "unsupported content type")
	case domain.ErrEmbeddingFailed:
		writeError(w, http.StatusBadGateway, "embedding service unavailable")
	case domain.ErrNotFound:
		writeError(w, http.StatusNotFound, "document not found")
	case domain.ErrDuplicateDocument:
		writeError(w, http.StatusConflict, "document already exists")
	default:
		writeError(w, http.StatusInternalServerError, "ingestion failed")
	}
}

// Response helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
