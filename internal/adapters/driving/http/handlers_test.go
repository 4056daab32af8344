package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/docassist-labs/docassist-core/internal/core/domain"
	"github.com/docassist-labs/docassist-core/internal/core/ports/driving"
)

// Mock services for testing

type mockAuthService struct {
	authenticateFn  func(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
	validateTokenFn func(ctx context.Context, token string) (*domain.AuthContext, error)
	refreshTokenFn  func(ctx context.Context, req domain.RefreshRequest) (*domain.LoginResponse, error)
	logoutFn        func(ctx context.Context, token string) error
}

func (m *mockAuthService) Authenticate(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) ValidateToken(ctx context.Context, token string) (*domain.AuthContext, error) {
	if m.validateTokenFn != nil {
		return m.validateTokenFn(ctx, token)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) RefreshToken(ctx context.Context, req domain.RefreshRequest) (*domain.LoginResponse, error) {
	if m.refreshTokenFn != nil {
		return m.refreshTokenFn(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx, token)
	}
	return nil
}

func (m *mockAuthService) LogoutAll(ctx context.Context, userID string) error {
	return nil
}

type mockUserService struct {
	signupFn func(ctx context.Context, req domain.SignupRequest) (*domain.UserSummary, error)
	getFn    func(ctx context.Context, id string) (*domain.User, error)
}

func (m *mockUserService) Signup(ctx context.Context, req domain.SignupRequest) (*domain.UserSummary, error) {
	if m.signupFn != nil {
		return m.signupFn(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserService) Get(ctx context.Context, id string) (*domain.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, errors.New("not implemented")
}

type mockIngestionService struct {
	ingestFn  func(ctx context.Context, ownerID string, req driving.IngestRequest) (*driving.IngestResponse, error)
	replaceFn func(ctx context.Context, ownerID, documentID string, req driving.IngestRequest) (*driving.IngestResponse, error)
}

func (m *mockIngestionService) Ingest(ctx context.Context, ownerID string, req driving.IngestRequest) (*driving.IngestResponse, error) {
	if m.ingestFn != nil {
		return m.ingestFn(ctx, ownerID, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockIngestionService) Replace(ctx context.Context, ownerID, documentID string, req driving.IngestRequest) (*driving.IngestResponse, error) {
	if m.replaceFn != nil {
		return m.replaceFn(ctx, ownerID, documentID, req)
	}
	return nil, errors.New("not implemented")
}

type mockDocumentService struct {
	getFn    func(ctx context.Context, ownerID, documentID string) (*domain.Document, error)
	listFn   func(ctx context.Context, ownerID string) ([]*domain.DocumentSummary, error)
	deleteFn func(ctx context.Context, ownerID, documentID string) error
}

func (m *mockDocumentService) Get(ctx context.Context, ownerID, documentID string) (*domain.Document, error) {
	if m.getFn != nil {
		return m.getFn(ctx, ownerID, documentID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockDocumentService) List(ctx context.Context, ownerID string) ([]*domain.DocumentSummary, error) {
	if m.listFn != nil {
		return m.listFn(ctx, ownerID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockDocumentService) Delete(ctx context.Context, ownerID, documentID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, ownerID, documentID)
	}
	return errors.New("not implemented")
}

func (m *mockDocumentService) Count(ctx context.Context, ownerID string) (int, error) {
	return 0, errors.New("not implemented")
}

type mockSuggestionService struct {
	suggestFn func(ctx context.Context, ownerID, query string, opts domain.SuggestOptions) (*domain.SuggestResult, error)
}

func (m *mockSuggestionService) Suggest(ctx context.Context, ownerID, query string, opts domain.SuggestOptions) (*domain.SuggestResult, error) {
	if m.suggestFn != nil {
		return m.suggestFn(ctx, ownerID, query, opts)
	}
	return nil, errors.New("not implemented")
}

// withAuth injects an auth context the way the middleware would
func withAuth(r *http.Request, userID string) *http.Request {
	authCtx := &domain.AuthContext{
		UserID:    userID,
		Email:     userID + "@example.com",
		SessionID: "session-1",
	}
	ctx := context.WithValue(r.Context(), authContextKey, authCtx)
	return r.WithContext(ctx)
}

func TestHealthHandler(t *testing.T) {
	server := &Server{version: "test"}

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()

	server.handleHealth(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["status"] != "ok" {
		t.Errorf("expected status 'ok', got %s", response["status"])
	}
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestReadyHandler(t *testing.T) {
	server := &Server{version: "test"}

	req := httptest.NewRequest("GET", "/ready", nil)
	rr := httptest.NewRecorder()

	server.handleReady(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["status"] != "ready" {
		t.Errorf("expected status 'ready', got %s", response["status"])
	}
}

func TestReadyHandler_DatabaseDown(t *testing.T) {
	server := &Server{
		version: "test",
		db: pingerFunc(func(ctx context.Context) error {
			return errors.New("connection refused")
		}),
	}

	req := httptest.NewRequest("GET", "/ready", nil)
	rr := httptest.NewRecorder()

	server.handleReady(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", rr.Code)
	}
}

func TestVersionHandler(t *testing.T) {
	server := &Server{version: "1.2.3"}

	req := httptest.NewRequest("GET", "/version", nil)
	rr := httptest.NewRecorder()

	server.handleVersion(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["version"] != "1.2.3" {
		t.Errorf("expected version '1.2.3', got %s", response["version"])
	}
}

func TestSignupHandler_Success(t *testing.T) {
	server := &Server{
		userService: &mockUserService{
			signupFn: func(ctx context.Context, req domain.SignupRequest) (*domain.UserSummary, error) {
				return &domain.UserSummary{
					ID:     "user-1",
					Email:  req.Email,
					Name:   req.Name,
					Active: true,
				}, nil
			},
		},
	}

	body, _ := json.Marshal(domain.SignupRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	req := httptest.NewRequest("POST", "/api/v1/auth/signup", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	server.handleSignup(rr, req)

	if rr.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", rr.Code)
	}

	var summary domain.UserSummary
	if err := json.NewDecoder(rr.Body).Decode(&summary); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if summary.Email != "alice@example.com" {
		t.Errorf("expected email alice@example.com, got %s", summary.Email)
	}
}

func TestSignupHandler_Duplicate(t *testing.T) {
	server := &Server{
		userService: &mockUserService{
			signupFn: func(ctx context.Context, req domain.SignupRequest) (*domain.UserSummary, error) {
				return nil, domain.ErrAlreadyExists
			},
		},
	}

	body, _ := json.Marshal(domain.SignupRequest{
		Name: "Alice", Email: "alice@example.com", Password: "secret123",
	})
	req := httptest.NewRequest("POST", "/api/v1/auth/signup", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	server.handleSignup(rr, req)

	if rr.Code != http.StatusConflict {
		t.Errorf("expected status 409, got %d", rr.Code)
	}
}

func TestSignupHandler_InvalidBody(t *testing.T) {
	server := &Server{userService: &mockUserService{}}

	req := httptest.NewRequest("POST", "/api/v1/auth/signup", bytes.NewReader([]byte("not json")))
	rr := httptest.NewRecorder()

	server.handleSignup(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rr.Code)
	}
}

func TestLoginHandler_Success(t *testing.T) {
	server := &Server{
		authService: &mockAuthService{
			authenticateFn: func(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
				return &domain.LoginResponse{
					Token:        "jwt-token",
					RefreshToken: "refresh-token",
					ExpiresAt:    time.Now().Add(time.Hour),
					User:         &domain.UserSummary{ID: "user-1", Email: req.Email},
				}, nil
			},
		},
	}

	body, _ := json.Marshal(domain.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	server.handleLogin(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}

	var resp domain.LoginResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Token != "jwt-token" {
		t.Errorf("expected token in response, got %q", resp.Token)
	}
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	server := &Server{
		authService: &mockAuthService{
			authenticateFn: func(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
				return nil, domain.ErrInvalidCredentials
			},
		},
	}

	body, _ := json.Marshal(domain.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	server.handleLogin(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rr.Code)
	}
}

func TestLoginHandler_DisabledAccount(t *testing.T) {
	server := &Server{
		authService: &mockAuthService{
			authenticateFn: func(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
				return nil, domain.ErrUnauthorized
			},
		},
	}

	body, _ := json.Marshal(domain.LoginRequest{Email: "alice@example.com", Password: "secret123"})
	req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	server.handleLogin(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rr.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["error"] != "account disabled" {
		t.Errorf("expected 'account disabled', got %q", resp["error"])
	}
}

func TestRefreshHandler_Invalid(t *testing.T) {
	server := &Server{
		authService: &mockAuthService{
			refreshTokenFn: func(ctx context.Context, req domain.RefreshRequest) (*domain.LoginResponse, error) {
				return nil, domain.ErrTokenInvalid
			},
		},
	}

	body, _ := json.Marshal(domain.RefreshRequest{RefreshToken: "spent"})
	req := httptest.NewRequest("POST", "/api/v1/auth/refresh", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	server.handleRefresh(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rr.Code)
	}
}

func TestLogoutHandler(t *testing.T) {
	var loggedOut string
	server := &Server{
		authService: &mockAuthService{
			logoutFn: func(ctx context.Context, token string) error {
				loggedOut = token
				return nil
			},
		},
	}

	req := httptest.NewRequest("POST", "/api/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rr := httptest.NewRecorder()

	server.handleLogout(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
	if loggedOut != "some-token" {
		t.Errorf("expected logout with bearer token, got %q", loggedOut)
	}
}

func TestGetMeHandler(t *testing.T) {
	server := &Server{
		userService: &mockUserService{
			getFn: func(ctx context.Context, id string) (*domain.User, error) {
				return &domain.User{
					ID:           id,
					Email:        "alice@example.com",
					PasswordHash: "hash",
					Name:         "Alice",
					Active:       true,
				}, nil
			},
		},
	}

	req := withAuth(httptest.NewRequest("GET", "/api/v1/me", nil), "user-1")
	rr := httptest.NewRecorder()

	server.handleGetMe(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}

	var summary domain.UserSummary
	if err := json.NewDecoder(rr.Body).Decode(&summary); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if summary.ID != "user-1" {
		t.Errorf("expected user-1, got %s", summary.ID)
	}

	// Password hash must never leak through the summary
	if bytes.Contains(rr.Body.Bytes(), []byte("hash")) {
		t.Error("response must not contain the password hash")
	}
}

func TestGetMeHandler_NoAuthContext(t *testing.T) {
	server := &Server{userService: &mockUserService{}}

	req := httptest.NewRequest("GET", "/api/v1/me", nil)
	rr := httptest.NewRecorder()

	server.handleGetMe(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rr.Code)
	}
}

func TestIngestHandler_Success(t *testing.T) {
	var gotOwner string
	server := &Server{
		ingestionService: &mockIngestionService{
			ingestFn: func(ctx context.Context, ownerID string, req driving.IngestRequest) (*driving.IngestResponse, error) {
				gotOwner = ownerID
				return &driving.IngestResponse{DocumentID: "doc-1", ChunkCount: 3}, nil
			},
		},
	}

	body, _ := json.Marshal(driving.IngestRequest{
		Name:    "notes.txt",
		Content: "Some text to ingest.",
	})
	req := withAuth(httptest.NewRequest("POST", "/api/v1/documents", bytes.NewReader(body)), "user-1")
	rr := httptest.NewRecorder()

	server.handleIngestDocument(rr, req)

	if rr.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", rr.Code)
	}
	if gotOwner != "user-1" {
		t.Errorf("expected owner from auth context, got %q", gotOwner)
	}

	var resp driving.IngestResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.DocumentID != "doc-1" || resp.ChunkCount != 3 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestIngestHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest},
		{"unsupported format", domain.ErrUnsupportedFormat, http.StatusUnsupportedMediaType},
		{"embedding failed", domain.ErrEmbeddingFailed, http.StatusBadGateway},
		{"duplicate", domain.ErrDuplicateDocument, http.StatusConflict},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := &Server{
				ingestionService: &mockIngestionService{
					ingestFn: func(ctx context.Context, ownerID string, req driving.IngestRequest) (*driving.IngestResponse, error) {
						return nil, tc.err
					},
				},
			}

			body, _ := json.Marshal(driving.IngestRequest{Name: "a.txt", Content: "x"})
			req := withAuth(httptest.NewRequest("POST", "/api/v1/documents", bytes.NewReader(body)), "user-1")
			rr := httptest.NewRecorder()

			server.handleIngestDocument(rr, req)

			if rr.Code != tc.wantStatus {
				t.Errorf("expected status %d, got %d", tc.wantStatus, rr.Code)
			}
		})
	}
}

func TestListDocumentsHandler(t *testing.T) {
	server := &Server{
		documentService: &mockDocumentService{
			listFn: func(ctx context.Context, ownerID string) ([]*domain.DocumentSummary, error) {
				return []*domain.DocumentSummary{
					{ID: "doc-1", Name: "a.txt"},
					{ID: "doc-2", Name: "b.txt"},
				}, nil
			},
		},
	}

	req := withAuth(httptest.NewRequest("GET", "/api/v1/documents", nil), "user-1")
	rr := httptest.NewRecorder()

	server.handleListDocuments(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}

	var summaries []*domain.DocumentSummary
	if err := json.NewDecoder(rr.Body).Decode(&summaries); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(summaries) != 2 {
		t.Errorf("expected 2 documents, got %d", len(summaries))
	}
}

func TestGetDocumentHandler_NotFound(t *testing.T) {
	server := &Server{
		documentService: &mockDocumentService{
			getFn: func(ctx context.Context, ownerID, documentID string) (*domain.Document, error) {
				return nil, domain.ErrNotFound
			},
		},
	}

	req := withAuth(httptest.NewRequest("GET", "/api/v1/documents/missing", nil), "user-1")
	req.SetPathValue("id", "missing")
	rr := httptest.NewRecorder()

	server.handleGetDocument(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rr.Code)
	}
}

func TestReplaceDocumentHandler_Success(t *testing.T) {
	var gotDocID string
	server := &Server{
		ingestionService: &mockIngestionService{
			replaceFn: func(ctx context.Context, ownerID, documentID string, req driving.IngestRequest) (*driving.IngestResponse, error) {
				gotDocID = documentID
				return &driving.IngestResponse{DocumentID: documentID, ChunkCount: 1}, nil
			},
		},
	}

	body, _ := json.Marshal(driving.IngestRequest{Name: "a.txt", Content: "New content."})
	req := withAuth(httptest.NewRequest("PUT", "/api/v1/documents/doc-1", bytes.NewReader(body)), "user-1")
	req.SetPathValue("id", "doc-1")
	rr := httptest.NewRecorder()

	server.handleReplaceDocument(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
	if gotDocID != "doc-1" {
		t.Errorf("expected document id from path, got %q", gotDocID)
	}
}

func TestDeleteDocumentHandler(t *testing.T) {
	server := &Server{
		documentService: &mockDocumentService{
			deleteFn: func(ctx context.Context, ownerID, documentID string) error {
				return nil
			},
		},
	}

	req := withAuth(httptest.NewRequest("DELETE", "/api/v1/documents/doc-1", nil), "user-1")
	req.SetPathValue("id", "doc-1")
	rr := httptest.NewRecorder()

	server.handleDeleteDocument(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
}

func TestDeleteDocumentHandler_NotFound(t *testing.T) {
	server := &Server{
		documentService: &mockDocumentService{
			deleteFn: func(ctx context.Context, ownerID, documentID string) error {
				return domain.ErrNotFound
			},
		},
	}

	req := withAuth(httptest.NewRequest("DELETE", "/api/v1/documents/missing", nil), "user-1")
	req.SetPathValue("id", "missing")
	rr := httptest.NewRecorder()

	server.handleDeleteDocument(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rr.Code)
	}
}

func TestSuggestHandler_Success(t *testing.T) {
	server := &Server{
		suggestionService: &mockSuggestionService{
			suggestFn: func(ctx context.Context, ownerID, query string, opts domain.SuggestOptions) (*domain.SuggestResult, error) {
				return &domain.SuggestResult{
					Query: query,
					Suggestions: []*domain.Suggestion{
						{DocumentName: "a.txt", Text: "Relevant passage.", Similarity: 0.91},
					},
					Took: 1500 * time.Microsecond,
				}, nil
			},
		},
	}

	body, _ := json.Marshal(SuggestRequest{Query: "offsite notes"})
	req := withAuth(httptest.NewRequest("POST", "/api/v1/suggestions", bytes.NewReader(body)), "user-1")
	rr := httptest.NewRecorder()

	server.handleSuggest(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}

	var result struct {
		Query       string `json:"query"`
		Suggestions []struct {
			Filename       string  `json:"filename"`
			ContentSnippet string  `json:"content_snippet"`
			Similarity     float64 `json:"similarity"`
		} `json:"suggestions"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Query != "offsite notes" {
		t.Errorf("expected query echoed back, got %q", result.Query)
	}
	if len(result.Suggestions) != 1 || result.Suggestions[0].Filename != "a.txt" {
		t.Errorf("unexpected suggestions: %+v", result.Suggestions)
	}
}

func TestSuggestHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest, "query is required"},
		{"no documents", domain.ErrNoDocuments, http.StatusNotFound, "no documents uploaded yet"},
		{"no match", domain.ErrNoMatch, http.StatusNotFound, "no relevant content found"},
		{"embedding failed", domain.ErrEmbeddingFailed, http.StatusBadGateway, "embedding service unavailable"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := &Server{
				suggestionService: &mockSuggestionService{
					suggestFn: func(ctx context.Context, ownerID, query string, opts domain.SuggestOptions) (*domain.SuggestResult, error) {
						return nil, tc.err
					},
				},
			}

			body, _ := json.Marshal(SuggestRequest{Query: "anything"})
			req := withAuth(httptest.NewRequest("POST", "/api/v1/suggestions", bytes.NewReader(body)), "user-1")
			rr := httptest.NewRecorder()

			server.handleSuggest(rr, req)

			if rr.Code != tc.wantStatus {
				t.Errorf("expected status %d, got %d", tc.wantStatus, rr.Code)
			}

			var resp map[string]string
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp["error"] != tc.wantError {
				t.Errorf("expected error %q, got %q", tc.wantError, resp["error"])
			}
		})
	}
}

func TestSuggestHandler_PassesOptions(t *testing.T) {
	var gotOpts domain.SuggestOptions
	server := &Server{
		suggestionService: &mockSuggestionService{
			suggestFn: func(ctx context.Context, ownerID, query string, opts domain.SuggestOptions) (*domain.SuggestResult, error) {
				gotOpts = opts
				return &domain.SuggestResult{Query: query}, nil
			},
		},
	}

	body, _ := json.Marshal(SuggestRequest{
		Query:   "anything",
		Options: domain.SuggestOptions{Threshold: 0.8, MaxResults: 2, MinResults: 1},
	})
	req := withAuth(httptest.NewRequest("POST", "/api/v1/suggestions", bytes.NewReader(body)), "user-1")
	rr := httptest.NewRecorder()

	server.handleSuggest(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
	if gotOpts.Threshold != 0.8 || gotOpts.MaxResults != 2 {
		t.Errorf("expected options forwarded, got %+v", gotOpts)
	}
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	writeJSON(rr, http.StatusTeapot, map[string]string{"k": "v"})

	if rr.Code != http.StatusTeapot {
		t.Errorf("expected status 418, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, http.StatusBadRequest, "bad input")

	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["error"] != "bad input" {
		t.Errorf("expected error message, got %q", resp["error"])
	}
}
