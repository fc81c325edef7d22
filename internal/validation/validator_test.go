package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/blog-platform-api/internal/models"
)

func TestValidatePost(t *testing.T) {
	tests := []struct {
		name       string
		req        *models.PostRequest
		wantErrors int
		wantFields []string
	}{
		{
			name: "valid post",
			req: &models.PostRequest{
				Title:   "A post",
				Body:    "Some text",
				PubDate: "2024-05-01T12:00:00Z",
			},
			wantErrors: 0,
		},
		{
			name: "missing title",
			req: &models.PostRequest{
				Body:    "Some text",
				PubDate: "2024-05-01T12:00:00Z",
			},
			wantErrors: 1,
			wantFields: []string{"title"},
		},
		{
			name: "whitespace-only title",
			req: &models.PostRequest{
				Title:   "   ",
				Body:    "Some text",
				PubDate: "2024-05-01T12:00:00Z",
			},
			wantErrors: 1,
			wantFields: []string{"title"},
		},
		{
			name: "title too long",
			req: &models.PostRequest{
				Title:   strings.Repeat("x", MaxTitleLength+1),
				Body:    "Some text",
				PubDate: "2024-05-01T12:00:00Z",
			},
			wantErrors: 1,
			wantFields: []string{"title"},
		},
		{
			name: "title at limit is fine",
			req: &models.PostRequest{
				Title:   strings.Repeat("x", MaxTitleLength),
				Body:    "Some text",
				PubDate: "2024-05-01T12:00:00Z",
			},
			wantErrors: 0,
		},
		{
			name: "missing body",
			req: &models.PostRequest{
				Title:   "A post",
				PubDate: "2024-05-01T12:00:00Z",
			},
			wantErrors: 1,
			wantFields: []string{"body"},
		},
		{
			name: "missing pub_date",
			req: &models.PostRequest{
				Title: "A post",
				Body:  "Some text",
			},
			wantErrors: 1,
			wantFields: []string{"pub_date"},
		},
		{
			name: "malformed pub_date",
			req: &models.PostRequest{
				Title:   "A post",
				Body:    "Some text",
				PubDate: "01/05/2024",
			},
			wantErrors: 1,
			wantFields: []string{"pub_date"},
		},
		{
			name:       "everything wrong at once",
			req:        &models.PostRequest{PubDate: "yesterday"},
			wantErrors: 3,
			wantFields: []string{"title", "body", "pub_date"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs, pubDate := ValidatePost(tt.req)
			if len(errs) != tt.wantErrors {
				t.Errorf("expected %d errors, got %d: %+v", tt.wantErrors, len(errs), errs)
			}
			checkFields(t, errs, tt.wantFields)
			if tt.wantErrors == 0 && pubDate.IsZero() {
				t.Error("valid payload should yield a parsed pub_date")
			}
		})
	}
}

func TestValidatePost_ParsesRFC3339(t *testing.T) {
	req := &models.PostRequest{
		Title:   "A post",
		Body:    "Some text",
		PubDate: "2024-05-01T09:30:00+02:00",
	}
	errs, pubDate := ValidatePost(req)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %+v", errs)
	}
	want := time.Date(2024, 5, 1, 7, 30, 0, 0, time.UTC)
	if !pubDate.Equal(want) {
		t.Errorf("parsed %v, want instant %v", pubDate, want)
	}
}

func TestValidateComment(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantErrors int
	}{
		{"valid comment", "looks good", 0},
		{"empty text", "", 1},
		{"whitespace only", "  \n ", 1},
		{"at length limit", strings.Repeat("a", models.MaxCommentLength), 0},
		{"over length limit", strings.Repeat("a", models.MaxCommentLength+1), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateComment(&models.CommentRequest{Text: tt.text})
			if len(errs) != tt.wantErrors {
				t.Errorf("expected %d errors, got %d: %+v", tt.wantErrors, len(errs), errs)
			}
		})
	}
}

func TestValidateRegister(t *testing.T) {
	tests := []struct {
		name       string
		req        *models.RegisterRequest
		wantErrors int
		wantFields []string
	}{
		{
			name: "valid registration",
			req: &models.RegisterRequest{
				Username: "alice_01",
				Email:    "alice@example.com",
				Password: "long-enough",
			},
			wantErrors: 0,
		},
		{
			name: "username too short",
			req: &models.RegisterRequest{
				Username: "al",
				Email:    "alice@example.com",
				Password: "long-enough",
			},
			wantErrors: 1,
			wantFields: []string{"username"},
		},
		{
			name: "username with forbidden characters",
			req: &models.RegisterRequest{
				Username: "alice smith",
				Email:    "alice@example.com",
				Password: "long-enough",
			},
			wantErrors: 1,
			wantFields: []string{"username"},
		},
		{
			name: "bad email",
			req: &models.RegisterRequest{
				Username: "alice",
				Email:    "alice-at-example",
				Password: "long-enough",
			},
			wantErrors: 1,
			wantFields: []string{"email"},
		},
		{
			name: "short password",
			req: &models.RegisterRequest{
				Username: "alice",
				Email:    "alice@example.com",
				Password: "short",
			},
			wantErrors: 1,
			wantFields: []string{"password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateRegister(tt.req)
			if len(errs) != tt.wantErrors {
				t.Errorf("expected %d errors, got %d: %+v", tt.wantErrors, len(errs), errs)
			}
			checkFields(t, errs, tt.wantFields)
		})
	}
}

func TestValidateProfile(t *testing.T) {
	errs := ValidateProfile(&models.ProfileRequest{Username: "alice", Email: "alice@example.com"})
	if len(errs) != 0 {
		t.Errorf("unexpected errors: %+v", errs)
	}

	errs = ValidateProfile(&models.ProfileRequest{})
	if len(errs) != 2 {
		t.Errorf("expected username and email errors, got %+v", errs)
	}
}

func checkFields(t *testing.T, errs []models.FieldError, wantFields []string) {
	t.Helper()
	for _, field := range wantFields {
		found := false
		for _, e := range errs {
			if e.Field == field {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected an error on field %q, got %+v", field, errs)
		}
	}
}
