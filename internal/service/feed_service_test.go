package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestFeedService_GlobalFeed_FiltersAndOrders(t *testing.T) {
	env := newTestEnv()
	env.addUser("user-1", "alice")

	env.addPost("post-old", "user-1", -3*time.Hour, true)
	env.addPost("post-new", "user-1", -1*time.Hour, true)
	env.addPost("post-future", "user-1", time.Hour, true)
	env.addPost("post-draft", "user-1", -2*time.Hour, false)

	page, err := env.services.Feed.GlobalFeed(context.Background(), 1)
	if err != nil {
		t.Fatalf("GlobalFeed failed: %v", err)
	}

	if len(page.Posts) != 2 {
		t.Fatalf("expected 2 visible posts, got %d", len(page.Posts))
	}
	if page.Posts[0].ID != "post-new" || page.Posts[1].ID != "post-old" {
		t.Errorf("expected newest first, got [%s, %s]", page.Posts[0].ID, page.Posts[1].ID)
	}
	if page.HasNext {
		t.Error("expected no next page")
	}
}

func TestFeedService_GlobalFeed_TieBreakOnID(t *testing.T) {
	env := newTestEnv()
	env.addUser("user-1", "alice")

	// Same publication instant; the higher id wins the tie
	env.addPost("post-a", "user-1", -time.Hour, true)
	env.addPost("post-b", "user-1", -time.Hour, true)

	page, err := env.services.Feed.GlobalFeed(context.Background(), 1)
	if err != nil {
		t.Fatalf("GlobalFeed failed: %v", err)
	}
	if len(page.Posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(page.Posts))
	}
	if page.Posts[0].ID != "post-b" || page.Posts[1].ID != "post-a" {
		t.Errorf("expected id-descending tie-break, got [%s, %s]", page.Posts[0].ID, page.Posts[1].ID)
	}
}

func TestFeedService_GlobalFeed_Pagination(t *testing.T) {
	env := newTestEnv()
	env.addUser("user-1", "alice")

	for i := 0; i < 25; i++ {
		env.addPost(fmt.Sprintf("post-%02d", i), "user-1", -time.Duration(i+1)*time.Minute, true)
	}

	page1, err := env.services.Feed.GlobalFeed(context.Background(), 1)
	if err != nil {
		t.Fatalf("GlobalFeed failed: %v", err)
	}
	if len(page1.Posts) != 10 {
		t.Errorf("expected 10 posts on page 1, got %d", len(page1.Posts))
	}
	if !page1.HasNext {
		t.Error("page 1 of 25 should have a next page")
	}

	page3, err := env.services.Feed.GlobalFeed(context.Background(), 3)
	if err != nil {
		t.Fatalf("GlobalFeed failed: %v", err)
	}
	if len(page3.Posts) != 5 {
		t.Errorf("expected 5 posts on page 3, got %d", len(page3.Posts))
	}
	if page3.HasNext {
		t.Error("last page should not have a next page")
	}

	// Pages below one clamp to the first page
	clamped, err := env.services.Feed.GlobalFeed(context.Background(), 0)
	if err != nil {
		t.Fatalf("GlobalFeed failed: %v", err)
	}
	if clamped.Page != 1 {
		t.Errorf("expected page clamped to 1, got %d", clamped.Page)
	}
	if len(clamped.Posts) != 10 {
		t.Errorf("expected 10 posts on clamped page, got %d", len(clamped.Posts))
	}
}

func TestFeedService_GlobalFeed_CommentCount(t *testing.T) {
	env := newTestEnv()
	env.addUser("user-1", "alice")
	env.addPost("post-1", "user-1", -time.Hour, true)
	env.addComment("comment-1", "post-1", "user-1", -30*time.Minute)
	env.addComment("comment-2", "post-1", "user-1", -20*time.Minute)

	page, err := env.services.Feed.GlobalFeed(context.Background(), 1)
	if err != nil {
		t.Fatalf("GlobalFeed failed: %v", err)
	}
	if len(page.Posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(page.Posts))
	}
	if page.Posts[0].CommentCount != 2 {
		t.Errorf("expected comment_count 2, got %d", page.Posts[0].CommentCount)
	}
}

func TestFeedService_CategoryFeed(t *testing.T) {
	env := newTestEnv()
	env.addUser("user-1", "alice")
	travel := env.addCategory("cat-travel", "travel", true)
	hidden := env.addCategory("cat-hidden", "hidden", false)

	inTravel := env.addPost("post-travel", "user-1", -time.Hour, true)
	attachCategory(inTravel, travel)
	inHidden := env.addPost("post-hidden", "user-1", -time.Hour, true)
	attachCategory(inHidden, hidden)
	env.addPost("post-uncategorized", "user-1", -time.Hour, true)

	page, err := env.services.Feed.CategoryFeed(context.Background(), "travel", 1)
	if err != nil {
		t.Fatalf("CategoryFeed failed: %v", err)
	}
	if page == nil {
		t.Fatal("expected a page for a published category")
	}
	if len(page.Posts) != 1 || page.Posts[0].ID != "post-travel" {
		t.Fatalf("expected only the travel post, got %d posts", len(page.Posts))
	}

	// Unpublished category makes the whole listing not found
	page, err = env.services.Feed.CategoryFeed(context.Background(), "hidden", 1)
	if err != nil {
		t.Fatalf("CategoryFeed failed: %v", err)
	}
	if page != nil {
		t.Error("unpublished category should resolve to not found")
	}

	// Unknown slug likewise
	page, err = env.services.Feed.CategoryFeed(context.Background(), "no-such-slug", 1)
	if err != nil {
		t.Fatalf("CategoryFeed failed: %v", err)
	}
	if page != nil {
		t.Error("unknown category should resolve to not found")
	}
}

func TestFeedService_ProfileFeed_SelfSeesEverything(t *testing.T) {
	env := newTestEnv()
	env.addUser("user-1", "alice")
	env.addUser("user-2", "bob")

	env.addPost("post-visible", "user-1", -time.Hour, true)
	env.addPost("post-draft", "user-1", -time.Hour, false)
	env.addPost("post-future", "user-1", time.Hour, true)
	env.addPost("post-other", "user-2", -time.Hour, true)

	// The owner sees drafts and future-dated posts
	own, err := env.services.Feed.ProfileFeed(context.Background(), "alice", "user-1", 1)
	if err != nil {
		t.Fatalf("ProfileFeed failed: %v", err)
	}
	if len(own.Posts) != 3 {
		t.Errorf("owner should see all 3 posts, got %d", len(own.Posts))
	}

	// Everyone else gets the public subset
	public, err := env.services.Feed.ProfileFeed(context.Background(), "alice", "user-2", 1)
	if err != nil {
		t.Fatalf("ProfileFeed failed: %v", err)
	}
	if len(public.Posts) != 1 || public.Posts[0].ID != "post-visible" {
		t.Errorf("other viewer should see only the visible post, got %d posts", len(public.Posts))
	}

	// Anonymous the same
	anon, err := env.services.Feed.ProfileFeed(context.Background(), "alice", "", 1)
	if err != nil {
		t.Fatalf("ProfileFeed failed: %v", err)
	}
	if len(anon.Posts) != 1 {
		t.Errorf("anonymous viewer should see only the visible post, got %d posts", len(anon.Posts))
	}

	// The public view is a subset of the owner's view
	ownIDs := make(map[string]bool)
	for _, p := range own.Posts {
		ownIDs[p.ID] = true
	}
	for _, p := range public.Posts {
		if !ownIDs[p.ID] {
			t.Errorf("post %s visible publicly but missing from owner view", p.ID)
		}
	}
}

func TestFeedService_ProfileFeed_UnknownUser(t *testing.T) {
	env := newTestEnv()

	page, err := env.services.Feed.ProfileFeed(context.Background(), "nobody", "", 1)
	if err != nil {
		t.Fatalf("ProfileFeed failed: %v", err)
	}
	if page != nil {
		t.Error("unknown profile should resolve to not found")
	}
}

func TestFeedService_PostDetail(t *testing.T) {
	env := newTestEnv()
	env.addUser("user-1", "alice")
	env.addUser("user-2", "bob")
	env.addPost("post-1", "user-1", -time.Hour, true)
	env.addComment("comment-late", "post-1", "user-2", -10*time.Minute)
	env.addComment("comment-early", "post-1", "user-2", -50*time.Minute)

	detail, err := env.services.Feed.PostDetail(context.Background(), "post-1", "")
	if err != nil {
		t.Fatalf("PostDetail failed: %v", err)
	}
	if detail == nil {
		t.Fatal("expected detail for a visible post")
	}
	if detail.Post.ID != "post-1" {
		t.Errorf("expected post-1, got %s", detail.Post.ID)
	}
	if len(detail.Comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(detail.Comments))
	}
	if detail.Comments[0].ID != "comment-early" || detail.Comments[1].ID != "comment-late" {
		t.Errorf("expected comments oldest first, got [%s, %s]", detail.Comments[0].ID, detail.Comments[1].ID)
	}
	if detail.Comments[0].AuthorUsername != "bob" {
		t.Errorf("expected comment author username bob, got %q", detail.Comments[0].AuthorUsername)
	}
	if detail.CommentForm == nil {
		t.Fatal("expected a blank comment form")
	}
	if detail.CommentForm.Action != "/v1/posts/post-1/comments" {
		t.Errorf("unexpected comment form action %q", detail.CommentForm.Action)
	}
	if detail.Post.CommentCount != 2 {
		t.Errorf("expected comment_count 2, got %d", detail.Post.CommentCount)
	}
}

func TestFeedService_Categories_PublishedOnly(t *testing.T) {
	env := newTestEnv()
	env.addCategory("cat-1", "travel", true)
	env.addCategory("cat-2", "hidden", false)

	categories, err := env.services.Feed.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}
	if len(categories) != 1 || categories[0].Slug != "travel" {
		t.Errorf("expected only the published category, got %+v", categories)
	}

	locations, err := env.services.Feed.Locations(context.Background())
	if err != nil {
		t.Fatalf("Locations failed: %v", err)
	}
	if len(locations) != 0 {
		t.Errorf("expected no locations, got %d", len(locations))
	}
}

func TestFeedService_PostDetail_VisibilityGate(t *testing.T) {
	env := newTestEnv()
	env.addUser("user-1", "alice")
	env.addPost("post-draft", "user-1", -time.Hour, false)

	// Hidden from the public and from other users
	for _, viewerID := range []string{"", "user-2"} {
		detail, err := env.services.Feed.PostDetail(context.Background(), "post-draft", viewerID)
		if err != nil {
			t.Fatalf("PostDetail failed: %v", err)
		}
		if detail != nil {
			t.Errorf("draft should be not found for viewer %q", viewerID)
		}
	}

	// The author still reaches it
	detail, err := env.services.Feed.PostDetail(context.Background(), "post-draft", "user-1")
	if err != nil {
		t.Fatalf("PostDetail failed: %v", err)
	}
	if detail == nil {
		t.Error("author should see their own draft")
	}

	// Missing post
	detail, err = env.services.Feed.PostDetail(context.Background(), "no-such-post", "user-1")
	if err != nil {
		t.Fatalf("PostDetail failed: %v", err)
	}
	if detail != nil {
		t.Error("missing post should resolve to not found")
	}
}
