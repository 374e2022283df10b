package cache

import (
	"context"
	"time"
)

// The NGO info record changes rarely and backs the most-hit public endpoint,
// so it gets the longest TTL.
const (
	NGOInfoKey = "ngo_info"
	NGOInfoTTL = 10 * time.Minute
)

// The approved-posts feed only caches its first page; the short TTL bounds
// staleness from out-of-band moderation flips.
const (
	ApprovedPostsKey = "approved_posts:first_page"
	ApprovedPostsTTL = time.Minute
)

// InvalidateNGOInfo drops the cached NGO record after provisioning updates.
func InvalidateNGOInfo(ctx context.Context) {
	Invalidate(ctx, NGOInfoKey)
}

// InvalidateApprovedPosts drops the cached feed page after any post write.
func InvalidateApprovedPosts(ctx context.Context) {
	Invalidate(ctx, ApprovedPostsKey)
}
