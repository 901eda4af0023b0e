package group

import (
	"context"
	"time"
)

// Badge names. Once earned a badge is never revoked.
const (
	BadgeWeeklyMemories = "7-days-of-memories"
	BadgeTwentyMemories = "20-memories"
	BadgeAnniversary    = "one-year-anniversary"
	BadgeGroupLikes10K  = "10k-group-likes"
	BadgeMemoryLikes10K = "10k-memory-likes"
)

// Badge thresholds
const (
	weeklyPostTarget = 7
	weeklyWindowDays = 7
	volumeTarget     = 20
	anniversaryDays  = 365
	likeTarget       = 10000
)

// RefreshBadges evaluates all badge predicates for the group and persists the
// badge set in a single write when anything newly fires. The evaluation is
// idempotent: badges already present are never re-added or removed. Callers on
// the read paths invoke this before serializing a group.
func (s *Service) RefreshBadges(ctx context.Context, g *Group) error {
	now := time.Now()
	var earned []string

	if !g.HasBadge(BadgeWeeklyMemories) {
		since := now.AddDate(0, 0, -weeklyWindowDays)
		recent, err := s.store.CountPostsSince(ctx, g.ID, since)
		if err != nil {
			return err
		}
		if recent >= weeklyPostTarget {
			earned = append(earned, BadgeWeeklyMemories)
		}
	}

	if !g.HasBadge(BadgeTwentyMemories) {
		total, err := s.store.CountPosts(ctx, g.ID)
		if err != nil {
			return err
		}
		if total >= volumeTarget {
			earned = append(earned, BadgeTwentyMemories)
		}
	}

	if !g.HasBadge(BadgeAnniversary) {
		if now.Sub(g.CreatedAt) >= anniversaryDays*24*time.Hour {
			earned = append(earned, BadgeAnniversary)
		}
	}

	if !g.HasBadge(BadgeGroupLikes10K) && g.LikeCount >= likeTarget {
		earned = append(earned, BadgeGroupLikes10K)
	}

	if !g.HasBadge(BadgeMemoryLikes10K) {
		popular, err := s.store.HasPostWithLikes(ctx, g.ID, likeTarget)
		if err != nil {
			return err
		}
		if popular {
			earned = append(earned, BadgeMemoryLikes10K)
		}
	}

	if len(earned) == 0 {
		return nil
	}

	g.Badges = append(g.Badges, earned...)
	return s.store.UpdateBadges(ctx, g.ID, g.Badges)
}
