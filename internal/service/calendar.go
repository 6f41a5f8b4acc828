package service

import (
	"strings"

	"github.com/bagritech/studio-api/internal/models"
)

// FilterAll matches unconditionally on either filter axis.
const FilterAll = "ALL"

// FilterPosts returns the subsequence of posts matching both predicates, in
// source order. It never mutates its input.
func FilterPosts(posts []models.SocialPost, network, status string) []models.SocialPost {
	out := []models.SocialPost{}
	for _, p := range posts {
		if network != FilterAll && string(p.Network) != network {
			continue
		}
		if status != FilterAll && string(p.Status) != status {
			continue
		}
		out = append(out, p)
	}
	return out
}

// MatchDay reports whether a post's free-text day field belongs under the
// given day label: exact equality first, then a case-insensitive containment
// of the label's 3-letter prefix. The fallback tolerates abbreviation and
// casing drift in gateway output ("lundi soir" still lands under "Lundi").
// A post may match more than one label; that looseness is intentional.
func MatchDay(postDay, label string) bool {
	if postDay == label {
		return true
	}
	prefix := strings.ToLower(label)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return strings.Contains(strings.ToLower(postDay), prefix)
}

// GroupByDay buckets posts under each requested day label using MatchDay.
// Every requested label gets a bucket, possibly empty.
func GroupByDay(posts []models.SocialPost, days []string) map[string][]models.SocialPost {
	out := make(map[string][]models.SocialPost, len(days))
	for _, day := range days {
		bucket := []models.SocialPost{}
		for _, p := range posts {
			if MatchDay(p.Day, day) {
				bucket = append(bucket, p)
			}
		}
		out[day] = bucket
	}
	return out
}

// VeilleDigest flattens the veille into the textual context block fed to the
// campaign prompt.
func VeilleDigest(items []models.CompetitiveIntelligence) string {
	parts := make([]string, len(items))
	for i, v := range items {
		parts[i] = v.Institution + ": " + strings.Join(v.Trends, ", ")
	}
	return strings.Join(parts, ". ")
}
