package matching

import (
	"testing"

	"mentorlink/internal/domain/user"

	"github.com/google/uuid"
)

func mentee(skills []string, interests string) user.User {
	return user.User{ID: uuid.New(), Role: user.RoleMentee, Skills: skills, Interests: interests}
}

func mentor(skills []string, interests string) user.User {
	return user.User{ID: uuid.New(), Role: user.RoleMentor, Skills: skills, Interests: interests}
}

func TestScore_WeightedOverlap(t *testing.T) {
	viewer := mentee([]string{"JavaScript", "React"}, "ai, web")
	cand := mentor([]string{"React"}, "web, design")

	// skill 1/1, interest 1/2 -> round(100*(0.7 + 0.15)) = 85
	got := Score(viewer, cand, DefaultWeights, nil, nil)
	if got != 85 {
		t.Fatalf("expected score 85, got %d", got)
	}
}

func TestScore_DisjointIsZero(t *testing.T) {
	viewer := mentee([]string{"Go"}, "systems")
	cand := mentor([]string{"Painting"}, "art")

	if got := Score(viewer, cand, DefaultWeights, nil, nil); got != 0 {
		t.Fatalf("expected score 0, got %d", got)
	}
}

func TestScore_IdenticalIsHundred(t *testing.T) {
	viewer := mentee([]string{"Go", "SQL"}, "ai, web")
	cand := mentor([]string{"SQL", "Go"}, "web, ai")

	if got := Score(viewer, cand, DefaultWeights, nil, nil); got != 100 {
		t.Fatalf("expected score 100, got %d", got)
	}
}

func TestScore_EmptyCandidateIsZero(t *testing.T) {
	viewer := mentee([]string{"Go"}, "ai")
	cand := mentor(nil, "")

	if got := Score(viewer, cand, DefaultWeights, nil, nil); got != 0 {
		t.Fatalf("expected score 0 for empty candidate, got %d", got)
	}
}

func TestScore_EmptyViewerIsZero(t *testing.T) {
	viewer := mentee(nil, "")
	cand := mentor([]string{"Go"}, "ai")

	if got := Score(viewer, cand, DefaultWeights, nil, nil); got != 0 {
		t.Fatalf("expected score 0 for empty viewer, got %d", got)
	}
}

func TestScore_InterestTagsAreCaseInsensitive(t *testing.T) {
	viewer := mentee(nil, "AI,  Web ")
	cand := mentor(nil, "ai, web")

	// interests only: round(100*0.3) = 30
	if got := Score(viewer, cand, DefaultWeights, nil, nil); got != 30 {
		t.Fatalf("expected score 30, got %d", got)
	}
}

func TestRank_FiltersRoleAndSelf(t *testing.T) {
	viewer := mentee([]string{"Go"}, "ai")
	sameRole := mentee([]string{"Go"}, "ai")
	match := mentor([]string{"Go"}, "ai")

	got := Rank(viewer, []user.User{viewer, sameRole, match}, DefaultWeights)
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].User.ID != match.ID {
		t.Fatalf("unexpected candidate ranked")
	}
	if got[0].Score != 100 {
		t.Fatalf("expected score 100, got %d", got[0].Score)
	}
}

func TestRank_SortsDescendingStable(t *testing.T) {
	viewer := mentee([]string{"Go", "SQL"}, "")

	low := mentor([]string{"Go", "Rust", "C", "Zig"}, "")
	zeroA := mentor([]string{"Painting"}, "")
	high := mentor([]string{"Go", "SQL"}, "")
	zeroB := mentor([]string{"Pottery"}, "")

	got := Rank(viewer, []user.User{low, zeroA, high, zeroB}, DefaultWeights)
	if len(got) != 4 {
		t.Fatalf("expected 4 candidates, got %d", len(got))
	}
	if got[0].User.ID != high.ID {
		t.Fatalf("expected highest score first")
	}
	if got[1].User.ID != low.ID {
		t.Fatalf("expected partial overlap second")
	}
	// Zero scorers stay and keep pool order.
	if got[2].User.ID != zeroA.ID || got[3].User.ID != zeroB.ID {
		t.Fatalf("expected stable order for tied scores")
	}
}

func TestRank_EmptyPool(t *testing.T) {
	got := Rank(mentee(nil, ""), nil, DefaultWeights)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestScore_RangeBounds(t *testing.T) {
	viewer := mentee([]string{"a", "b", "c"}, "x, y, z")
	cands := []user.User{
		mentor([]string{"a"}, "x"),
		mentor([]string{"a", "b"}, "x, q"),
		mentor([]string{"q"}, "p"),
		mentor([]string{"a", "b", "c"}, "x, y, z"),
	}
	for _, cand := range cands {
		got := Score(viewer, cand, DefaultWeights, nil, nil)
		if got < 0 || got > 100 {
			t.Fatalf("score out of range: %d", got)
		}
	}
}
