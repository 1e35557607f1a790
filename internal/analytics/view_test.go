package analytics

import (
	"testing"

	"github.com/lshigami/SigmaLearn/internal/model"
)

func attempt(id, topic, sub string, score, total int) model.QuizAttempt {
	return model.QuizAttempt{ID: id, Topic: topic, SubTopic: sub, Score: score, TotalQuestions: total}
}

func fixture() []model.QuizAttempt {
	return []model.QuizAttempt{
		attempt("1", "Mathematics", "Algebra", 3, 5),
		attempt("2", "Mathematics", "Geometry", 4, 4),
		attempt("3", "Science", "Physics", 1, 5),
		attempt("4", "Mathematics", "Algebra", 2, 5),
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestComputeAverage(t *testing.T) {
	s := Compute(fixture())
	if s.TotalAttempts != 4 || s.TotalQuestions != 19 || s.TotalCorrect != 10 {
		t.Fatalf("stats=%+v", s)
	}
	if s.AverageScore != 52.63 {
		t.Fatalf("average=%v", s.AverageScore)
	}
}

func TestComputeAverageZeroQuestions(t *testing.T) {
	s := Compute([]model.QuizAttempt{attempt("1", "x", "y", 0, 0)})
	if s.AverageScore != 0 {
		t.Fatalf("average=%v", s.AverageScore)
	}
	if Compute(nil).AverageScore != 0 {
		t.Fatalf("empty average not zero")
	}
}

func TestTopicChangeClearsSubTopic(t *testing.T) {
	v := NewView()
	v.Load(fixture())
	v.SetTopic("Mathematics")
	if err := v.SetSubTopic("Algebra"); err != nil {
		t.Fatalf("SetSubTopic: %v", err)
	}
	v.SetTopic("Science")
	if v.Filter().SubTopic != "" {
		t.Fatalf("subtopic survived topic change: %+v", v.Filter())
	}
	if got := v.SubTopics(); !equalStrings(got, []string{"Physics"}) {
		t.Fatalf("subtopics=%v", got)
	}
}

func TestSubTopicOptionsFollowTopic(t *testing.T) {
	v := NewView()
	v.Load(fixture())
	if got := v.Topics(); !equalStrings(got, []string{"Mathematics", "Science"}) {
		t.Fatalf("topics=%v", got)
	}
	if got := v.SubTopics(); got != nil {
		t.Fatalf("subtopics without topic=%v", got)
	}
	v.SetTopic("Mathematics")
	if got := v.SubTopics(); !equalStrings(got, []string{"Algebra", "Geometry"}) {
		t.Fatalf("subtopics=%v", got)
	}
	if err := NewView().SetSubTopic("Algebra"); err != ErrTopicRequired {
		t.Fatalf("err=%v", err)
	}
}

func TestStatsIgnoreFiltersAndReset(t *testing.T) {
	v := NewView()
	v.Load(fixture())
	all := v.Stats()
	if all.TotalAttempts != 4 || all.TotalCorrect != 10 || all.TotalQuestions != 19 {
		t.Fatalf("stats=%+v", all)
	}
	v.SetTopic("Mathematics")
	_ = v.SetSubTopic("Algebra")
	if got := len(v.Visible()); got != 2 {
		t.Fatalf("visible=%d", got)
	}
	if s := v.Stats(); s != all {
		t.Fatalf("filtered stats=%+v, want %+v", s, all)
	}
	v.SetTopic("Science")
	if s := v.Stats(); s != all {
		t.Fatalf("stats changed with topic: %+v", s)
	}
	v.ResetFilters()
	if got := len(v.Visible()); got != 4 {
		t.Fatalf("visible after reset=%d", got)
	}
}

func TestRemoveDropsOnlyThatID(t *testing.T) {
	v := NewView()
	v.Load(fixture())
	if !v.Remove("2") {
		t.Fatalf("Remove reported missing")
	}
	if v.Remove("2") {
		t.Fatalf("second Remove reported present")
	}
	var ids []string
	for _, a := range v.All() {
		ids = append(ids, a.ID)
	}
	if !equalStrings(ids, []string{"1", "3", "4"}) {
		t.Fatalf("ids=%v", ids)
	}
}

func TestBandOf(t *testing.T) {
	tests := []struct {
		score, total int
		want         Band
	}{
		{7, 10, BandHigh},
		{4, 10, BandMedium},
		{3, 10, BandLow},
		{0, 0, BandLow},
	}
	for _, tt := range tests {
		if got := BandOf(tt.score, tt.total); got != tt.want {
			t.Fatalf("BandOf(%d,%d)=%s want %s", tt.score, tt.total, got, tt.want)
		}
	}
	if got := Percentage(2, 3); got != 67 {
		t.Fatalf("Percentage=%d", got)
	}
}

func TestBadges(t *testing.T) {
	var attempts []model.QuizAttempt
	for i := 0; i < 10; i++ {
		attempts = append(attempts, attempt("x", []string{"A", "B", "C"}[i%3], "", 9, 10))
	}
	earned := map[string]bool{}
	for _, b := range Badges(attempts) {
		earned[b.Name] = b.Earned
	}
	for _, name := range []string{"Beginner", "Explorer", "Scholar", "Persistent"} {
		if !earned[name] {
			t.Fatalf("%s not earned: %v", name, earned)
		}
	}
	if earned["Expert"] {
		t.Fatalf("Expert earned without a perfect score")
	}
	for _, b := range Badges(nil) {
		if b.Earned {
			t.Fatalf("%s earned with no attempts", b.Name)
		}
	}
}
