package analytics

import (
	"errors"
	"slices"

	"github.com/lshigami/SigmaLearn/internal/model"
)

var ErrTopicRequired = errors.New("select a topic before a subtopic")

type Filter struct {
	Topic    string
	SubTopic string
}

func (f Filter) matches(a model.QuizAttempt) bool {
	if f.Topic != "" && a.Topic != f.Topic {
		return false
	}
	if f.SubTopic != "" && a.SubTopic != f.SubTopic {
		return false
	}
	return true
}

// View is the locally held attempt history of one signed-in user together
// with the active filter. Filter options come from the fetched set itself.
type View struct {
	attempts []model.QuizAttempt
	filter   Filter
	loaded   bool
}

func NewView() *View { return &View{} }

// Load replaces the attempt set after a successful fetch.
func (v *View) Load(attempts []model.QuizAttempt) {
	v.attempts = slices.Clone(attempts)
	v.loaded = true
}

func (v *View) Loaded() bool { return v.loaded }

// Clear drops the cached attempts and filter.
func (v *View) Clear() { *v = View{} }

func (v *View) Filter() Filter { return v.filter }

// SetTopic changes the topic filter and always clears the subtopic.
func (v *View) SetTopic(topic string) {
	v.filter = Filter{Topic: topic}
}

func (v *View) SetSubTopic(subTopic string) error {
	if subTopic != "" && v.filter.Topic == "" {
		return ErrTopicRequired
	}
	v.filter.SubTopic = subTopic
	return nil
}

func (v *View) ResetFilters() { v.filter = Filter{} }

// All returns every loaded attempt regardless of filter.
func (v *View) All() []model.QuizAttempt { return slices.Clone(v.attempts) }

// Visible returns the attempts matching the active filter.
func (v *View) Visible() []model.QuizAttempt {
	out := make([]model.QuizAttempt, 0, len(v.attempts))
	for _, a := range v.attempts {
		if v.filter.matches(a) {
			out = append(out, a)
		}
	}
	return out
}

// Topics lists the distinct topics in first-seen order.
func (v *View) Topics() []string {
	return distinct(v.attempts, func(a model.QuizAttempt) (string, bool) {
		return a.Topic, true
	})
}

// SubTopics lists the distinct subtopics of the selected topic, or nothing
// when no topic is selected.
func (v *View) SubTopics() []string {
	if v.filter.Topic == "" {
		return nil
	}
	return distinct(v.attempts, func(a model.QuizAttempt) (string, bool) {
		return a.SubTopic, a.Topic == v.filter.Topic
	})
}

// Stats aggregates every loaded attempt. Filters narrow the list only.
func (v *View) Stats() Stats { return Compute(v.attempts) }

// Remove drops the attempt with id from the local set and reports whether it
// was present.
func (v *View) Remove(id string) bool {
	i := slices.IndexFunc(v.attempts, func(a model.QuizAttempt) bool { return a.ID == id })
	if i < 0 {
		return false
	}
	v.attempts = slices.Delete(v.attempts, i, i+1)
	return true
}

func distinct(attempts []model.QuizAttempt, key func(model.QuizAttempt) (string, bool)) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, a := range attempts {
		k, ok := key(a)
		if !ok || k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
