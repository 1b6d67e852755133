package model

import (
	"regexp"
	"strings"
)

// MaxTopicLength bounds a single topic while it is being typed.
const MaxTopicLength = 25

// topicAllowedChars is the allow-list for topic input. Characters outside
// it are rejected silently rather than surfacing an error.
var topicAllowedChars = regexp.MustCompile(`^[A-Za-z0-9 _-]*$`)

// TopicInputResult describes the outcome of feeding one input value
// through the topic editor rules.
type TopicInputResult struct {
	// Topics is the (possibly extended) ordered topic list.
	Topics []string
	// Input is the remaining free-text input after the edit.
	Input string
	// Added is true when a topic was committed to the list.
	Added bool
}

// ApplyTopicInput implements the topic chip editor: a topic is committed
// when the input ends in a double space or a trailing comma, with the
// delimiter stripped and the text trimmed before insertion. Duplicates
// are compared case-insensitively and rejected, leaving the list
// unchanged. Input that violates the character allow-list or the length
// cap is dropped, keeping the previous input value.
func ApplyTopicInput(topics []string, prev, value string) TopicInputResult {
	if strings.HasSuffix(value, "  ") || strings.HasSuffix(value, ",") {
		candidate := strings.TrimSpace(strings.TrimSuffix(value, ","))
		return commitTopic(topics, candidate)
	}

	if !topicAllowedChars.MatchString(value) || len(value) > MaxTopicLength {
		return TopicInputResult{Topics: topics, Input: prev}
	}

	return TopicInputResult{Topics: topics, Input: value}
}

// commitTopic appends candidate to topics unless it is empty, violates
// the allow-list or length cap (possible via paste, or a hand-crafted
// form post), or is a case-insensitive duplicate. The input is cleared
// either way.
func commitTopic(topics []string, candidate string) TopicInputResult {
	if candidate == "" || !topicAllowedChars.MatchString(candidate) || len(candidate) > MaxTopicLength {
		return TopicInputResult{Topics: topics}
	}
	for _, t := range topics {
		if strings.EqualFold(t, candidate) {
			return TopicInputResult{Topics: topics}
		}
	}
	return TopicInputResult{Topics: append(topics, candidate), Input: "", Added: true}
}

// RemoveTopic returns topics without the exact given topic. Unknown
// topics leave the list unchanged.
func RemoveTopic(topics []string, topic string) []string {
	out := make([]string, 0, len(topics))
	for _, t := range topics {
		if t != topic {
			out = append(out, t)
		}
	}
	return out
}
