package ai

import (
	"errors"
	"regexp"
	"strings"
)

var fenceRe = regexp.MustCompile("```json\\s*\\n([\\s\\S]*?)\\n\\s*```")

// ErrNoJSON means no JSON object could be located in the model output.
var ErrNoJSON = errors.New("no JSON object in model output")

// ExtractJSON pulls a JSON object out of model output. Models wrap JSON in
// markdown fences or surround it with prose, so try the fence first and
// fall back to the widest brace span.
func ExtractJSON(text string) (string, error) {
	if m := fenceRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), nil
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return "", ErrNoJSON
	}

	return text[start : end+1], nil
}
