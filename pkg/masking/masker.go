// Package masking scrubs credentials from agent-authored text before it is
// persisted. Agents paste command output and config fragments into messages
// and task descriptions; anything that looks like a secret is replaced
// before it reaches the durable log.
package masking

import (
	"regexp"
)

// MaskedValue replaces every matched secret.
const MaskedValue = "***MASKED***"

type pattern struct {
	name        string
	regex       *regexp.Regexp
	replacement string
}

// builtins cover the credential shapes agents most often leak: assignment
// style key/token/password values, bearer headers, cloud and VCS token
// prefixes, and private key blocks.
var builtins = []pattern{
	{
		name:        "assignment",
		regex:       regexp.MustCompile(`(?i)\b(api[_-]?key|access[_-]?key|secret[_-]?key|auth[_-]?token|token|secret|password|passwd)(["']?\s*[=:]\s*["']?)[^\s"',;]+`),
		replacement: "$1$2" + MaskedValue,
	},
	{
		name:        "bearer",
		regex:       regexp.MustCompile(`(?i)\b(bearer\s+)[A-Za-z0-9._\-]+`),
		replacement: "$1" + MaskedValue,
	},
	{
		name:        "aws-access-key",
		regex:       regexp.MustCompile(`\b(AKIA|ASIA)[0-9A-Z]{16}\b`),
		replacement: MaskedValue,
	},
	{
		name:        "github-token",
		regex:       regexp.MustCompile(`\b(ghp|gho|ghu|ghs|ghr)_[A-Za-z0-9]{36,}\b`),
		replacement: MaskedValue,
	},
	{
		name:        "github-pat",
		regex:       regexp.MustCompile(`\bgithub_pat_[A-Za-z0-9_]{22,}\b`),
		replacement: MaskedValue,
	},
	{
		name:        "private-key",
		regex:       regexp.MustCompile(`(?s)-----BEGIN [A-Z ]*PRIVATE KEY-----.*?-----END [A-Z ]*PRIVATE KEY-----`),
		replacement: MaskedValue,
	},
}

// Masker applies the builtin credential patterns to free text.
type Masker struct {
	patterns []pattern
}

// New creates a masker with the builtin pattern set.
func New() *Masker {
	return &Masker{patterns: builtins}
}

// MaskString scrubs one string.
func (m *Masker) MaskString(s string) string {
	for _, p := range m.patterns {
		s = p.regex.ReplaceAllString(s, p.replacement)
	}
	return s
}

// MaskMap scrubs every string value in a payload, recursing into nested
// maps and slices. The input is modified in place and returned.
func (m *Masker) MaskMap(data map[string]interface{}) map[string]interface{} {
	for k, v := range data {
		data[k] = m.maskValue(v)
	}
	return data
}

func (m *Masker) maskValue(v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		return m.MaskString(val)
	case map[string]interface{}:
		return m.MaskMap(val)
	case []interface{}:
		for i, item := range val {
			val[i] = m.maskValue(item)
		}
		return val
	case []string:
		for i, item := range val {
			val[i] = m.MaskString(item)
		}
		return val
	default:
		return v
	}
}
