package jsonutil

import "encoding/json"

// StringSlice is a JSON-aware []string that can cope with AWS' bad habit of
// turning single-element JSON arrays of strings into strings. IAM trust
// policies that were last written by the console are full of these.
type StringSlice []string

// MarshalJSON is unnecessary because it's always valid to marshal this type
// as a []string usually would be.

func (p *StringSlice) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*p = StringSlice{s}
		return nil
	}
	var ss []string
	if err := json.Unmarshal(b, &ss); err != nil {
		return err
	}
	*p = StringSlice(ss)
	return nil
}
