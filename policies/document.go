package policies

import (
	"encoding/json"
	"fmt"

	"github.com/cloudanix/dbonboard/jsonutil"
)

type Document struct {
	Version   version
	Statement []Statement
}

func AssumeRolePolicyDocument(principal *Principal) *Document {
	return &Document{
		Statement: []Statement{{
			Action:    []string{"sts:AssumeRole"},
			Effect:    Allow,
			Principal: principal,
		}},
	}
}

func Unmarshal(b []byte) (*Document, error) {
	d := &Document{}
	if err := json.Unmarshal(b, d); err != nil {
		return nil, err
	}
	return d, nil
}

func UnmarshalString(s string) (*Document, error) {
	return Unmarshal([]byte(s))
}

func (d *Document) Marshal() (string, error) {
	b, err := json.MarshalIndent(d, "", "\t")
	return string(b), err
}

// Statement carries every legal policy statement field, the negated forms
// included, so that documents written by other tools survive a read, edit,
// write cycle without losing anything.
type Statement struct {
	Sid          string `json:",omitempty"`
	Effect       Effect
	Principal    *Principal           `json:",omitempty"`
	NotPrincipal *Principal           `json:",omitempty"`
	Action       jsonutil.StringSlice `json:",omitempty"`
	NotAction    jsonutil.StringSlice `json:",omitempty"`
	Resource     jsonutil.StringSlice `json:",omitempty"` // omitempty for AssumeRolePolicyDocument
	NotResource  jsonutil.StringSlice `json:",omitempty"`
	Condition    Condition            `json:",omitempty"`
}

type Effect string

const (
	Allow Effect = "Allow" // default, thanks to MarshalJSON
	Deny  Effect = "Deny"
)

func (e Effect) MarshalJSON() ([]byte, error) {
	switch e {
	case Allow, Deny:
	case "":
		e = Allow
	default:
		return nil, fmt.Errorf("invalid Effect %#v", e)
	}
	return []byte(fmt.Sprintf("%#v", e)), nil
}

type Principal struct {
	AWS       jsonutil.StringSlice `json:",omitempty"`
	Federated jsonutil.StringSlice `json:",omitempty"`
	Service   jsonutil.StringSlice `json:",omitempty"`
}

type Condition map[string]map[string]jsonutil.StringSlice

type version struct{}

func (version) MarshalJSON() ([]byte, error) {
	return []byte(`"2012-10-17"`), nil
}

func (*version) UnmarshalJSON([]byte) error {
	return nil // the only version is "2012-10-17" so there's nothing to keep
}
