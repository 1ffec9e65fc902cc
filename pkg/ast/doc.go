package ast

// DocComment is a docstring split into its Doxygen tags
type DocComment struct {
	Brief      string            `json:"brief,omitempty" yaml:"brief,omitempty"`
	Detailed   string            `json:"detailed,omitempty" yaml:"detailed,omitempty"`
	Params     map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
	Returns    string            `json:"returns,omitempty" yaml:"returns,omitempty"`
	Throws     []string          `json:"throws,omitempty" yaml:"throws,omitempty"`
	Deprecated string            `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	See        []string          `json:"see,omitempty" yaml:"see,omitempty"`
	Since      string            `json:"since,omitempty" yaml:"since,omitempty"`
	CustomTags map[string]string `json:"customTags,omitempty" yaml:"customTags,omitempty"`
}
