package github

// Label is a label as defined on a repository.
type Label struct {
	Name        string `json:"name" yaml:"name"`
	Color       string `json:"color" yaml:"color"`
	Description string `json:"description" yaml:"description"`
}

// Repo identifies a target repository.
type Repo struct {
	Owner string
	Name  string
}

// String returns owner/name.
func (r Repo) String() string {
	return r.Owner + "/" + r.Name
}
