// Package view holds the data shapes the renderers display.
package view

// Field is one labelled line of a summary
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Counts tallies what a generation run touched
type Counts struct {
	Directories int `json:"directories"`
	TextFiles   int `json:"text_files"`
	BinaryFiles int `json:"binary_files"`
	Relocated   int `json:"relocated"`
}

// Summary describes a generated project
type Summary struct {
	Project     string   `json:"project"`
	Destination string   `json:"destination"`
	DryRun      bool     `json:"dry_run"`
	Stack       []Field  `json:"stack"`
	Counts      Counts   `json:"counts"`
	Injected    []string `json:"injected,omitempty"`
	NextSteps   []string `json:"next_steps"`
}

// Catalog lists the available template variants
type Catalog struct {
	Root      string   `json:"root"`
	Frontends []string `json:"frontends"`
	Backends  []string `json:"backends"`
}
