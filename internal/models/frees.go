package models

// Free is an anonymous generation request: prompt in, image out.
// Nothing is persisted for it.
type Free struct {
	Prompt string `json:"prompt"`
}

// FreeEntity is the result of a free generation.
type FreeEntity struct {
	Prompt string `json:"prompt"`
	Image  string `json:"image"`
}
