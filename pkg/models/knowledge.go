package models

// CreateKnowledgeRequest carries a new knowledge base entry
type CreateKnowledgeRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags,omitempty"`
}

// UpdateKnowledgeRequest carries a partial entry update; nil fields are left
// untouched
type UpdateKnowledgeRequest struct {
	Title    *string  `json:"title,omitempty"`
	Content  *string  `json:"content,omitempty"`
	Category *string  `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Active   *bool    `json:"active,omitempty"`
}
