package dto

// ChatRequest is one visitor message (HTTP)
type ChatRequest struct {
	Message string `json:"message" binding:"required,max=1000"`
}

// ChatResponse is the scripted reply. TypingMs is how long the client
// should display the typing indicator before showing Reply.
type ChatResponse struct {
	Reply    string `json:"reply"`
	TypingMs int64  `json:"typing_ms"`
}

// ChatConfigResponse seeds a fresh client-side transcript
type ChatConfigResponse struct {
	Greeting     string   `json:"greeting"`
	QuickPrompts []string `json:"quick_prompts"`
}
