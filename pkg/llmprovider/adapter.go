package llmprovider

import (
	"context"
	"strings"

	"mcal/pkg/gemini"
	"mcal/pkg/groq"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          convertToGeminiContents(req.Messages),
		Tools:             convertToGeminiTools(req.Tools),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	usage := &Usage{}
	if resp.Usage != nil {
		usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}

	return &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// GroqAdapter adapts pkg/groq to llmprovider.Provider interface.
// Tools and function calls are not forwarded.
type GroqAdapter struct {
	client groq.IGroq
}

// NewGroqAdapter creates a new Groq adapter
func NewGroqAdapter(client groq.IGroq) *GroqAdapter {
	return &GroqAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GroqAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	groqReq := &groq.Request{
		Model:       a.client.Model(),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		groqReq.Messages = append(groqReq.Messages, groq.Message{
			Role:    "system",
			Content: groq.TextContent(req.SystemInstruction.Text()),
		})
	}
	for _, msg := range req.Messages {
		groqReq.Messages = append(groqReq.Messages, convertToGroqMessage(msg))
	}

	resp, err := a.client.GenerateContent(ctx, groqReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	var content Message
	if len(resp.Choices) > 0 {
		content = Message{
			Role:  resp.Choices[0].Message.Role,
			Parts: []Part{{Text: resp.Choices[0].Message.Content.Text}},
		}
	}

	return &Response{
		Content:      content,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GroqAdapter) Name() string {
	return "groq"
}

// Model returns model name
func (a *GroqAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for Gemini
func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
		if p.InlineData != nil {
			parts[i].InlineData = &gemini.Blob{MimeType: p.InlineData.MimeType, Data: p.InlineData.Data}
		}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &gemini.FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &gemini.FunctionResponse{
				Name:     p.FunctionResponse.Name,
				Response: p.FunctionResponse.Response,
			}
		}
	}
	return &gemini.Content{Role: msg.Role, Parts: parts}
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i := range msgs {
		contents[i] = *convertToGeminiContent(&msgs[i])
	}
	return contents
}

func convertToGeminiTools(tools []Tool) []gemini.Tool {
	geminiTools := make([]gemini.Tool, len(tools))
	for i, t := range tools {
		geminiTools[i] = gemini.Tool{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		}
	}
	return geminiTools
}

func convertFromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &FunctionCall{
				Name: p.FunctionCall.Name,
				Args: p.FunctionCall.Args,
			}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &FunctionResponse{
				Name:     p.FunctionResponse.Name,
				Response: p.FunctionResponse.Response,
			}
		}
	}
	return Message{Role: content.Role, Parts: parts}
}

// Conversion helpers for Groq
func convertToGroqMessage(msg Message) groq.Message {
	hasMedia := false
	for _, p := range msg.Parts {
		if p.InlineData != nil {
			hasMedia = true
			break
		}
	}
	if !hasMedia {
		return groq.Message{Role: msg.Role, Content: groq.TextContent(msg.Text())}
	}

	parts := make([]groq.ContentPart, 0, len(msg.Parts))
	for _, p := range msg.Parts {
		if p.Text != "" {
			parts = append(parts, groq.ContentPart{Type: "text", Text: p.Text})
		}
		if p.InlineData != nil {
			parts = append(parts, groq.ContentPart{
				Type:     "image_url",
				ImageURL: &groq.ImageURL{URL: dataURL(p.InlineData)},
			})
		}
	}
	return groq.Message{Role: msg.Role, Content: groq.MessageContent{Parts: parts}}
}

func dataURL(b *Blob) string {
	var sb strings.Builder
	sb.WriteString("data:")
	sb.WriteString(b.MimeType)
	sb.WriteString(";base64,")
	sb.WriteString(b.Data)
	return sb.String()
}
