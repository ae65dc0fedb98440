package gemini

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const (
	textModel  = "gemini-2.5-flash"
	imageModel = "gemini-2.5-flash-image-preview"
)

// systemInstruction is the fixed sales persona preloaded into every chat
// session.
const systemInstruction = `Eres el asistente virtual de STREAMIX, una tienda de cuentas y combos de streaming. ` +
	`Atiendes en español con un tono cercano y entusiasta. Recomienda productos y combos del catálogo, ` +
	`indica los precios en dólares y en bolívares, y explica que la compra se concreta por WhatsApp ` +
	`enviando el comprobante de pago. Responde de forma breve y clara.`

// ErrNoImage is returned when an edit request yields no inline image part.
var ErrNoImage = errors.New("no image returned by the model")

// Turn is one message of a conversation as the storefront sends it.
type Turn struct {
	Role  string     `json:"role"`
	Parts []TurnPart `json:"parts"`
}

type TurnPart struct {
	Text string `json:"text"`
}

// Source is a web citation attached to a grounded answer.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// Client wraps the Gemini API for the four storefront operations.
type Client struct {
	client *genai.Client
}

func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Client{client: c}, nil
}

// Chat replays the given history into a fresh chat session with the sales
// persona and submits newMessage.
func (c *Client) Chat(ctx context.Context, history []Turn, newMessage string) (string, error) {
	hist := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		parts := make([]*genai.Part, 0, len(turn.Parts))
		for _, p := range turn.Parts {
			parts = append(parts, genai.NewPartFromText(p.Text))
		}
		var role genai.Role = genai.RoleModel
		if turn.Role == "user" {
			role = genai.RoleUser
		}
		hist = append(hist, genai.NewContentFromParts(parts, role))
	}

	chat, err := c.client.Chats.Create(ctx, textModel, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	}, hist)
	if err != nil {
		return "", fmt.Errorf("create chat session: %w", err)
	}
	resp, err := chat.SendMessage(ctx, genai.Part{Text: newMessage})
	if err != nil {
		return "", fmt.Errorf("send chat message: %w", err)
	}
	return resp.Text(), nil
}

// Suggest generates a short enthusiastic product or combo suggestion for the
// given interest.
func (c *Client) Suggest(ctx context.Context, interest string) (string, error) {
	prompt := fmt.Sprintf(
		"Un cliente de STREAMIX está interesado en %q. Sugiérele, en una o dos frases y con entusiasmo, "+
			"un producto o combo de streaming que le pueda encantar.", interest)

	resp, err := c.client.Models.GenerateContent(ctx, textModel, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate suggestion: %w", err)
	}
	return resp.Text(), nil
}

// GroundedSearch answers the query with the web search tool enabled and
// returns the answer together with its deduplicated citations.
func (c *Client) GroundedSearch(ctx context.Context, query string) (string, []Source, error) {
	resp, err := c.client.Models.GenerateContent(ctx, textModel, genai.Text(query), &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	})
	if err != nil {
		return "", nil, fmt.Errorf("grounded search: %w", err)
	}
	return resp.Text(), collectSources(resp), nil
}

// EditImage asks the model for an image-modality response given the input
// image and the edit instruction. The result is the base64 of the first
// inline image part; ErrNoImage if there is none.
func (c *Client) EditImage(ctx context.Context, base64ImageData, mimeType, prompt string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(base64ImageData)
	if err != nil {
		return "", fmt.Errorf("decode image data: %w", err)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(raw, mimeType),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}
	resp, err := c.client.Models.GenerateContent(ctx, imageModel, contents, &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	})
	if err != nil {
		return "", fmt.Errorf("edit image: %w", err)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return base64.StdEncoding.EncodeToString(part.InlineData.Data), nil
			}
		}
	}
	return "", ErrNoImage
}
