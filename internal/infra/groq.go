package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Vovarama1992/leadsheet/internal/config"
	"github.com/Vovarama1992/leadsheet/internal/ports"
	"github.com/Vovarama1992/leadsheet/internal/textutil"
)

// GroqClient talks to Groq's OpenAI-compatible REST API.
type GroqClient struct {
	apiKey    string
	baseURL   string
	chatModel string
	sttModel  string
	client    *http.Client
}

func NewGroqClient(cfg config.GroqConfig) (*GroqClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("no GROQ_API_KEY")
	}
	return &GroqClient{
		apiKey:    cfg.APIKey,
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		chatModel: cfg.ChatModel,
		sttModel:  cfg.TranscriptionModel,
		client:    &http.Client{},
	}, nil
}

// sanitize: drop broken UTF-8
func sanitize(s string) string {
	return strings.ToValidUTF8(s, "")
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (g *GroqClient) Complete(ctx context.Context, messages []ports.ChatMessage, temperature float64) (string, error) {
	body := chatRequest{
		Model:       g.chatModel,
		Temperature: temperature,
	}
	for _, m := range messages {
		body.Messages = append(body.Messages, chatMessage{Role: m.Role, Content: sanitize(m.Content)})
	}

	j, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", bytes.NewReader(j))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	rawResp, err := g.do(req)
	if err != nil {
		return "", fmt.Errorf("groq chat: %w", err)
	}

	var out chatResponse
	if err := json.Unmarshal(rawResp, &out); err != nil {
		return "", fmt.Errorf("groq chat: decode response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("groq chat: no choices in response")
	}

	return out.Choices[0].Message.Content, nil
}

func (g *GroqClient) TranscribeFile(ctx context.Context, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open audio: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("copy audio: %w", err)
	}
	if err := writer.WriteField("model", g.sttModel); err != nil {
		return "", fmt.Errorf("write model field: %w", err)
	}
	if err := writer.WriteField("response_format", "text"); err != nil {
		return "", fmt.Errorf("write response_format field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/audio/transcriptions", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rawResp, err := g.do(req)
	if err != nil {
		return "", fmt.Errorf("groq transcription: %w", err)
	}

	return strings.TrimSpace(string(rawResp)), nil
}

func (g *GroqClient) do(req *http.Request) ([]byte, error) {
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	rawResp, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var e apiError
		if json.Unmarshal(rawResp, &e) == nil && e.Error.Message != "" {
			return nil, fmt.Errorf("http %d: %s", resp.StatusCode, e.Error.Message)
		}
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode, textutil.Trim(string(rawResp), 300))
	}

	return rawResp, nil
}
