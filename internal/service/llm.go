package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"chatwithgod/internal/config"
)

// LLMClient talks to the OpenAI-compatible APIs: chat completions for
// generation, Whisper for transcription, the speech endpoint for narration.
// Narration may live on a different provider, so it gets its own client
// and API key.
type LLMClient struct {
	chat      *openai.Client
	speech    *openai.Client
	chatModel string
	whisper   string
	ttsModel  string
	ttsVoice  string
	timeout   time.Duration
}

// NewLLMClient builds the client pair from config. Missing API keys are not
// checked here; a request against an unconfigured provider fails when made.
func NewLLMClient(cfg *config.Config) *LLMClient {
	chatCfg := openai.DefaultConfig(cfg.OpenAIKey)
	if cfg.OpenAIBaseURL != "" {
		chatCfg.BaseURL = cfg.OpenAIBaseURL
	}
	speechCfg := openai.DefaultConfig(cfg.TTSKey)
	if cfg.TTSBaseURL != "" {
		speechCfg.BaseURL = cfg.TTSBaseURL
	}

	timeout := cfg.CallTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &LLMClient{
		chat:      openai.NewClientWithConfig(chatCfg),
		speech:    openai.NewClientWithConfig(speechCfg),
		chatModel: cfg.ChatModel,
		whisper:   cfg.WhisperModel,
		ttsModel:  cfg.TTSModel,
		ttsVoice:  cfg.TTSVoice,
		timeout:   timeout,
	}
}

// Complete generates an answer from a system prompt and the user's message.
func (l *LLMClient) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	resp, err := l.chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: l.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Transcribe converts uploaded audio to text. The filename is passed along
// so the API can detect the audio format.
func (l *LLMClient) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	resp, err := l.chat.CreateTranscription(ctx, openai.AudioRequest{
		Model:    l.whisper,
		Reader:   bytes.NewReader(audio),
		FilePath: filename,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// Synthesize renders text to mp3 audio.
func (l *LLMClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	resp, err := l.speech.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(l.ttsModel),
		Input:          text,
		Voice:          openai.SpeechVoice(l.ttsVoice),
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, err
	}
	defer resp.Close()
	return io.ReadAll(resp)
}
