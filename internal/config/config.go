package config

import (
	"os"
	"time"
)

type Config struct {
	Port            string
	OpenAIKey       string
	OpenAIBaseURL   string
	TTSKey          string
	TTSBaseURL      string
	ChatModel       string
	WhisperModel    string
	TTSModel        string
	TTSVoice        string
	PythonBin       string
	RetrievalScript string
	SummaryPath     string
	TarotImageDir   string
	RetrievalTopK   int
	CallTimeout     time.Duration
}

func Load() *Config {
	return &Config{
		Port:            getenv("PORT", "3001"),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:   os.Getenv("OPENAI_BASE_URL"),
		TTSKey:          os.Getenv("TTS_API_KEY"),
		TTSBaseURL:      os.Getenv("TTS_BASE_URL"),
		ChatModel:       getenv("LLM_MODEL", "gpt-4o-mini"),
		WhisperModel:    getenv("WHISPER_MODEL", "whisper-1"),
		TTSModel:        getenv("TTS_MODEL", "tts-1"),
		TTSVoice:        getenv("TTS_VOICE", "onyx"),
		PythonBin:       getenv("PYTHON_BIN", "python3"),
		RetrievalScript: getenv("RETRIEVAL_SCRIPT", "query_database.py"),
		SummaryPath:     getenv("SUMMARY_PATH", "processing_summary.json"),
		TarotImageDir:   getenv("TAROT_IMAGE_DIR", "tarot-images"),
		RetrievalTopK:   3,
		CallTimeout:     30 * time.Second,
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
