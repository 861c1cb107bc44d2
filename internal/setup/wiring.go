package setup

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/povarna/generative-ai-agents/context-agent/internal/agent"
	"github.com/povarna/generative-ai-agents/context-agent/internal/config"
	"github.com/povarna/generative-ai-agents/context-agent/internal/database"
	"github.com/povarna/generative-ai-agents/context-agent/internal/evaluator"
	"github.com/povarna/generative-ai-agents/context-agent/internal/files"
	"github.com/povarna/generative-ai-agents/context-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/context-agent/internal/llm/bedrock"
	"github.com/povarna/generative-ai-agents/context-agent/internal/llm/gpt"
	"github.com/povarna/generative-ai-agents/context-agent/internal/retrieval"
	"github.com/povarna/generative-ai-agents/context-agent/internal/tools"
)

type Config struct {
	AWSRegion         string
	ClaudeModelID     string
	OpenAIKey         string
	OpenAIModelID     string
	DefaultProvider   string
	EmbeddingProvider string
	EmbeddingModelID  string
	DataDir           string
	RetrievalLimit    int
	ChunkSize         int
	ChunkOverlap      int
	Database          database.Config
}

type Dependencies struct {
	Evaluator *evaluator.Evaluator
	Agent     *agent.Agent
	Registry  *tools.Registry
	Pipeline  *retrieval.Pipeline
	FileStore *files.Store
	DB        *database.DB
	Logger    *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		AWSRegion:         getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID:     getEnv("CLAUDE_MODEL_ID", ""),
		OpenAIKey:         getEnv("OPEN_AI_KEY", ""),
		OpenAIModelID:     getEnv("OPEN_AI_MODEL_ID", ""),
		DefaultProvider:   getEnv("DEFAULT_LLM_PROVIDER", "bedrock"),
		EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", ""),
		EmbeddingModelID:  getEnv("EMBEDDING_MODEL_ID", ""),
		DataDir:           getEnv("DATA_DIR", "data"),
		RetrievalLimit:    getEnvInt("RETRIEVAL_LIMIT", 5),
		ChunkSize:         getEnvInt("CHUNK_SIZE", 1000),
		ChunkOverlap:      getEnvInt("CHUNK_OVERLAP", 200),
		Database: database.Config{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnv("POSTGRES_PORT", "5432"),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			Database: getEnv("POSTGRES_DB", "context_agent"),
			SSLMode:  getEnv("POSTGRES_SSL_MODE", "disable"),
		},
	}
}

// WireEvaluator builds the LLM client and the evaluator. The streaming and
// batch binaries need nothing else.
func WireEvaluator(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*evaluator.Evaluator, error) {
	llmClient, err := createLLMClient(ctx, cfg.DefaultProvider, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	evaluatorsConfig, err := loadEvaluatorsConfig(logger)
	if err != nil {
		return nil, err
	}

	eval, err := evaluator.New(evaluatorsConfig, llmClient, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build evaluator: %w", err)
	}

	return eval, nil
}

// loadEvaluatorsConfig falls back to the built-in prompts when no YAML file
// is present, so binaries started outside the repo root still work.
func loadEvaluatorsConfig(logger *zerolog.Logger) (*config.EvaluatorsConfig, error) {
	cfg, err := config.LoadEvaluatorsConfig()
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Msg("Evaluators config not found, using built-in defaults")
			return config.Default(), nil
		}
		return nil, fmt.Errorf("failed to load evaluators config: %w", err)
	}
	return cfg, nil
}

// Wire builds the full dependency graph for the API and MCP binaries.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	llmClient, err := createLLMClient(ctx, cfg.DefaultProvider, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	evaluatorsConfig, err := loadEvaluatorsConfig(logger)
	if err != nil {
		return nil, err
	}

	eval, err := evaluator.New(evaluatorsConfig, llmClient, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build evaluator: %w", err)
	}

	db, err := database.New(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(ctx); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	embedder, err := createEmbedder(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	fileStore, err := files.NewStore(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	registry, err := tools.NewRegistry(
		tools.NewReadFileTool(fileStore.Dir()),
		tools.NewWebSearchTool(),
		tools.NewCalculatorTool(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build tool registry: %w", err)
	}

	chunker := retrieval.NewChunker(cfg.ChunkSize, cfg.ChunkOverlap)
	pipeline := retrieval.NewPipeline(chunker, embedder, db, logger)
	retriever := retrieval.NewRetriever(embedder, db, cfg.RetrievalLimit, logger)

	agentInstance := agent.New(llmClient, retriever, eval, registry, logger)

	return &Dependencies{
		Evaluator: eval,
		Agent:     agentInstance,
		Registry:  registry,
		Pipeline:  pipeline,
		FileStore: fileStore,
		DB:        db,
		Logger:    logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		value = defaultValue
	}

	return value
}

func createLLMClient(ctx context.Context, provider string, cfg *Config) (llm.LLMClient, error) {
	switch provider {
	case "bedrock":
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	case "openai":
		return gpt.NewClient(cfg.OpenAIKey, cfg.OpenAIModelID)
	default:
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	}
}

func createEmbedder(ctx context.Context, cfg *Config) (retrieval.Embedder, error) {
	provider := cfg.EmbeddingProvider
	if provider == "" {
		provider = cfg.DefaultProvider
	}

	switch provider {
	case "bedrock":
		modelID := cfg.EmbeddingModelID
		if modelID == "" {
			modelID = "amazon.titan-embed-text-v2:0"
		}
		return retrieval.NewBedrockEmbedder(ctx, cfg.AWSRegion, modelID)
	case "openai":
		return retrieval.NewOpenAIEmbedder(cfg.OpenAIKey, cfg.EmbeddingModelID)
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", provider)
	}
}
