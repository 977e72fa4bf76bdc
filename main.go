package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/peterh/liner"
	"github.com/rs/zerolog/log"

	orchestratorx "github.com/voyplan/voyplan/agent/agents/orchestrator"
	catalogx "github.com/voyplan/voyplan/agent/catalog"
	"github.com/voyplan/voyplan/agent/dialogue"
	llmx "github.com/voyplan/voyplan/agent/llm"
	"github.com/voyplan/voyplan/agent/nlu"
	statex "github.com/voyplan/voyplan/agent/state"
	configx "github.com/voyplan/voyplan/pkg/config"
	_ "github.com/voyplan/voyplan/pkg/logger/autoload"
)

type AppConfig struct {
	RedisAddr     string        `envconfig:"REDIS_ADDR" split_words:"true"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD" split_words:"true"`
	RedisDB       int           `envconfig:"REDIS_DB" split_words:"true"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" split_words:"true" default:"24h"`
	DatabaseURL   string        `envconfig:"DATABASE_URL" split_words:"true"`
}

func main() {
	ctx := context.Background()

	appCfg := configx.MustNew[AppConfig]("VOYPLAN")
	llmCfg := configx.MustNew[llmx.Config]("OPENROUTER")

	registry, err := nlu.NewRegistry(ctx, *llmCfg)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize language models: %v", err))
	}

	machine, err := dialogue.NewMachine(
		registry.Extractor,
		registry.Classifier,
		catalogx.NewStaticTransportCatalog(),
		catalogx.NewStaticAttractionCatalog(),
		catalogx.NewStaticFoodCatalog(),
		catalogx.NewStaticAccommodationCatalog(),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to build dialogue machine: %v", err))
	}

	store, closeStore, err := newStore(ctx, appCfg)
	if err != nil {
		panic(fmt.Sprintf("failed to open session store: %v", err))
	}
	defer closeStore()

	orch, err := orchestratorx.New(store, machine)
	if err != nil {
		panic(fmt.Sprintf("failed to build orchestrator: %v", err))
	}

	runREPL(ctx, orch)
}

// newStore picks the session backend from the environment: Postgres when a
// database URL is set, Redis when an address is set, in-memory otherwise.
func newStore(ctx context.Context, cfg *AppConfig) (statex.Store, func(), error) {
	switch {
	case cfg.DatabaseURL != "":
		pg := statex.NewPostgresStore(cfg.DatabaseURL)
		if err := pg.Init(ctx); err != nil {
			return nil, nil, err
		}
		log.Info().Msg("using postgres session store")
		return pg, func() { _ = pg.Close() }, nil
	case cfg.RedisAddr != "":
		rs, err := statex.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.SessionTTL)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("addr", cfg.RedisAddr).Msg("using redis session store")
		return rs, func() { _ = rs.Close() }, nil
	default:
		log.Info().Msg("using in-memory session store")
		return statex.NewMemoryStore(), func() {}, nil
	}
}

func runREPL(ctx context.Context, orch *orchestratorx.Orchestrator) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	sessionID := uuid.NewString()
	fmt.Println(orchestratorx.WelcomeMessage())
	fmt.Println("Commands: :reset starts a new trip, :quit exits.")

	for {
		input, err := line.Prompt("you> ")
		if err != nil {
			// Ctrl-C or Ctrl-D.
			fmt.Println("\nGoodbye!")
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		switch input {
		case ":quit", ":exit":
			fmt.Println("Goodbye!")
			return
		case ":reset":
			if err := orch.ResetSession(ctx, sessionID); err != nil {
				log.Error().Err(err).Msg("failed to reset session")
				continue
			}
			sessionID = uuid.NewString()
			fmt.Println(orchestratorx.WelcomeMessage())
			continue
		}

		out, err := orch.HandleMessage(ctx, sessionID, input, nil)
		if err != nil {
			log.Error().Err(err).Str("session_id", sessionID).Msg("turn failed")
			fmt.Fprintln(os.Stderr, "Something went wrong, please try again.")
			continue
		}
		for _, w := range out.Warnings {
			log.Warn().Str("code", w.Code).Msg(w.Message)
		}
		fmt.Printf("planner> %s\n", out.Reply)
	}
}
