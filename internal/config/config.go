package config

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/caarlos0/env/v11"

	"github.com/badelinebot/badeline/internal/rules"
)

// Credentials holds the API secrets, loaded from the environment and
// never from the roster file.
type Credentials struct {
	// SRCAPIKey authenticates reject calls to speedrun.com.
	SRCAPIKey string `env:"SRC_API_KEY,required"`

	// TwitchClientID and TwitchClientSecret identify the bot's Twitch
	// application for the client-credentials grant.
	TwitchClientID     string `env:"TWITCH_CLIENT_ID,required"`
	TwitchClientSecret string `env:"TWITCH_CLIENT_SECRET,required"`
}

// LoadCredentials reads Credentials from environment variables.
func LoadCredentials() (Credentials, error) {
	var c Credentials
	if err := env.Parse(&c); err != nil {
		return Credentials{}, fmt.Errorf("parse credentials from env: %w", err)
	}
	return c, nil
}

// gamesSchema constrains the roster file. Kept permissive on purpose:
// the invalid-versions table is optional because not every game needs
// platform restrictions.
const gamesSchema = `
games: [...{
	id: string & !=""
	version: {
		variable: string & !=""
		default:  string & !=""
		invalid?: {[string]: [...string]}
	}
}]
`

// gamesFile mirrors the roster file for decoding.
type gamesFile struct {
	Games []struct {
		ID      string `json:"id"`
		Version struct {
			Variable string              `json:"variable"`
			Default  string              `json:"default"`
			Invalid  map[string][]string `json:"invalid"`
		} `json:"version"`
	} `json:"games"`
}

// LoadGames reads and validates the roster file, returning the game
// configurations in file order. A roster with no games is an error:
// a bot with nothing to moderate is a deployment mistake.
func LoadGames(path string) ([]rules.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}

	cctx := cuecontext.New()

	schema := cctx.CompileString(gamesSchema)
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile roster schema: %w", err)
	}

	val := cctx.CompileBytes(data, cue.Filename(path))
	if err := val.Err(); err != nil {
		return nil, fmt.Errorf("parse roster file: %w", err)
	}

	unified := schema.Unify(val)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("validate roster file: %w", err)
	}

	var file gamesFile
	if err := unified.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode roster file: %w", err)
	}
	if len(file.Games) == 0 {
		return nil, fmt.Errorf("roster file %s configures no games", path)
	}

	games := make([]rules.GameConfig, 0, len(file.Games))
	for _, g := range file.Games {
		games = append(games, rules.GameConfig{
			ID: g.ID,
			Version: rules.VersionRule{
				VariableID:        g.Version.Variable,
				DefaultOptionID:   g.Version.Default,
				InvalidByPlatform: g.Version.Invalid,
			},
		})
	}
	return games, nil
}
