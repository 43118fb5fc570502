package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "games.cue")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCredentials(t *testing.T) {
	t.Setenv("SRC_API_KEY", "src-key")
	t.Setenv("TWITCH_CLIENT_ID", "tw-id")
	t.Setenv("TWITCH_CLIENT_SECRET", "tw-secret")

	creds, err := LoadCredentials()
	require.NoError(t, err)
	assert.Equal(t, "src-key", creds.SRCAPIKey)
	assert.Equal(t, "tw-id", creds.TwitchClientID)
	assert.Equal(t, "tw-secret", creds.TwitchClientSecret)
}

func TestLoadCredentialsMissingKey(t *testing.T) {
	t.Setenv("SRC_API_KEY", "")
	t.Setenv("TWITCH_CLIENT_ID", "tw-id")
	t.Setenv("TWITCH_CLIENT_SECRET", "tw-secret")
	os.Unsetenv("SRC_API_KEY")

	_, err := LoadCredentials()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SRC_API_KEY")
}

func TestLoadGames(t *testing.T) {
	path := writeRoster(t, `
games: [
	{
		id: "o1y9wo6q"
		version: {
			variable: "38do9y8l"
			default:  "z195vzr1"
			invalid: {
				"8gej2n93": ["810gyzvq", "klrpx9vn"]
			}
		}
	},
	{
		id: "j1llxz71"
		version: {
			variable: "r8r56rrn"
			default:  "21d2ez4q"
		}
	},
]
`)

	games, err := LoadGames(path)
	require.NoError(t, err)
	require.Len(t, games, 2)

	assert.Equal(t, "o1y9wo6q", games[0].ID)
	assert.Equal(t, "38do9y8l", games[0].Version.VariableID)
	assert.Equal(t, "z195vzr1", games[0].Version.DefaultOptionID)
	assert.Equal(t, []string{"810gyzvq", "klrpx9vn"}, games[0].Version.InvalidByPlatform["8gej2n93"])

	assert.Equal(t, "j1llxz71", games[1].ID)
	assert.Nil(t, games[1].Version.InvalidByPlatform, "invalid table is optional")
}

func TestLoadGamesRejectsEmptyID(t *testing.T) {
	path := writeRoster(t, `
games: [{
	id: ""
	version: {variable: "v", default: "d"}
}]
`)

	_, err := LoadGames(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate roster file")
}

func TestLoadGamesRejectsMissingVersion(t *testing.T) {
	path := writeRoster(t, `
games: [{id: "o1y9wo6q"}]
`)

	_, err := LoadGames(path)
	require.Error(t, err)
}

func TestLoadGamesRejectsEmptyRoster(t *testing.T) {
	path := writeRoster(t, `games: []`)

	_, err := LoadGames(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configures no games")
}

func TestLoadGamesMissingFile(t *testing.T) {
	_, err := LoadGames(filepath.Join(t.TempDir(), "absent.cue"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read roster file")
}

func TestLoadGamesMalformedSyntax(t *testing.T) {
	path := writeRoster(t, `games: [{id: `)

	_, err := LoadGames(path)
	require.Error(t, err)
}
