package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alexanderramin/admind/internal/config"
)

func testApp() *App {
	return &App{
		Config:        config.Default(),
		Log:           zap.NewNop(),
		IsInteractive: func() bool { return false },
	}
}

func runCommand(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	root := NewRootCmd(testApp())

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "formats")
	assert.Contains(t, names, "demo")
}

func TestFormatsCmd_ListsAllGroups(t *testing.T) {
	out, err := runCommand(t, testApp(), "formats")
	require.NoError(t, err)

	assert.Contains(t, out, "Carousel Specials (High Engagement)")
	assert.Contains(t, out, "Pattern Interrupts")
	assert.Contains(t, out, "Meme / Internet Culture")
	assert.Contains(t, out, "* Carousel: Real People Story (UGC)")
	assert.Contains(t, out, "renders as a multi-image carousel")
}

func TestServeCmd_RequiresAPIKey(t *testing.T) {
	app := testApp()
	app.Config.APIKey = ""

	_, err := runCommand(t, app, "serve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestDemoCmd_RunsOffline(t *testing.T) {
	out, err := runCommand(t, testApp(), "demo", "--seed", "7", "--passes", "4")
	require.NoError(t, err)

	assert.Contains(t, out, "ZENITH FOCUS GUMMIES")
	assert.Contains(t, out, "3 personas, 3 angles, 3 creatives, 4 simulated days")
	assert.Contains(t, out, "Meme / Internet Culture")
	assert.Contains(t, out, "Us vs Them / Comparison Table")
	// Four passes puts every creative past the 72-hour learning window.
	assert.NotContains(t, out, "72-hour rule active")
	assert.Contains(t, out, "CTR")
}

func TestDemoCmd_DeterministicForSeed(t *testing.T) {
	a, err := runCommand(t, testApp(), "demo", "--seed", "11", "--passes", "3")
	require.NoError(t, err)
	b, err := runCommand(t, testApp(), "demo", "--seed", "11", "--passes", "3")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDemoCmd_SimulationAgesCreatives(t *testing.T) {
	out, err := runCommand(t, testApp(), "demo", "--seed", "1", "--passes", "8")
	require.NoError(t, err)

	// 8 passes = 192 simulated hours, deep into the evaluation window.
	hasVerdict := strings.Contains(out, "WINNING") || strings.Contains(out, "LOSING") || strings.Contains(out, "TESTING")
	assert.True(t, hasVerdict)
}
