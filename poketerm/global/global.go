package global

import (
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/zerologr"
	"github.com/nathanieltooley/boxmon/golurk"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

var (
	TERM_WIDTH, TERM_HEIGHT, _ = term.GetSize(int(os.Stdout.Fd()))

	SelectKey    = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select"))
	MoveLeftKey  = key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left"))
	MoveRightKey = key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right"))
	MoveDownKey  = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down"))
	MoveUpKey    = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up"))

	DownTabKey = key.NewBinding(key.WithKeys(tea.KeyTab.String()), key.WithHelp("tab", "next"))
	UpTabKey   = key.NewBinding(key.WithKeys(tea.KeyShiftTab.String()), key.WithHelp("shift+tab", "previous"))

	BackKey = key.NewBinding(key.WithKeys(tea.KeyEsc.String()), key.WithHelp("esc", "back"))
	QuitKey = key.NewBinding(key.WithKeys(tea.KeyCtrlC.String()), key.WithHelp("ctrl+c", "quit"))

	ConfigLocation = DefaultConfigLocation()
	Opt            = GlobalConfig{
		LocalPlayerName: "PLAYER",
		LogMaxKB:        2500,
		LogMaxFiles:     2,
	}

	// Global RNG that can be changed for testing purposes
	BoxRand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	previousLevel zerolog.Level
)

// GlobalInit loads the config, sets up logging and loads the engine tables from files
func GlobalInit(files fs.FS, shouldLog bool) error {
	config, err := LoadConfig(ConfigLocation)
	if err != nil {
		return err
	}
	Opt = config

	if _, err := os.Stat(ConfigLocation); os.IsNotExist(err) {
		if err := SaveConfig(ConfigLocation, Opt); err != nil {
			return fmt.Errorf("writing default config: %w", err)
		}
	}

	level := zerolog.InfoLevel
	if Opt.Debug {
		level = zerolog.DebugLevel
	}

	if shouldLog {
		logger, err := createLogger(filepath.Dir(ConfigLocation), level)
		if err != nil {
			return err
		}
		log.Logger = logger
	} else {
		log.Logger = zerolog.Nop()
	}

	// V(1) is debug and V(2) trace
	zerologr.SetMaxV(2)
	golurk.SetInternalLogger(zerologr.New(&log.Logger))
	golurk.Settings.FixHPUnderflow = Opt.FixHPUnderflow

	if errs := golurk.DefaultLoader(files); len(errs) != 0 {
		for _, err := range errs {
			log.Err(err).Msg("failed to load engine data")
		}
		return errs[0]
	}

	log.Info().Str("config", ConfigLocation).Msg("boxmon initialized")
	return nil
}

func createLogger(configDir string, level zerolog.Level) (zerolog.Logger, error) {
	rollingWriter, err := NewRollingFileWriter(filepath.Join(configDir, "logs"), "boxmon", int64(Opt.LogMaxKB)*1000, Opt.LogMaxFiles)
	if err != nil {
		return zerolog.Nop(), err
	}

	writer := zerolog.ConsoleWriter{Out: rollingWriter, NoColor: true}
	return zerolog.New(writer).With().Timestamp().Caller().Logger().Level(level), nil
}

func StopLogging() {
	previousLevel = log.Logger.GetLevel()
	log.Logger = log.Logger.Level(zerolog.Disabled)
}

func ContinueLogging() {
	log.Logger = log.Logger.Level(previousLevel)
}

func UpdateLogLevel(level zerolog.Level) {
	log.Logger = log.Logger.Level(level)
}

func ForceRng(source rand.Source) {
	BoxRand = rand.New(source)
}

func SetNormalRng() {
	BoxRand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
