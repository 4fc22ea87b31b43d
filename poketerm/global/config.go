package global

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nathanieltooley/boxmon/golurk"
	"github.com/spf13/viper"
)

type GlobalConfig struct {
	// Directory saved parties are written to
	PartySaveLocation string `mapstructure:"party_save_location"`
	// sqlite file holding the PC boxes
	PCDatabase string `mapstructure:"pc_database"`

	LocalPlayerName string `mapstructure:"player_name"`
	TrainerID       uint32 `mapstructure:"trainer_id"`
	PlayerGender    uint8  `mapstructure:"player_gender"`

	// Clamp the level-up HP underflow instead of reproducing it
	FixHPUnderflow bool `mapstructure:"fix_hp_underflow"`

	Debug       bool `mapstructure:"debug"`
	LogMaxKB    int  `mapstructure:"log_max_kb"`
	LogMaxFiles int  `mapstructure:"log_max_files"`
}

func DefaultConfigDir() string {
	configDir, _ := os.UserConfigDir()
	return filepath.Join(configDir, "boxmon")
}

func DefaultConfigLocation() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

func setDefaults(v *viper.Viper, configDir string) {
	v.SetDefault("party_save_location", filepath.Join(configDir, "parties"))
	v.SetDefault("pc_database", filepath.Join(configDir, "pc.db"))
	v.SetDefault("player_name", "PLAYER")
	v.SetDefault("trainer_id", 0)
	v.SetDefault("player_gender", golurk.MALE)
	v.SetDefault("fix_hp_underflow", false)
	v.SetDefault("debug", false)
	v.SetDefault("log_max_kb", 2500)
	v.SetDefault("log_max_files", 2)
}

// LoadConfig reads the json config at path. A missing file gives the defaults,
// and BOXMON_* environment variables override both.
func LoadConfig(path string) (GlobalConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.SetEnvPrefix("BOXMON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, filepath.Dir(path))

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return GlobalConfig{}, fmt.Errorf("reading config file: %w", err)
	}

	var config GlobalConfig
	if err := v.Unmarshal(&config); err != nil {
		return GlobalConfig{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return GlobalConfig{}, err
	}

	return config, nil
}

func SaveConfig(path string, config GlobalConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	v := viper.New()
	v.Set("party_save_location", config.PartySaveLocation)
	v.Set("pc_database", config.PCDatabase)
	v.Set("player_name", config.LocalPlayerName)
	v.Set("trainer_id", config.TrainerID)
	v.Set("player_gender", config.PlayerGender)
	v.Set("fix_hp_underflow", config.FixHPUnderflow)
	v.Set("debug", config.Debug)
	v.Set("log_max_kb", config.LogMaxKB)
	v.Set("log_max_files", config.LogMaxFiles)

	return v.WriteConfigAs(path)
}

func (c GlobalConfig) Validate() error {
	var errs []string

	if c.LocalPlayerName == "" {
		errs = append(errs, "player_name must not be empty")
	}
	if n := len([]rune(c.LocalPlayerName)); n > golurk.PLAYER_NAME_LENGTH {
		errs = append(errs, fmt.Sprintf("player_name must be at most %d characters, got %d", golurk.PLAYER_NAME_LENGTH, n))
	}
	if c.PlayerGender != golurk.MALE && c.PlayerGender != golurk.FEMALE {
		errs = append(errs, fmt.Sprintf("player_gender must be 0 or 1, got %d", c.PlayerGender))
	}
	if c.LogMaxKB < 1 {
		errs = append(errs, fmt.Sprintf("log_max_kb must be >= 1, got %d", c.LogMaxKB))
	}
	if c.LogMaxFiles < 1 {
		errs = append(errs, fmt.Sprintf("log_max_files must be >= 1, got %d", c.LogMaxFiles))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Profile is the player as the engine sees it when stamping OT data
func (c GlobalConfig) Profile() golurk.Profile {
	return golurk.Profile{
		TrainerID: c.TrainerID,
		Name:      c.LocalPlayerName,
		Gender:    c.PlayerGender,
	}
}
